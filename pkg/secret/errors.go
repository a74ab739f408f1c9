package secret

import (
	"errors"
	"fmt"
)

// ErrNoLongerValid is reported by every access attempt on a destroyed
// container. Match it with errors.Is.
var ErrNoLongerValid = errors.New("secret no longer valid")

// InvalidAccessError records which operation was attempted on a destroyed
// container. It unwraps to ErrNoLongerValid.
type InvalidAccessError struct {
	Op string
}

func (e *InvalidAccessError) Error() string {
	return fmt.Sprintf("secret: %s on destroyed container: %v", e.Op, ErrNoLongerValid)
}

func (e *InvalidAccessError) Unwrap() error {
	return ErrNoLongerValid
}
