package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrorFormatting(t *testing.T) {
	t.Parallel()

	err := UserError{
		Message:    "Key is required",
		Suggestion: "Use --key <name> to specify which secret to resolve",
	}
	assert.Contains(t, err.Error(), "Key is required")
	assert.Contains(t, err.Error(), "💡 Try: Use --key")
}

func TestUserErrorUnwraps(t *testing.T) {
	t.Parallel()

	inner := stderrors.New("boom")
	err := UserError{Message: "outer", Err: inner}
	assert.ErrorIs(t, err, inner)
}

func TestUserErrorFallsBackToWrapped(t *testing.T) {
	t.Parallel()

	inner := stderrors.New("underlying cause")
	err := UserError{Err: inner}
	assert.Equal(t, "underlying cause", err.Error())
}
