package source

import (
	"context"

	"github.com/systmms/shroud/pkg/secret"
)

// Static serves literal values from a map. It fetches nothing external and
// exists for tests and for wiring fixed values through the same resolution
// path as real sources.
type Static struct {
	name   string
	values map[string]string
}

// NewStatic returns a static source over values. A nil map is treated as
// empty.
func NewStatic(name string, values map[string]string) *Static {
	if values == nil {
		values = make(map[string]string)
	}
	return &Static{name: name, values: values}
}

// Name returns the source identifier.
func (s *Static) Name() string { return s.name }

// Resolve returns the literal value for key.
func (s *Static) Resolve(ctx context.Context, key string) (*secret.Secret[string], error) {
	v, ok := s.values[key]
	if !ok {
		return nil, &NotFoundError{Source: s.name, Key: key}
	}
	return wrap(v)
}

// Set adds or replaces a literal value.
func (s *Static) Set(key, value string) {
	s.values[key] = value
}
