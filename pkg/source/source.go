// Package source defines construction-time collaborators that fetch raw
// secret material from somewhere (process environment, OS keyring, AWS
// Secrets Manager, ...) and hand it back already wrapped in an obfuscated
// container. Resolving is the only surface a loading-time collaborator
// needs; nothing in this package exposes plaintext.
package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/systmms/shroud/pkg/secret"
)

// Source resolves a key to a wrapped secret. Implementations must wrap
// the fetched value immediately and wipe any intermediate byte copies
// they own; they must never log the value.
type Source interface {
	// Name returns the source's stable identifier, used for registry
	// lookup and error messages.
	Name() string

	// Resolve fetches the value for key and returns it as a container.
	// Missing keys yield a NotFoundError.
	Resolve(ctx context.Context, key string) (*secret.Secret[string], error)
}

// NotFoundError reports a key absent from a source.
type NotFoundError struct {
	Source string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source %q: key %q not found", e.Source, e.Key)
}

// UnknownSourceError reports a registry lookup for a name nobody
// registered.
type UnknownSourceError struct {
	Name string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown source %q", e.Name)
}

// Registry holds named sources. The zero value is not usable; construct
// with NewRegistry. Registration happens at startup; lookups afterwards.
type Registry struct {
	sources map[string]Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds s under its own name, replacing any previous entry.
func (r *Registry) Register(s Source) {
	r.sources[s.Name()] = s
}

// Get returns the source registered under name.
func (r *Registry) Get(name string) (Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return nil, &UnknownSourceError{Name: name}
	}
	return s, nil
}

// Names returns the registered source names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// wrap turns fetched plaintext into a container. Shared by every source so
// the wrapping policy lives in one place.
func wrap(value string) (*secret.Secret[string], error) {
	return secret.New(value, secret.String())
}
