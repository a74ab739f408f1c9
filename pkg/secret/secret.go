package secret

import (
	"crypto/rand"
	"fmt"
	"io"
	"reflect"

	"github.com/awnumar/memguard"
)

// Placeholder is what every container renders as under fmt and text
// conversion, valid or destroyed. The plaintext never reaches a format
// string.
const Placeholder = "[REDACTED]"

// Secret holds one obfuscated value of type T. The zero value is not
// usable; construct with New or NewOneShot.
//
// A Secret has two states: valid (initial) and destroyed (terminal). Every
// read operation branches on state first; once destroyed, buffer memory is
// never touched again. A Secret is not safe for concurrent use - see the
// package documentation.
type Secret[T any] struct {
	buf     *Buffer
	codec   Codec[T]
	oneShot bool
}

type options struct {
	rng io.Reader
}

// Option configures container construction.
type Option func(*options)

// WithRand overrides the source of key material. The default is
// crypto/rand; tests may substitute a deterministic reader.
func WithRand(r io.Reader) Option {
	return func(o *options) { o.rng = r }
}

// New obfuscates v immediately and returns a persistent container. No
// plaintext copy owned by the container survives this call; the encoded
// bytes are wiped once obfuscated.
func New[T any](v T, c Codec[T], opts ...Option) (*Secret[T], error) {
	return newSecret(v, c, false, opts)
}

// NewOneShot is New for values that must be read at most once: the first
// access that reaches the callback also destroys the container, whether or
// not the callback itself succeeds.
func NewOneShot[T any](v T, c Codec[T], opts ...Option) (*Secret[T], error) {
	return newSecret(v, c, true, opts)
}

func newSecret[T any](v T, c Codec[T], oneShot bool, opts []Option) (*Secret[T], error) {
	o := options{rng: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	buf, err := newBuffer(c.Encode(v), o.rng)
	if err != nil {
		return nil, err
	}
	observe(EventCreated)
	return &Secret[T]{buf: buf, codec: c, oneShot: oneShot}, nil
}

// Destroy scrubs and releases the backing buffer and permanently
// invalidates the container. Idempotent: repeated calls are silent no-ops.
func (s *Secret[T]) Destroy() {
	if s.buf.IsDestroyed() {
		return
	}
	s.buf.Destroy()
	observe(EventDestroyed)
}

// IsDestroyed reports whether the container has been destroyed.
func (s *Secret[T]) IsDestroyed() bool {
	return s.buf.IsDestroyed()
}

// HashCode returns the hash of the obfuscated bytes, or exactly -1 once
// destroyed. The key is re-randomized per construction, so equal
// plaintexts wrapped twice hash differently; never rely on this hash being
// stable across containers. Tag provides the deterministic alternative.
func (s *Secret[T]) HashCode() int {
	return s.buf.ObfuscatedHash()
}

// Equal always returns false, including against the receiver itself.
// Generic equality on containers is disabled so that equality-driven code
// paths (assertions, map lookups, log diffing) can never leak or compare
// plaintext by accident. Use Matches for a plaintext comparison.
func (s *Secret[T]) Equal(other *Secret[T]) bool {
	return false
}

// Matches decodes both containers without destroying them and compares the
// plaintexts. Any failure - either side nil or destroyed, a codec error, a
// codec panic - downgrades to false; Matches never returns an error and
// never panics.
func (s *Secret[T]) Matches(other *Secret[T]) (eq bool) {
	if s == nil || other == nil || s.IsDestroyed() || other.IsDestroyed() {
		return false
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	a, err := peek(s)
	if err != nil {
		return false
	}
	b, err := peek(other)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// peek decodes a valid container's plaintext. Only Matches uses it; all
// other access goes through the combinators.
func peek[T any](s *Secret[T]) (T, error) {
	plain := s.buf.open()
	v, err := s.codec.Decode(plain)
	memguard.WipeBytes(plain)
	return v, err
}

// String implements fmt.Stringer with the fixed placeholder.
func (s *Secret[T]) String() string { return Placeholder }

// GoString implements fmt.GoStringer so %#v cannot leak the plaintext.
func (s *Secret[T]) GoString() string { return Placeholder }

// Format implements fmt.Formatter: every verb renders the placeholder.
func (s *Secret[T]) Format(f fmt.State, verb rune) {
	io.WriteString(f, Placeholder)
}

// EvalUse decodes the plaintext and hands it to f for the extent of one
// synchronous call, returning f's result unchanged. On a destroyed
// container it fails with an error matching ErrNoLongerValid and f is
// never invoked. The decoded bytes are wiped as soon as the codec has
// consumed them; the container retains nothing after the call returns.
//
// On a one-shot container the first call that reaches f also destroys the
// container, whether or not f succeeds: once the plaintext has escaped the
// decode step the value is spent.
func EvalUse[T, U any](s *Secret[T], f func(T) (U, error)) (U, error) {
	var zero U
	if s.buf.IsDestroyed() {
		observe(EventAccessDenied)
		return zero, &InvalidAccessError{Op: "use"}
	}
	v, err := peek(s)
	if err != nil {
		// Codec failures propagate unwrapped; the plaintext never
		// reached the caller, so a one-shot stays intact.
		return zero, err
	}
	if s.oneShot {
		defer s.Destroy()
	}
	return f(v)
}

// Use lifts a pure function into EvalUse.
func Use[T, U any](s *Secret[T], f func(T) U) (U, error) {
	return EvalUse(s, func(v T) (U, error) { return f(v), nil })
}

// EvalUseAndDestroy is EvalUse followed by an unconditional Destroy: the
// container is destroyed after the use attempt whether f succeeded or
// failed, provided the container was valid at entry. A failing callback
// must not leave the secret readable.
func EvalUseAndDestroy[T, U any](s *Secret[T], f func(T) (U, error)) (U, error) {
	var zero U
	if s.buf.IsDestroyed() {
		observe(EventAccessDenied)
		return zero, &InvalidAccessError{Op: "use-and-destroy"}
	}
	defer s.Destroy()
	v, err := peek(s)
	if err != nil {
		return zero, err
	}
	return f(v)
}

// UseAndDestroy lifts a pure function into EvalUseAndDestroy.
func UseAndDestroy[T, U any](s *Secret[T], f func(T) U) (U, error) {
	return EvalUseAndDestroy(s, func(v T) (U, error) { return f(v), nil })
}

// MustUse is the explicit unsafe convenience: it panics if the container
// is destroyed or the codec fails. Callers opt into hard failure instead
// of the error path.
func MustUse[T, U any](s *Secret[T], f func(T) U) U {
	v, err := Use(s, f)
	if err != nil {
		panic(err)
	}
	return v
}
