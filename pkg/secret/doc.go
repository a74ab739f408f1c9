// Package secret provides in-process containers for sensitive values.
//
// A container holds its value obfuscated at rest: the plaintext is XORed
// against an equal-length random key, and both halves live inside memguard
// locked allocations (mlock'd, guard-paged, wiped on destruction). The
// plaintext only exists for the duration of a single callback passed to one
// of the access combinators.
//
// # Usage
//
// Wrap a value at construction time and access it through a callback:
//
//	s, err := secret.New("hunter2", secret.String())
//	if err != nil {
//	    // crypto/rand failure - nothing was stored
//	}
//	defer s.Destroy()
//
//	n, err := secret.Use(s, func(v string) int { return len(v) })
//
// Destroy is idempotent. After the first call every access fails with an
// error matching ErrNoLongerValid and the callback is never invoked:
//
//	s.Destroy()
//	s.Destroy() // no-op
//	_, err = secret.Use(s, ...) // errors.Is(err, secret.ErrNoLongerValid)
//
// For values that must be read at most once, NewOneShot returns a container
// that destroys itself after its first access.
//
// # What this protects against
//
// Obfuscation raises the cost of incidental leakage: accidental logging
// (the container formats as a fixed placeholder under every fmt verb),
// heap dumps, and casual memory scraping. It is NOT a cryptographic vault
// and does not defend against an attacker with debugger-level access to
// the process, nor against copies the Go runtime makes of plaintext while
// a callback holds it. Strings handed to callbacks are immutable and
// cannot be zeroed afterwards; keep their lifetime short.
//
// # Concurrency
//
// A single container is not safe for concurrent use. Concurrent Destroy
// and Use on the same container is a race; callers that share a container
// across goroutines must serialize access with their own lock.
package secret
