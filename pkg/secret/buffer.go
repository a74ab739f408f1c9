package secret

import (
	"fmt"
	"hash/fnv"
	"io"

	"github.com/awnumar/memguard"
)

// hashDestroyed is the sentinel ObfuscatedHash returns once a buffer has
// been destroyed. Live hashes are masked non-negative so the sentinel can
// never collide with one.
const hashDestroyed = -1

// Buffer owns the obfuscated backing of one secret: a random key and the
// value XORed against it, both held in memguard locked allocations of
// identical length. A Buffer belongs to exactly one container and is never
// shared.
//
// At rest a memory dump captures only ciphertext and key in separate
// guarded allocations. This is obfuscation, not encryption: the key sits
// in the same process and makes no unguessability claim against a capable
// adversary.
type Buffer struct {
	key       *memguard.LockedBuffer
	val       *memguard.LockedBuffer
	length    int
	destroyed bool
}

// newBuffer obfuscates plain into a fresh Buffer, drawing key material
// from rng. The caller's plain slice is wiped before returning, on every
// path. Zero-length input yields a legal zero-length buffer.
func newBuffer(plain []byte, rng io.Reader) (*Buffer, error) {
	n := len(plain)
	if n == 0 {
		return &Buffer{}, nil
	}

	key := make([]byte, n)
	if _, err := io.ReadFull(rng, key); err != nil {
		memguard.WipeBytes(plain)
		return nil, fmt.Errorf("secret: reading key material: %w", err)
	}

	obf := make([]byte, n)
	for i := range plain {
		obf[i] = plain[i] ^ key[i]
	}
	memguard.WipeBytes(plain)

	// NewBufferFromBytes moves the slice into a locked allocation and
	// wipes the source, so key and obf do not linger on the heap.
	return &Buffer{
		key:    memguard.NewBufferFromBytes(key),
		val:    memguard.NewBufferFromBytes(obf),
		length: n,
	}, nil
}

// open decodes the obfuscated bytes into a fresh plaintext slice. The
// caller must wipe the returned slice with memguard.WipeBytes when done.
// Must not be called on a destroyed buffer; containers gate on state
// before reaching here.
func (b *Buffer) open() []byte {
	plain := make([]byte, b.length)
	if b.length == 0 {
		return plain
	}
	k := b.key.Bytes()
	v := b.val.Bytes()
	for i := range plain {
		plain[i] = v[i] ^ k[i]
	}
	return plain
}

// ObfuscatedHash returns a stable non-negative hash over the buffer's
// current obfuscated bytes, or -1 once destroyed. Because the key is drawn
// fresh per construction, two buffers holding equal plaintexts hash
// differently.
func (b *Buffer) ObfuscatedHash() int {
	if b.destroyed {
		return hashDestroyed
	}
	h := fnv.New64a()
	if b.length > 0 {
		h.Write(b.val.Bytes())
	}
	return int(h.Sum64() & 0x7fffffff)
}

// Destroy wipes and frees both allocations. Idempotent: repeated calls are
// silent no-ops.
func (b *Buffer) Destroy() {
	if b.destroyed {
		return
	}
	if b.key != nil {
		b.key.Destroy()
	}
	if b.val != nil {
		b.val.Destroy()
	}
	b.key = nil
	b.val = nil
	b.destroyed = true
}

// IsDestroyed reports whether Destroy has been called.
func (b *Buffer) IsDestroyed() bool {
	return b.destroyed
}
