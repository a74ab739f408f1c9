package secret

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// tagDomainKey keys the BLAKE3 tag digest so tags can never collide with
// any other BLAKE3 use of the same plaintext. Fixed constant - changing it
// changes every tag, which is what the version in the rendered prefix
// tracks. The bytes are the ASCII domain name zero-padded to 32.
var tagDomainKey = [32]byte{
	's', 'h', 'r', 'o', 'u', 'd', '.', 't', 'a', 'g', '.', 'v', '1',
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

const tagPrefix = "shroud1:"

// Tag derives a deterministic, non-reversible token for a plaintext. Equal
// inputs always produce equal tags, so external systems can correlate and
// compare logged tags without ever recovering the value. Tag is
// independent of any container and, unlike HashCode, is stable across
// reconstructions.
func Tag(plain []byte) string {
	h, err := blake3.NewKeyed(tagDomainKey[:])
	if err != nil {
		// NewKeyed only fails on a key that is not 32 bytes.
		panic("secret: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	h.Write(plain)
	sum := h.Sum(nil)
	return tagPrefix + hex.EncodeToString(sum[:16])
}

// TagString is Tag for string plaintexts.
func TagString(plain string) string {
	return Tag([]byte(plain))
}
