package secret

import (
	"encoding/binary"
	"fmt"
)

// Codec maps a typed value to and from the byte form a Buffer obfuscates.
// Implementations must be stateless and pure, and must satisfy the
// round-trip law Decode(Encode(v)) == v for every v in T's domain.
//
// Encode must return a fresh slice and retain no copy of the value's
// backing bytes; the container wipes the returned slice once it has been
// obfuscated. Decode is only ever called with bytes from a live buffer.
type Codec[T any] interface {
	Encode(v T) []byte
	Decode(p []byte) (T, error)
}

// String returns the codec for string values.
func String() Codec[string] { return stringCodec{} }

// Bytes returns the codec for byte-slice values. Both directions copy, so
// the container never aliases caller-owned memory.
func Bytes() Codec[[]byte] { return bytesCodec{} }

// Int64 returns the codec for int64 values, encoded as 8 big-endian bytes.
func Int64() Codec[int64] { return int64Codec{} }

type stringCodec struct{}

func (stringCodec) Encode(v string) []byte { return []byte(v) }

func (stringCodec) Decode(p []byte) (string, error) { return string(p), nil }

type bytesCodec struct{}

func (bytesCodec) Encode(v []byte) []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

func (bytesCodec) Decode(p []byte) ([]byte, error) {
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

type int64Codec struct{}

func (int64Codec) Encode(v int64) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, uint64(v))
	return out
}

func (int64Codec) Decode(p []byte) (int64, error) {
	if len(p) != 8 {
		return 0, fmt.Errorf("secret: int64 codec: want 8 bytes, got %d", len(p))
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}
