package byteable

import (
	"encoding/binary"
)

// Byteable is implemented by any value that has a canonical byte
// representation suitable for hashing.
type Byteable interface {
	// Bytes returns the little-endian memory representation. Implementations
	// must return the same bytes for equal values and must not return a
	// slice the caller can use to mutate the value.
	Bytes() []byte
}

type (
	Int32  int32
	Int64  int64
	Uint8  uint8
	Uint32 uint32
	Uint64 uint64
	String string
)

func (v Int32) Bytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func (v Int64) Bytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

func (v Uint8) Bytes() []byte { return []byte{byte(v)} }

func (v Uint32) Bytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func (v Uint64) Bytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

func (v String) Bytes() []byte { return []byte(v) }

// Raw is an opaque byte string. Its representation is itself.
type Raw []byte

func (v Raw) Bytes() []byte {
	b := make([]byte, len(v))
	copy(b, v)
	return b
}

// Concat returns the concatenation of each item's bytes in iteration order.
// No framing is added between items.
func Concat[T Byteable](items []T) []byte {
	var data []byte
	for _, it := range items {
		data = append(data, it.Bytes()...)
	}
	return data
}

// Framed prefixes the wrapped value's bytes with their length as a uint64 LE.
type Framed[T Byteable] struct {
	Value T
}

func Frame[T Byteable](v T) Framed[T] { return Framed[T]{Value: v} }

func (f Framed[T]) Bytes() []byte {
	data := f.Value.Bytes()
	b := make([]byte, 8, 8+len(data))
	binary.LittleEndian.PutUint64(b, uint64(len(data)))
	return append(b, data...)
}

// IsFrame reports whether b is exactly one Framed encoding, a uint64 LE
// length followed by that many bytes.
func IsFrame(b []byte) bool {
	if len(b) < 8 {
		return false
	}
	return binary.LittleEndian.Uint64(b[:8]) == uint64(len(b)-8)
}

// FrameAll wraps each item so that Concat over the result is unambiguous.
func FrameAll[T Byteable](items []T) []Framed[T] {
	framed := make([]Framed[T], 0, len(items))
	for _, it := range items {
		framed = append(framed, Frame(it))
	}
	return framed
}
