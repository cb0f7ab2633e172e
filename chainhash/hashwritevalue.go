package chainhash

import (
	"encoding/binary"
	"hash"
)

// HashWriteUint64LE writes a uint64 to a hasher in little-endian layout - least
// significant byte at lowest address/storage location
func HashWriteUint64LE(hasher hash.Hash, value uint64) {
	b := [8]byte{}
	binary.LittleEndian.PutUint64(b[:], value)
	_, _ = hasher.Write(b[:])
}

// HashWriteUint8 writes a single byte to the hasher
func HashWriteUint8(hasher hash.Hash, value uint8) {
	_, _ = hasher.Write([]byte{value})
}
