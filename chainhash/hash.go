package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
)

const (
	// HashBytes is the length of every content hash
	HashBytes = sha256.Size
)

var (
	ErrBadHashSize = errors.New("chainhash: value must be 32 bytes")
)

// Hash is an opaque 32 byte digest. Equality is byte wise.
type Hash [HashBytes]byte

// EmptyHash is the distinguished sentinel for "nothing was hashed", eg the
// merkle root of a block with no payload.
var EmptyHash Hash

// NewHasher returns the digest used throughout the chain.
func NewHasher() hash.Hash {
	return sha256.New()
}

// Sum computes H(parts[0] || parts[1] || ...)
// ** the hasher is reset **
func Sum(hasher hash.Hash, parts ...[]byte) Hash {
	hasher.Reset()
	for _, p := range parts {
		_, _ = hasher.Write(p)
	}
	return SumHash(hasher)
}

// SumHash finalizes the hasher into a Hash without resetting it first.
func SumHash(hasher hash.Hash) Hash {
	var out Hash
	copy(out[:], hasher.Sum(nil))
	return out
}

// FromBytes copies b into a Hash. b must be exactly HashBytes long.
func FromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashBytes {
		return h, ErrBadHashSize
	}
	copy(h[:], b)
	return h, nil
}

// FromHex decodes a hex string produced by String
func FromHex(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, err
	}
	return FromBytes(b)
}

func (h Hash) Bytes() []byte {
	b := make([]byte, HashBytes)
	copy(b, h[:])
	return b
}

func (h Hash) IsEmpty() bool { return h == EmptyHash }

func (h Hash) Equal(other Hash) bool { return h == other }

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// HashPair returns H(a || b). The raw values are concatenated, no domain
// separation or position is committed.
// ** the hasher is reset **
func HashPair(hasher hash.Hash, a []byte, b []byte) Hash {
	return Sum(hasher, a, b)
}
