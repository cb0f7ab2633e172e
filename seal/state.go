package seal

import (
	"time"

	"github.com/forestrie/go-hashchain/block"
)

// BlockState defines the details we include in a signed commitment to a block.
type BlockState struct {
	// Hash is the block content hash. It is detached from published seals, a
	// verifier must recompute it from the block.
	Hash         []byte `cbor:"1,keyasint"`
	PreviousHash []byte `cbor:"2,keyasint"`
	MerkleRoot   []byte `cbor:"3,keyasint"`
	// ChainRoot is empty for blocks built without the chain accumulator
	ChainRoot []byte `cbor:"4,keyasint"`
	Timestamp uint64 `cbor:"5,keyasint"`
	Nonce     uint64 `cbor:"6,keyasint"`
	Version   uint8  `cbor:"7,keyasint"`

	// SealedAt is the unix time (milliseconds) read at the time the block was
	// sealed. Including it allows the same block to be re-sealed.
	SealedAt int64 `cbor:"8,keyasint"`
}

// StateFromHeader captures the sealable fields of a block header
func StateFromHeader(h block.Header, sealedAt time.Time) BlockState {
	s := BlockState{
		Hash:       h.CurrentHash.Bytes(),
		MerkleRoot: h.MerkleRoot.Bytes(),
		Timestamp:  h.Timestamp,
		Nonce:      h.Nonce,
		Version:    h.Version,
		SealedAt:   sealedAt.UnixMilli(),
	}
	if h.PreviousHash != nil {
		s.PreviousHash = h.PreviousHash.Bytes()
	}
	if !h.ChainRoot.IsEmpty() {
		s.ChainRoot = h.ChainRoot.Bytes()
	}
	return s
}
