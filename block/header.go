package block

import (
	"github.com/forestrie/go-hashchain/chainhash"
)

// Header is a block without its payload. It carries everything a consumer
// needs to link, seal or index the block.
type Header struct {
	CurrentHash  chainhash.Hash
	PreviousHash *chainhash.Hash
	Timestamp    uint64
	Nonce        uint64
	MerkleRoot   chainhash.Hash
	Version      uint8
	ChainRoot    chainhash.Hash
	PayloadLen   int
}

func (b *Block[T]) Header() Header {
	h := Header{
		CurrentHash: b.CurrentHash,
		Timestamp:   b.Timestamp,
		Nonce:       b.Nonce,
		MerkleRoot:  b.MerkleRoot,
		Version:     b.Version,
		ChainRoot:   b.ChainRoot,
		PayloadLen:  len(b.Payload),
	}
	if b.PreviousHash != nil {
		prev := *b.PreviousHash
		h.PreviousHash = &prev
	}
	return h
}

// Links returns true if h is the immediate successor of prev
func (h Header) Links(prev Header) bool {
	return h.PreviousHash != nil && *h.PreviousHash == prev.CurrentHash
}
