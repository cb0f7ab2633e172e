package block

import (
	"fmt"

	"github.com/forestrie/go-hashchain/byteable"
	"github.com/forestrie/go-hashchain/chainhash"
	"github.com/forestrie/go-hashchain/merkle"
)

// NewInChain constructs a block that also accumulates the chain it extends.
//
// prior is the ordered list of finalized blocks preceding this one. The
// previous hash is taken from the last of them, so an empty prior produces a
// genesis block. The content hash is computed exactly as for New. Then
//
//	ChainHashes = [prior[0].CurrentHash, ..., prior[n-1].CurrentHash, CurrentHash]
//	ChainRoot   = merkle.RootHashes(ChainHashes)
//
// so with no prior blocks ChainRoot is CurrentHash. The chain root is
// computed after, and is not committed to by, the content hash.
//
// prior must not contain nil entries, NewInChain panics if it does.
func NewInChain[T byteable.Byteable](
	prior []*Block[T], payload []T, timestamp uint64, nonce uint64,
) *Block[T] {

	for i, p := range prior {
		if p == nil {
			panic(fmt.Sprintf("block: NewInChain prior[%d] is nil", i))
		}
	}

	hasher := chainhash.NewHasher()

	var previousHash *chainhash.Hash
	if len(prior) > 0 {
		previousHash = &prior[len(prior)-1].CurrentHash
	}

	b := newBlock(hasher, previousHash, payload, timestamp, nonce)

	b.ChainHashes = make([]chainhash.Hash, 0, len(prior)+1)
	for _, p := range prior {
		b.ChainHashes = append(b.ChainHashes, p.CurrentHash)
	}
	b.ChainHashes = append(b.ChainHashes, b.CurrentHash)

	b.ChainRoot, _ = merkle.RootHashes(hasher, b.ChainHashes)
	return b
}

// CheckBlockInChain reports whether candidate is the block hash at position
// in the chain this block accumulates. It is the accumulator analogue of
// CheckValueInBlock and is false for blocks not built by NewInChain.
func (b *Block[T]) CheckBlockInChain(candidate chainhash.Hash, position int) bool {
	if len(b.ChainHashes) == 0 {
		return false
	}
	root, ok := merkle.RootHashesWithCandidate(chainhash.NewHasher(), b.ChainHashes, candidate, position)
	if !ok {
		return false
	}
	return root == b.ChainRoot
}

// VerifyChainRoot returns true if ChainRoot matches ChainHashes and the last
// of ChainHashes is this block.
func (b *Block[T]) VerifyChainRoot() bool {
	if len(b.ChainHashes) == 0 {
		return b.ChainRoot.IsEmpty()
	}
	if b.ChainHashes[len(b.ChainHashes)-1] != b.CurrentHash {
		return false
	}
	root, _ := merkle.RootHashes(chainhash.NewHasher(), b.ChainHashes)
	return root == b.ChainRoot
}

// ChainInclusionProof returns the accumulator path for the block at position.
func (b *Block[T]) ChainInclusionProof(position int) ([]merkle.ProofStep, error) {
	return merkle.InclusionProofHashes(chainhash.NewHasher(), b.ChainHashes, position)
}
