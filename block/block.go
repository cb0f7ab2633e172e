package block

import (
	"fmt"
	"hash"
	"strings"

	"github.com/forestrie/go-hashchain/byteable"
	"github.com/forestrie/go-hashchain/chainhash"
	"github.com/forestrie/go-hashchain/merkle"
)

const (
	// Version of the protocol as it appears in block headers.
	Version uint8 = 1
)

// Block is one unit of a hash linked chain.
//
// A single value payload is represented as a one element Payload.
type Block[T byteable.Byteable] struct {
	// CurrentHash is the content hash of this block.
	CurrentHash chainhash.Hash
	// PreviousHash is nil only for the genesis block.
	PreviousHash *chainhash.Hash
	Payload      []T
	// Timestamp is seconds since the unix epoch, as supplied by the caller.
	Timestamp uint64
	// Nonce is a caller supplied variability field.
	Nonce uint64
	// MerkleRoot is the root over Payload, EmptyHash when there is no payload.
	MerkleRoot chainhash.Hash
	Version    uint8

	// ChainRoot is the accumulator root over ChainHashes. Both are only set
	// for blocks built with NewInChain.
	ChainRoot   chainhash.Hash
	ChainHashes []chainhash.Hash
}

// New constructs a block over payload. The payload is copied, the block does
// not retain the caller's slice.
func New[T byteable.Byteable](
	previousHash *chainhash.Hash, payload []T, timestamp uint64, nonce uint64,
) *Block[T] {
	return newBlock(chainhash.NewHasher(), previousHash, payload, timestamp, nonce)
}

// NewSingle constructs a block carrying exactly one value.
func NewSingle[T byteable.Byteable](
	previousHash *chainhash.Hash, value T, timestamp uint64, nonce uint64,
) *Block[T] {
	return New(previousHash, []T{value}, timestamp, nonce)
}

func newBlock[T byteable.Byteable](
	hasher hash.Hash, previousHash *chainhash.Hash, payload []T, timestamp uint64, nonce uint64,
) *Block[T] {

	b := &Block[T]{
		Payload:    make([]T, len(payload)),
		Timestamp:  timestamp,
		Nonce:      nonce,
		MerkleRoot: chainhash.EmptyHash,
		Version:    Version,
	}
	copy(b.Payload, payload)

	if previousHash != nil {
		prev := *previousHash
		b.PreviousHash = &prev
	}

	// The merkle root depends only on the payload. An empty payload leaves
	// the sentinel in place.
	if len(b.Payload) > 0 {
		b.MerkleRoot, _ = merkle.Root(hasher, b.Payload)
	}
	b.CurrentHash = b.CalculateHash(hasher)
	return b
}

// CalculateHash recomputes the content hash from the block fields. It does
// not modify the block.
// ** the hasher is reset **
func (b *Block[T]) CalculateHash(hasher hash.Hash) chainhash.Hash {
	hasher.Reset()
	if b.PreviousHash != nil {
		_, _ = hasher.Write(b.PreviousHash[:])
	}
	for _, item := range b.Payload {
		_, _ = hasher.Write(item.Bytes())
	}
	chainhash.HashWriteUint64LE(hasher, b.Timestamp)
	chainhash.HashWriteUint64LE(hasher, b.Nonce)
	_, _ = hasher.Write(b.MerkleRoot[:])
	chainhash.HashWriteUint8(hasher, b.Version)
	return chainhash.SumHash(hasher)
}

// CalculateMerkleRoot recomputes the payload merkle root. It returns
// EmptyHash for an empty payload.
func (b *Block[T]) CalculateMerkleRoot(hasher hash.Hash) chainhash.Hash {
	if len(b.Payload) == 0 {
		return chainhash.EmptyHash
	}
	root, _ := merkle.Root(hasher, b.Payload)
	return root
}

// IsGenesis is true for a block without a predecessor
func (b *Block[T]) IsGenesis() bool { return b.PreviousHash == nil }

// VerifyHash returns true if CurrentHash matches the block fields.
func (b *Block[T]) VerifyHash() bool {
	return b.CalculateHash(chainhash.NewHasher()) == b.CurrentHash
}

// VerifyMerkleRoot returns true if MerkleRoot matches the payload.
func (b *Block[T]) VerifyMerkleRoot() bool {
	return b.CalculateMerkleRoot(chainhash.NewHasher()) == b.MerkleRoot
}

// CheckValueInBlock reports whether candidate is the value committed at
// position when the block was built. It substitutes candidate into a copy
// of the payload, recomputes the merkle root and compares it with the
// stored root. Positions outside the payload are reported as not present.
func (b *Block[T]) CheckValueInBlock(candidate T, position int) bool {
	if len(b.Payload) == 0 {
		return false
	}
	root, ok := merkle.RootWithCandidate(chainhash.NewHasher(), b.Payload, candidate, position)
	if !ok {
		return false
	}
	return root == b.MerkleRoot
}

// InclusionProof returns the merkle path for the payload item at position.
func (b *Block[T]) InclusionProof(position int) ([]merkle.ProofStep, error) {
	return merkle.InclusionProof(chainhash.NewHasher(), b.Payload, position)
}

func (b *Block[T]) String() string {
	var sb strings.Builder
	prev := "none"
	if b.PreviousHash != nil {
		prev = b.PreviousHash.String()
	}
	items := make([]string, 0, len(b.Payload))
	for _, it := range b.Payload {
		items = append(items, fmt.Sprintf("%v", it))
	}
	fmt.Fprintf(&sb, "Block{CurrentHash: %s, PreviousHash: %s, Payload: [%s], Timestamp: %d, Nonce: %d, MerkleRoot: %s, Version: %d",
		b.CurrentHash, prev, strings.Join(items, ", "), b.Timestamp, b.Nonce, b.MerkleRoot, b.Version)
	if !b.ChainRoot.IsEmpty() {
		fmt.Fprintf(&sb, ", ChainRoot: %s, ChainLength: %d", b.ChainRoot, len(b.ChainHashes))
	}
	sb.WriteString("}")
	return sb.String()
}
