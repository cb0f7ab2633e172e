package merkle

import (
	"hash"

	"github.com/forestrie/go-hashchain/byteable"
	"github.com/forestrie/go-hashchain/chainhash"
)

// Side says where the value carried by a ProofStep goes relative to the
// value accumulated so far.
type Side uint8

const (
	// SideSelf pairs the accumulated value with itself, H(v || v)
	SideSelf Side = iota
	// SideLeft gives H(step.Value || v)
	SideLeft
	// SideRight gives H(v || step.Value)
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideSelf:
		return "self"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// ProofStep is one level of an inclusion path, ordered leaf to root.
type ProofStep struct {
	Side  Side
	Value []byte
}

// InclusionProof collects the path committing leaves[i] to Root(leaves).
//
// For the leaves [a b c d e] and i=2 the path is
//
//	[self, right:root([d e]), left:root([a b])]
//
// See the package documentation for the tree shape.
func InclusionProof[T byteable.Byteable](hasher hash.Hash, leaves []T, i int) ([]ProofStep, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyLeaves
	}
	if i < 0 || i >= len(leaves) {
		return nil, ErrIndexOutOfRange
	}
	return inclusionPath(hasher, leaves, i, true), nil
}

// InclusionProofHashes collects the accumulator path committing hashes[i] to
// RootHashes(hashes). A singleton subtree contributes no step, so the proof
// for a chain of one block is empty.
func InclusionProofHashes(hasher hash.Hash, hashes []chainhash.Hash, i int) ([]ProofStep, error) {
	if len(hashes) == 0 {
		return nil, ErrEmptyLeaves
	}
	if i < 0 || i >= len(hashes) {
		return nil, ErrIndexOutOfRange
	}
	return inclusionPath(hasher, hashes, i, false), nil
}

func inclusionPath[T byteable.Byteable](hasher hash.Hash, leaves []T, i int, selfPair bool) []ProofStep {

	switch len(leaves) {
	case 1:
		if !selfPair {
			return nil
		}
		return []ProofStep{{Side: SideSelf}}
	case 2:
		if i == 0 {
			return []ProofStep{{Side: SideRight, Value: leaves[1].Bytes()}}
		}
		return []ProofStep{{Side: SideLeft, Value: leaves[0].Bytes()}}
	}

	mid := len(leaves) / 2

	// The path for i is the path within its own half followed by the root of
	// the other half.
	if i < mid {
		sibling := subtreeRoot(hasher, leaves[mid:], selfPair)
		return append(
			inclusionPath(hasher, leaves[:mid], i, selfPair),
			ProofStep{Side: SideRight, Value: sibling[:]})
	}
	sibling := subtreeRoot(hasher, leaves[:mid], selfPair)
	return append(
		inclusionPath(hasher, leaves[mid:], i-mid, selfPair),
		ProofStep{Side: SideLeft, Value: sibling[:]})
}
