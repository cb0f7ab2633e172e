package merkle

import (
	"hash"

	"github.com/forestrie/go-hashchain/byteable"
	"github.com/forestrie/go-hashchain/chainhash"
)

// Root returns the merkle root of an ordered, non-empty sequence of leaves.
func Root[T byteable.Byteable](hasher hash.Hash, leaves []T) (chainhash.Hash, error) {
	if len(leaves) == 0 {
		return chainhash.EmptyHash, ErrEmptyLeaves
	}
	return subtreeRoot(hasher, leaves, true), nil
}

// The accumulator variant runs the generic engine over chainhash.Hash leaves.
var _ byteable.Byteable = chainhash.Hash{}

// RootHashes returns the accumulator root over a sequence of block hashes.
// A single hash is returned as is.
func RootHashes(hasher hash.Hash, hashes []chainhash.Hash) (chainhash.Hash, error) {
	if len(hashes) == 0 {
		return chainhash.EmptyHash, ErrEmptyLeaves
	}
	return subtreeRoot(hasher, hashes, false), nil
}

// RootWithCandidate recomputes the root of leaves with the leaf at position
// replaced by candidate. leaves is not modified. ok is false if position is
// not a valid leaf index.
func RootWithCandidate[T byteable.Byteable](
	hasher hash.Hash, leaves []T, candidate T, position int,
) (root chainhash.Hash, ok bool) {
	if position < 0 || position >= len(leaves) {
		return chainhash.EmptyHash, false
	}
	substituted := make([]T, len(leaves))
	copy(substituted, leaves)
	substituted[position] = candidate
	return subtreeRoot(hasher, substituted, true), true
}

// RootHashesWithCandidate is RootWithCandidate for the accumulator variant
func RootHashesWithCandidate(
	hasher hash.Hash, hashes []chainhash.Hash, candidate chainhash.Hash, position int,
) (root chainhash.Hash, ok bool) {
	if position < 0 || position >= len(hashes) {
		return chainhash.EmptyHash, false
	}
	substituted := make([]chainhash.Hash, len(hashes))
	copy(substituted, hashes)
	substituted[position] = candidate
	return subtreeRoot(hasher, substituted, false), true
}

// subtreeRoot is the recursive engine. The caller guarantees len(leaves) > 0.
//
// selfPair selects the singleton rule: true pairs a lone leaf with itself,
// false returns it directly (its bytes must then be a hash).
func subtreeRoot[T byteable.Byteable](hasher hash.Hash, leaves []T, selfPair bool) chainhash.Hash {

	switch len(leaves) {
	case 1:
		b := leaves[0].Bytes()
		if !selfPair {
			var h chainhash.Hash
			copy(h[:], b)
			return h
		}
		return chainhash.HashPair(hasher, b, b)
	case 2:
		return chainhash.HashPair(hasher, leaves[0].Bytes(), leaves[1].Bytes())
	}

	mid := len(leaves) / 2
	left := subtreeRoot(hasher, leaves[:mid], selfPair)
	right := subtreeRoot(hasher, leaves[mid:], selfPair)
	return chainhash.HashPair(hasher, left[:], right[:])
}
