package merkle

import (
	"hash"

	"github.com/forestrie/go-hashchain/byteable"
	"github.com/forestrie/go-hashchain/chainhash"
)

// VerifyInclusion returns true if leafBytes is committed as leaf i of an n
// leaf payload tree with the given root.
//
// The proof must have exactly the shape InclusionProof produces for (n, i):
// the same number of steps, the same sides, an empty value for a SideSelf
// step and a 32 byte value for every step above the bottom one. The bottom
// step of a pair carries the raw sibling leaf, so for unframed leaves the
// boundary between leafBytes and that sibling is not fixed by the root. Use
// VerifyFramedInclusion when the payload was built with byteable.FrameAll.
func VerifyInclusion(
	hasher hash.Hash, n int, i int, leafBytes []byte, proof []ProofStep, root chainhash.Hash,
) bool {
	if !validProofShape(n, i, proof, true) {
		return false
	}
	return verifyFold(hasher, leafBytes, proof, root)
}

// VerifyFramedInclusion is VerifyInclusion for payloads of byteable.Framed
// leaves. value is the unframed leaf. The raw sibling in the bottom step must
// itself be a single well formed frame, which pins the leaf boundaries.
func VerifyFramedInclusion(
	hasher hash.Hash, n int, i int, value []byte, proof []ProofStep, root chainhash.Hash,
) bool {
	if !validProofShape(n, i, proof, true) {
		return false
	}
	if len(proof) > 0 && proof[0].Side != SideSelf && !byteable.IsFrame(proof[0].Value) {
		return false
	}
	leafBytes := byteable.Frame(byteable.Raw(value)).Bytes()
	return verifyFold(hasher, leafBytes, proof, root)
}

// VerifyInclusionHashes returns true if leaf is committed as hash i of an n
// hash accumulator with the given root. Every step carries a 32 byte value.
func VerifyInclusionHashes(
	hasher hash.Hash, n int, i int, leaf chainhash.Hash, proof []ProofStep, root chainhash.Hash,
) bool {
	if !validProofShape(n, i, proof, false) {
		return false
	}
	return verifyFold(hasher, leaf[:], proof, root)
}

func verifyFold(hasher hash.Hash, leafBytes []byte, proof []ProofStep, root chainhash.Hash) bool {
	if root.IsEmpty() {
		return false
	}
	return IncludedRoot(hasher, leafBytes, proof) == root
}

// validProofShape compares proof with the path the n/2 split gives for leaf
// i. selfPair selects the payload tree, where only the bottom step may carry
// a value that is not a 32 byte root.
func validProofShape(n int, i int, proof []ProofStep, selfPair bool) bool {
	if n <= 0 || i < 0 || i >= n {
		return false
	}
	sides := pathSides(n, i, selfPair)
	if len(sides) != len(proof) {
		return false
	}
	for j, step := range proof {
		if step.Side != sides[j] {
			return false
		}
		switch {
		case step.Side == SideSelf:
			if len(step.Value) != 0 {
				return false
			}
		case j == 0 && selfPair:
			// raw sibling leaf, any width
		default:
			if len(step.Value) != chainhash.HashBytes {
				return false
			}
		}
	}
	return true
}

// pathSides is the side sequence inclusionPath emits, without hashing.
func pathSides(n int, i int, selfPair bool) []Side {
	switch n {
	case 1:
		if !selfPair {
			return nil
		}
		return []Side{SideSelf}
	case 2:
		if i == 0 {
			return []Side{SideRight}
		}
		return []Side{SideLeft}
	}
	mid := n / 2
	if i < mid {
		return append(pathSides(mid, i, selfPair), SideRight)
	}
	return append(pathSides(n-mid, i-mid, selfPair), SideLeft)
}
