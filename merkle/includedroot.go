package merkle

import (
	"hash"

	"github.com/forestrie/go-hashchain/chainhash"
)

// IncludedRoot folds a proof path over leafBytes and returns the root it
// commits to. Payload and accumulator proofs are handled identically.
//
// An empty proof is only produced for a one element accumulator, in which
// case leafBytes is itself the root.
func IncludedRoot(hasher hash.Hash, leafBytes []byte, proof []ProofStep) chainhash.Hash {

	if len(proof) == 0 {
		root, err := chainhash.FromBytes(leafBytes)
		if err != nil {
			return chainhash.EmptyHash
		}
		return root
	}

	value := leafBytes
	var root chainhash.Hash

	for _, step := range proof {
		switch step.Side {
		case SideSelf:
			root = chainhash.HashPair(hasher, value, value)
		case SideLeft:
			root = chainhash.HashPair(hasher, step.Value, value)
		default:
			root = chainhash.HashPair(hasher, value, step.Value)
		}
		value = root.Bytes()
	}
	return root
}
