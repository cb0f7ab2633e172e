package chain

import (
	"fmt"
)

// Verify recomputes every block and checks the links between them.
//
// The first failure is returned, wrapped with the index of the offending
// block. A nil return means every block hash, merkle root and accumulator
// root is consistent with the blocks as currently held.
func (c *Chain[T]) Verify() error {
	if len(c.blocks) == 0 {
		return ErrEmptyChain
	}
	for i := range c.blocks {
		if err := c.verifyBlock(i); err != nil {
			c.infof("verify: block %d: %v", i, err)
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

func (c *Chain[T]) verifyBlock(i int) error {
	b := c.blocks[i]

	if i == 0 {
		if b.PreviousHash != nil {
			return ErrBadGenesis
		}
	} else {
		prev := c.blocks[i-1]
		if b.PreviousHash == nil || *b.PreviousHash != prev.CurrentHash {
			return ErrBrokenLink
		}
	}

	if !b.VerifyMerkleRoot() {
		return ErrMerkleRootMismatch
	}
	if !b.VerifyHash() {
		return ErrHashMismatch
	}

	if len(b.ChainHashes) != i+1 {
		return fmt.Errorf("%w: accumulates %d blocks", ErrChainRootMismatch, len(b.ChainHashes))
	}
	for j := 0; j < i; j++ {
		if b.ChainHashes[j] != c.blocks[j].CurrentHash {
			return fmt.Errorf("%w: block %d", ErrChainRootMismatch, j)
		}
	}
	if !b.VerifyChainRoot() {
		return ErrChainRootMismatch
	}
	return nil
}
