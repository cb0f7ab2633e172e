package chain

import (
	"github.com/forestrie/go-hashchain/block"
	"github.com/forestrie/go-hashchain/bloom"
	"github.com/forestrie/go-hashchain/chainhash"
)

// MaybeContains consults the bloom prefilter only. false means the hash is
// definitely not a block in the chain.
func (c *Chain[T]) MaybeContains(h chainhash.Hash) bool {
	return c.maybeContains(bloom.FilterBlockHash, h)
}

// MaybeContainsMerkleRoot is MaybeContains for payload merkle roots
func (c *Chain[T]) MaybeContainsMerkleRoot(root chainhash.Hash) bool {
	if root.IsEmpty() {
		return false
	}
	return c.maybeContains(bloom.FilterMerkleRoot, root)
}

// IndexOf returns the position of the block whose content hash is h.
func (c *Chain[T]) IndexOf(h chainhash.Hash) (int, bool) {
	if !c.MaybeContains(h) {
		return -1, false
	}
	for i, b := range c.blocks {
		if b.CurrentHash == h {
			return i, true
		}
	}
	return -1, false
}

func (c *Chain[T]) Contains(h chainhash.Hash) bool {
	_, ok := c.IndexOf(h)
	return ok
}

func (c *Chain[T]) maybeContains(filter uint8, h chainhash.Hash) bool {
	if c.bloomBroken {
		return true
	}
	ok, err := bloom.MaybeContainsV1(c.bloomRegion, filter, h[:])
	if err != nil {
		// a broken prefilter must never hide a block
		return true
	}
	return ok
}

// index adds b to the prefilter, growing it first if the chain has
// outgrown its configured capacity. A failure disables the prefilter for the
// life of the chain.
func (c *Chain[T]) index(b *block.Block[T]) error {
	if c.bloomBroken {
		return nil
	}
	var err error
	if uint64(len(c.blocks)) > c.opts.BloomCapacity {
		err = c.regrowBloom(c.opts.BloomCapacity * 2)
	} else {
		err = c.insertBloom(b)
	}
	if err != nil {
		c.bloomBroken = true
		c.infof("bloom: prefilter disabled, lookups will scan: %v", err)
	}
	return err
}

func (c *Chain[T]) insertBloom(b *block.Block[T]) error {
	if err := bloom.InsertV1(c.bloomRegion, bloom.FilterBlockHash, b.CurrentHash[:]); err != nil {
		return err
	}
	if b.MerkleRoot.IsEmpty() {
		return nil
	}
	return bloom.InsertV1(c.bloomRegion, bloom.FilterMerkleRoot, b.MerkleRoot[:])
}

func (c *Chain[T]) regrowBloom(capacity uint64) error {
	region, err := bloom.NewRegionV1(capacity, c.opts.BloomBitsPerElement, c.opts.BloomK)
	if err != nil {
		return err
	}
	c.infof("bloom: regrow capacity %d -> %d", c.opts.BloomCapacity, capacity)
	c.bloomRegion = region
	c.opts.BloomCapacity = capacity
	for _, b := range c.blocks {
		if err := c.insertBloom(b); err != nil {
			return err
		}
	}
	return nil
}
