package chain

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-hashchain/block"
	"github.com/forestrie/go-hashchain/bloom"
	"github.com/forestrie/go-hashchain/byteable"
	"github.com/forestrie/go-hashchain/chainhash"
	"github.com/forestrie/go-hashchain/merkle"
)

type Chain[T byteable.Byteable] struct {
	opts   Options
	log    logger.Logger
	blocks []*block.Block[T]

	// bloomRegion indexes block hashes and payload roots, see package bloom
	bloomRegion []byte
	// bloomBroken is set once an index update fails. Lookups then scan.
	bloomBroken bool
}

func New[T byteable.Byteable](opts ...Option) (*Chain[T], error) {
	o := newDefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chain[T]{
		opts: o,
		log:  o.Log,
	}
	region, err := bloom.NewRegionV1(o.BloomCapacity, o.BloomBitsPerElement, o.BloomK)
	if err != nil {
		return nil, fmt.Errorf("chain bloom prefilter: %w", err)
	}
	c.bloomRegion = region
	return c, nil
}

// Append builds the next block over payload and adds it to the chain.
//
// The timestamp is caller supplied. It is only required not to go backwards
// relative to the head.
func (c *Chain[T]) Append(payload []T, timestamp uint64, nonce uint64) (*block.Block[T], error) {

	if head, err := c.Head(); err == nil && timestamp < head.Timestamp {
		return nil, fmt.Errorf(
			"%w: %d < %d", ErrTimestampRegression, timestamp, head.Timestamp)
	}

	b := block.NewInChain(c.blocks, payload, timestamp, nonce)
	c.blocks = append(c.blocks, b)

	if err := c.index(b); err != nil {
		// the block is committed, only the prefilter is affected
		return b, err
	}

	c.debugf("append: i=%d, h=%s, mr=%s, cr=%s", len(c.blocks)-1, b.CurrentHash, b.MerkleRoot, b.ChainRoot)
	return b, nil
}

func (c *Chain[T]) Len() int { return len(c.blocks) }

func (c *Chain[T]) Head() (*block.Block[T], error) {
	if len(c.blocks) == 0 {
		return nil, ErrEmptyChain
	}
	return c.blocks[len(c.blocks)-1], nil
}

func (c *Chain[T]) Get(i int) (*block.Block[T], error) {
	if i < 0 || i >= len(c.blocks) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.blocks))
	}
	return c.blocks[i], nil
}

// Blocks returns the blocks in chain order. The slice is a copy, the blocks
// are shared.
func (c *Chain[T]) Blocks() []*block.Block[T] {
	blocks := make([]*block.Block[T], len(c.blocks))
	copy(blocks, c.blocks)
	return blocks
}

// InclusionProof returns the path committing the block at i to the head's
// chain root, along with that root.
func (c *Chain[T]) InclusionProof(i int) ([]merkle.ProofStep, chainhash.Hash, error) {
	head, err := c.Head()
	if err != nil {
		return nil, chainhash.EmptyHash, err
	}
	if i < 0 || i >= len(c.blocks) {
		return nil, chainhash.EmptyHash, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.blocks))
	}
	proof, err := head.ChainInclusionProof(i)
	if err != nil {
		return nil, chainhash.EmptyHash, err
	}
	return proof, head.ChainRoot, nil
}

func (c *Chain[T]) debugf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.Debugf(format, args...)
}

func (c *Chain[T]) infof(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.Infof(format, args...)
}
