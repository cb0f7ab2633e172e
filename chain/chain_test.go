package chain

import (
	"crypto/sha256"
	"testing"

	"github.com/forestrie/go-hashchain/bloom"
	"github.com/forestrie/go-hashchain/byteable"
	"github.com/forestrie/go-hashchain/chainhash"
	"github.com/forestrie/go-hashchain/chaintesting"
	"github.com/forestrie/go-hashchain/merkle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChain(t *testing.T, label string, blocks int, opts ...Option) (*Chain[byteable.String], chaintesting.TestContext) {
	tc := chaintesting.NewTestContext(t, chaintesting.TestConfig{
		StartTime:       1524885322,
		BlockInterval:   15,
		TestLabelPrefix: label,
	})
	opts = append([]Option{WithLogger(tc.GetLog())}, opts...)
	c, err := New[byteable.String](opts...)
	require.NoError(t, err)

	for i := 0; i < blocks; i++ {
		ts, nonce := tc.NextHeader()
		_, err := c.Append(tc.GeneratePayload(i%4+1), ts, nonce)
		require.NoError(t, err)
	}
	return c, tc
}

func TestChain_Append(t *testing.T) {
	c, _ := newTestChain(t, "append", 5)
	require.Equal(t, 5, c.Len())

	head, err := c.Head()
	require.NoError(t, err)
	assert.Len(t, head.ChainHashes, 5)

	for i, b := range c.Blocks() {
		got, err := c.Get(i)
		require.NoError(t, err)
		assert.Same(t, b, got)
		assert.True(t, head.CheckBlockInChain(b.CurrentHash, i))
	}

	genesis, err := c.Get(0)
	require.NoError(t, err)
	assert.True(t, genesis.IsGenesis())
	assert.Equal(t, genesis.CurrentHash, genesis.ChainRoot)

	require.NoError(t, c.Verify())
}

func TestChain_Empty(t *testing.T) {
	c, err := New[byteable.Int32]()
	require.NoError(t, err)

	_, err = c.Head()
	assert.ErrorIs(t, err, ErrEmptyChain)
	_, err = c.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, c.Verify(), ErrEmptyChain)
	_, _, err = c.InclusionProof(0)
	assert.ErrorIs(t, err, ErrEmptyChain)
	assert.False(t, c.Contains(chainhash.EmptyHash))
}

func TestChain_AppendEmptyPayload(t *testing.T) {
	c, err := New[byteable.Int32]()
	require.NoError(t, err)

	b, err := c.Append(nil, 1, 1)
	require.NoError(t, err)
	assert.True(t, b.MerkleRoot.IsEmpty())
	assert.False(t, c.MaybeContainsMerkleRoot(b.MerkleRoot))
	require.NoError(t, c.Verify())
}

func TestChain_TimestampRegression(t *testing.T) {
	c, err := New[byteable.Int32]()
	require.NoError(t, err)

	_, err = c.Append([]byteable.Int32{1}, 10, 0)
	require.NoError(t, err)
	_, err = c.Append([]byteable.Int32{2}, 10, 1)
	require.NoError(t, err, "equal timestamps are allowed")
	_, err = c.Append([]byteable.Int32{3}, 9, 2)
	assert.ErrorIs(t, err, ErrTimestampRegression)
	assert.Equal(t, 2, c.Len())
}

func TestChain_Lookup(t *testing.T) {
	c, _ := newTestChain(t, "lookup", 8)

	for i, b := range c.Blocks() {
		assert.True(t, c.MaybeContains(b.CurrentHash))
		assert.True(t, c.MaybeContainsMerkleRoot(b.MerkleRoot))
		idx, ok := c.IndexOf(b.CurrentHash)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}

	missing := chainhash.Sum(sha256.New(), []byte("not a block"))
	idx, ok := c.IndexOf(missing)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.False(t, c.Contains(missing))
}

func TestChain_BloomRegrow(t *testing.T) {
	c, _ := newTestChain(t, "regrow", 20, WithBloom(4, 10, 5))

	assert.Equal(t, uint64(32), c.opts.BloomCapacity)
	for _, b := range c.Blocks() {
		assert.True(t, c.MaybeContains(b.CurrentHash))
		assert.True(t, c.Contains(b.CurrentHash))
	}
}

func TestChain_BrokenBloomFallsBackToScan(t *testing.T) {
	tests := []struct {
		name     string
		capacity uint64
		breakIt  func(c *Chain[byteable.String])
		wantErr  error
	}{
		{
			// 4 blocks fill the prefilter, the next one forces a regrow
			name:     "regrow overflows",
			capacity: 4,
			breakIt: func(c *Chain[byteable.String]) {
				c.opts.BloomBitsPerElement = uint64(^uint32(0))
			},
			wantErr: bloom.ErrMBitsOverflow,
		},
		{
			name:     "corrupt region",
			capacity: 16,
			breakIt: func(c *Chain[byteable.String]) {
				copy(c.bloomRegion[0:4], "XXXX")
			},
			wantErr: bloom.ErrBadMagic,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tc := newTestChain(t, "broken", 4, WithBloom(tt.capacity, 10, 5))
			tt.breakIt(c)

			ts, nonce := tc.NextHeader()
			b, err := c.Append([]byteable.String{"late"}, ts, nonce)
			require.ErrorIs(t, err, tt.wantErr)
			require.NotNil(t, b)
			require.Equal(t, 5, c.Len())

			// the block is committed and lookups must still find it
			idx, ok := c.IndexOf(b.CurrentHash)
			assert.True(t, ok)
			assert.Equal(t, 4, idx)
			assert.True(t, c.MaybeContainsMerkleRoot(b.MerkleRoot))

			// later appends no longer touch the prefilter
			ts, nonce = tc.NextHeader()
			next, err := c.Append([]byteable.String{"later"}, ts, nonce)
			require.NoError(t, err)
			assert.True(t, c.Contains(next.CurrentHash))

			missing := chainhash.Sum(sha256.New(), []byte("not a block"))
			assert.False(t, c.Contains(missing))
			require.NoError(t, c.Verify())
		})
	}
}

func TestChain_BadBloomOptions(t *testing.T) {
	_, err := New[byteable.Int32](WithBloom(0, 10, 5))
	assert.Error(t, err)
}

func TestChain_InclusionProof(t *testing.T) {
	c, _ := newTestChain(t, "proof", 9)

	for i, b := range c.Blocks() {
		proof, root, err := c.InclusionProof(i)
		require.NoError(t, err)
		assert.True(t, merkle.VerifyInclusionHashes(sha256.New(), c.Len(), i, b.CurrentHash, proof, root))
	}
	_, _, err := c.InclusionProof(9)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
