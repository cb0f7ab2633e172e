package chain

import "errors"

var (
	ErrIndexOutOfRange     = errors.New("chain: block index out of range")
	ErrEmptyChain          = errors.New("chain: no blocks")
	ErrTimestampRegression = errors.New("chain: timestamp is before the head block")
	ErrBadGenesis          = errors.New("chain: the first block must not have a previous hash")
	ErrBrokenLink          = errors.New("chain: previous hash does not match the preceding block")
	ErrHashMismatch        = errors.New("chain: block content hash does not match its fields")
	ErrMerkleRootMismatch  = errors.New("chain: block merkle root does not match its payload")
	ErrChainRootMismatch   = errors.New("chain: block accumulator does not match the chain")
)
