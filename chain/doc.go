// Package chain keeps an append-only, in memory sequence of accumulator
// blocks and checks that it still hangs together.
//
// Every appended block is built with block.NewInChain over all the blocks
// before it, so the head's ChainRoot commits to the whole chain. A Chain is
// single writer. Callers that share one across goroutines must serialize
// access themselves.
package chain
