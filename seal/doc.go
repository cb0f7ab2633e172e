// Package seal signs block headers with COSE Sign1.
//
// The sealed payload is a deterministic CBOR encoding of BlockState. The block
// hash is removed from the published payload after signing, a verifier
// restores it by recomputing the hash of the block it holds. This binds a
// seal to the block content rather than to a claimed hash.
package seal
