// Package block implements the per block cryptographic envelope of a hash
// linked chain: the payload merkle root, the link to the predecessor and the
// content hash committing to both.
//
// A Block is built once, by New or NewInChain, and is read only afterwards.
// Distinct blocks may be constructed concurrently; nothing here touches
// shared state.
//
// The content hash is
//
//	H( prev[32]? || payload bytes || timestamp_le8 || nonce_le8 || merkleRoot[32] || version_u8 )
//
// where prev is omitted entirely for the genesis block and the payload bytes
// are the unframed concatenation of each element's Byteable form. The field
// order is the wire contract.
package block
