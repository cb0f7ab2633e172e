/*
Package chainhash provides the fixed size content hash shared by the merkle,
block and chain packages.

The digest is SHA-256 and every value is exactly HashBytes long. Functions
that hash take a hash.Hash from the caller so a hot loop can reuse a single
hasher. The hasher is
always reset before use.

Multi byte integers written into a hash by this package are little-endian.
Peers computing the same chain must agree on this bit for bit.
*/
package chainhash
