package bloom

/*

# Bloom prefilter for chain lookups

This package provides a fixed size, preallocated Bloom region used by the
chain package to answer "have we seen this hash?" without scanning every
block.

- If the filter says "definitely not present", the hash is not in the chain.
- If the filter says "maybe present", the caller must confirm with a scan.

Bloom filters are not commitments and prove nothing. They are an
optimization only.

## 2 parallel filters

The region holds two bitsets of identical size, one per kind of 32 byte
value the chain indexes:

	+----------------------+  32B header (magic, version, k, mBits, a count per filter)
	| HeaderV1             |
	+----------------------+  bitset bytes (filter 0, block content hashes)
	| FilterBlockHash      |
	+----------------------+  bitset bytes (filter 1, payload merkle roots)
	| FilterMerkleRoot     |
	+----------------------+

## Indexing and bit numbering

Indexes are derived by double hashing SHA-256( 0xB1 || filterIdx || elem ),
reading the two 64 bit seeds little-endian. Bit 0 is the least significant
bit of byte 0, and there is no other bit order.

The V1 suffix names the region layout. A new layout is added side by side as
V2 rather than changing V1 in place.

*/
