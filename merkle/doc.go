package merkle

/*

# Merkle roots over an ordered leaf sequence

The tree is built top down by recursive halving. For n leaves the left subtree
takes the first n/2 (integer division) and the right takes the remainder, so
for odd n the *right* side is the larger:

	[a b c]        ->   [a] | [b c]
	[a b c d e]    ->   [a b] | [c d e]  ->  [a b] | [c] | [d e]

The base cases work on raw leaf bytes, not on leaf hashes:

	n == 1:  H(bytes(x) || bytes(x))
	n == 2:  H(bytes(x) || bytes(y))

and interior nodes combine the two 32 byte child roots:

	n > 2:   H(root(left) || root(right))

No position or domain tag is committed. That is the wire contract for block
merkle roots and it must be preserved exactly; swapping the split sides, or
pre-hashing leaves, changes every root.

## The accumulator variant

RootHashes works over a sequence of already computed block hashes. It differs
only in the singleton case: a lone hash *is* its own root, it is not paired
with itself. The root of a chain of one block is that block's hash.

## Proofs

Checking a leaf with RootWithCandidate needs the full leaf set. InclusionProof
extracts the sibling path so a leaf can be checked against a root with
O(log n) values instead. Because the bottom of the tree hashes raw bytes, the
first step of a payload proof carries the sibling *leaf bytes* (or SideSelf
for a singleton subtree) and only the steps above it carry 32 byte roots.

	          r
	       /     \
	     l        m
	    / \     /   \
	   a   b   c    [d e]

	proof(c) = [ SideSelf, SideRight:root([d e]), SideLeft:root([a b]) ]

A proof only means something together with the leaf count and the leaf
index. VerifyInclusion takes both and rejects a proof whose steps differ
from the path the split rule gives for them, so an interior node can not be
passed off as a leaf by dropping the steps below it.

The bottom step still carries raw bytes. With unframed leaves, "ab" glued
to an empty sibling hashes the same as "a" next to "b", and no check on the
proof can tell them apart. Payloads that need proofs with fixed leaf
boundaries should be built from byteable.FrameAll and checked with
VerifyFramedInclusion.

*/
