package byteable

/*

# Canonical byte serialization

Every value committed to a block is hashed through its Byteable form. The
contract is narrow:

  - integers are little-endian, at their natural width
  - strings are their stored bytes, no terminator and no length
  - a sequence is the concatenation of its elements, in iteration order

Nothing is inserted between elements. That makes the encoding ambiguous for
variable length items ("ab","c" and "a","bc" produce the same bytes) and this
is kept on purpose: changing it changes every hash a peer computes. Framed is
provided for payloads that need unambiguous boundaries. It is strictly opt in.

CBOR gives structured Go values a canonical form using the deterministic
encoding options shared with go-datatrails-common, so two processes encoding equal values always
produce identical bytes.

*/
