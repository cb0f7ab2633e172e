package bloom

import "errors"

const (
	// ValueBytes is the fixed element width, a chain hash.
	ValueBytes = 32

	// Filters is the number of parallel Bloom filters in a region.
	Filters uint8 = 2

	// FilterBlockHash indexes block content hashes
	FilterBlockHash uint8 = 0
	// FilterMerkleRoot indexes payload merkle roots
	FilterMerkleRoot uint8 = 1

	// HeaderBytesV1 is the fixed header size for HeaderV1.
	HeaderBytesV1 = 32

	MagicV1         = "BLC1"
	VersionV1 uint8 = 1
)

var (
	ErrBadElemSize    = errors.New("bloom: element must be 32 bytes")
	ErrBadFilterIndex = errors.New("bloom: invalid filter index")
	ErrBadRegionSize  = errors.New("bloom: region buffer too small")
	ErrNotInitialized = errors.New("bloom: header not initialized")

	ErrBadMagic   = errors.New("bloom: header magic invalid")
	ErrBadVersion = errors.New("bloom: header version invalid")
	ErrBadK       = errors.New("bloom: header k invalid")
	ErrBadFilters = errors.New("bloom: header filters invalid")
	ErrBadMBits   = errors.New("bloom: header mBits invalid")

	ErrMBitsOverflow = errors.New("bloom: mBits overflows supported range")
)

// HeaderV1 is the decoded region header. Both filters share K and MBits.
type HeaderV1 struct {
	K     uint8
	MBits uint32
	// Inserted counts insertions per filter. It saturates rather than wraps
	// and is informational only.
	Inserted [Filters]uint32
}
