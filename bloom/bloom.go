package bloom

import (
	"encoding/binary"

	"github.com/forestrie/go-hashchain/chainhash"
)

const bloomDomainV1 = 0xB1

// NewRegionV1 allocates and initializes a region sized for capacity elements
// per filter.
func NewRegionV1(capacity uint64, bitsPerElement uint64, k uint8) ([]byte, error) {
	mBits := MBitsV1(capacity, bitsPerElement)
	if mBits == 0 {
		return nil, ErrMBitsOverflow
	}
	region := make([]byte, RegionBytesV1(mBits))
	if err := InitV1(region, capacity, bitsPerElement, k); err != nil {
		return nil, err
	}
	return region, nil
}

// InitV1 initializes region with a HeaderV1 and zeroed bitsets.
//
// The caller must allocate region with at least RegionBytesV1(mBits), where:
//
//	mBits = MBitsV1(capacity, bitsPerElement)
func InitV1(region []byte, capacity uint64, bitsPerElement uint64, k uint8) error {
	if capacity == 0 || bitsPerElement == 0 {
		return ErrBadMBits
	}
	if k == 0 {
		return ErrBadK
	}
	mBits := MBitsV1(capacity, bitsPerElement)
	if mBits == 0 {
		return ErrMBitsOverflow
	}
	need := RegionBytesV1(mBits)
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}
	// a reused region must not keep stale bits
	clear(region[:need])
	return EncodeHeaderV1(region, HeaderV1{K: k, MBits: mBits})
}

// InsertV1 sets the bits for elem in filterIdx and counts the insertion.
func InsertV1(region []byte, filterIdx uint8, elem []byte) error {
	h, bits, err := openFilter(region, filterIdx, elem)
	if err != nil {
		return err
	}
	for _, p := range bitPositions(filterIdx, elem, h) {
		bits[p>>3] |= 1 << (p & 7)
	}
	if h.Inserted[filterIdx] != ^uint32(0) {
		h.Inserted[filterIdx]++
	}
	return EncodeHeaderV1(region, h)
}

// MaybeContainsV1 checks membership for elem in filterIdx.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func MaybeContainsV1(region []byte, filterIdx uint8, elem []byte) (bool, error) {
	h, bits, err := openFilter(region, filterIdx, elem)
	if err != nil {
		return false, err
	}
	for _, p := range bitPositions(filterIdx, elem, h) {
		if bits[p>>3]&(1<<(p&7)) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// openFilter validates the arguments and returns the header and the bitset
// of filterIdx.
func openFilter(region []byte, filterIdx uint8, elem []byte) (HeaderV1, []byte, error) {
	if filterIdx >= Filters {
		return HeaderV1{}, nil, ErrBadFilterIndex
	}
	if len(elem) != ValueBytes {
		return HeaderV1{}, nil, ErrBadElemSize
	}
	h, ok, err := DecodeHeaderV1(region)
	if err != nil {
		return HeaderV1{}, nil, err
	}
	if !ok {
		return HeaderV1{}, nil, ErrNotInitialized
	}
	bitsetBytes := BitsetBytesV1(h.MBits)
	off, err := filterBitsetOffV1(filterIdx, bitsetBytes)
	if err != nil {
		return HeaderV1{}, nil, err
	}
	end := uint64(off) + uint64(bitsetBytes)
	if uint64(len(region)) < end {
		return HeaderV1{}, nil, ErrBadRegionSize
	}
	return h, region[off:end], nil
}

// bitPositions returns the K bit positions for elem, double hashing the digest of
// 0xB1 || filterIdx || elem. The step is forced odd so it is never zero.
func bitPositions(filterIdx uint8, elem []byte, h HeaderV1) []uint64 {
	sum := chainhash.Sum(chainhash.NewHasher(), []byte{bloomDomainV1, filterIdx}, elem)
	h1 := binary.LittleEndian.Uint64(sum[0:8])
	h2 := binary.LittleEndian.Uint64(sum[8:16]) | 1

	m := uint64(h.MBits)
	positions := make([]uint64, h.K)
	for i := range positions {
		positions[i] = (h1 + uint64(i)*h2) % m
	}
	return positions
}
