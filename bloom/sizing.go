package bloom

// MBitsV1 returns bitsPerElement * capacity, or 0 if that can not be
// represented in the uint32 header field.
func MBitsV1(capacity uint64, bitsPerElement uint64) uint32 {
	if capacity == 0 || bitsPerElement == 0 {
		return 0
	}
	if bitsPerElement > uint64(^uint32(0)) || capacity > uint64(^uint32(0))/bitsPerElement {
		return 0
	}
	return uint32(bitsPerElement * capacity)
}

// BitsetBytesV1 returns ceil(mBits/8).
func BitsetBytesV1(mBits uint32) uint32 {
	return uint32((uint64(mBits) + 7) / 8)
}

// RegionBytesV1 returns the required byte length for a region given mBits:
//
//	HeaderBytesV1 + Filters*ceil(mBits/8)
func RegionBytesV1(mBits uint32) uint64 {
	return uint64(HeaderBytesV1) + uint64(Filters)*uint64(BitsetBytesV1(mBits))
}

func filterBitsetOffV1(filterIdx uint8, bitsetBytes uint32) (uint32, error) {
	if filterIdx >= Filters {
		return 0, ErrBadFilterIndex
	}
	return uint32(HeaderBytesV1) + uint32(filterIdx)*bitsetBytes, nil
}
