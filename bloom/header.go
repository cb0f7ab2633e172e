package bloom

import "encoding/binary"

// Header layout, integers little-endian:
//
//	[0:4]   magic "BLC1"
//	[4]     version
//	[5]     filters
//	[6]     k
//	[7]     zero
//	[8:12]  mBits
//	[12:16] inserted, FilterBlockHash
//	[16:20] inserted, FilterMerkleRoot
//	[20:32] zero
const (
	offVersion  = 4
	offFilters  = 5
	offK        = 6
	offMBits    = 8
	offInserted = 12
)

// DecodeHeaderV1 decodes a V1 header from region.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeaderV1(region []byte) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}
	if binary.LittleEndian.Uint32(region[0:4]) == 0 {
		return HeaderV1{}, false, nil
	}

	switch {
	case string(region[0:4]) != MagicV1:
		return HeaderV1{}, false, ErrBadMagic
	case region[offVersion] != VersionV1:
		return HeaderV1{}, false, ErrBadVersion
	case region[offFilters] != Filters:
		return HeaderV1{}, false, ErrBadFilters
	}

	h.K = region[offK]
	h.MBits = binary.LittleEndian.Uint32(region[offMBits:])
	for i := range h.Inserted {
		h.Inserted[i] = binary.LittleEndian.Uint32(region[offInserted+4*i:])
	}
	if err = h.validate(); err != nil {
		return HeaderV1{}, false, err
	}
	return h, true, nil
}

// EncodeHeaderV1 writes a V1 header into region.
func EncodeHeaderV1(region []byte, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if err := h.validate(); err != nil {
		return err
	}

	clear(region[:HeaderBytesV1])
	copy(region[0:4], MagicV1)
	region[offVersion] = VersionV1
	region[offFilters] = Filters
	region[offK] = h.K
	binary.LittleEndian.PutUint32(region[offMBits:], h.MBits)
	for i, n := range h.Inserted {
		binary.LittleEndian.PutUint32(region[offInserted+4*i:], n)
	}
	return nil
}

func (h HeaderV1) validate() error {
	if h.K == 0 {
		return ErrBadK
	}
	if h.MBits == 0 {
		return ErrBadMBits
	}
	return nil
}
