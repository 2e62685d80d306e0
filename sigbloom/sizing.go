package sigbloom

// MBitsV1 returns bitsPerElement * elemCount as a uint32, or 0 when the
// product is zero or does not fit.
func MBitsV1(elemCount uint64, bitsPerElement uint64) uint32 {
	if elemCount == 0 || bitsPerElement == 0 {
		return 0
	}
	if bitsPerElement > uint64(^uint32(0)) || elemCount > uint64(^uint32(0))/bitsPerElement {
		return 0
	}
	return uint32(bitsPerElement * elemCount)
}

// BitsetBytesV1 returns ceil(mBits/8).
func BitsetBytesV1(mBits uint32) uint32 {
	return uint32((uint64(mBits) + 7) / 8)
}

// RegionBytesV1 returns the byte length of a region holding filters bitsets of
// mBits each:
//
//	HeaderBytesV1 + filters*ceil(mBits/8)
func RegionBytesV1(filters uint8, mBits uint32) uint64 {
	return uint64(HeaderBytesV1) + uint64(filters)*uint64(BitsetBytesV1(mBits))
}

func filterBitsetOffV1(filterIdx uint8, filters uint8, bitsetBytes uint32) (uint64, error) {
	if filterIdx >= filters {
		return 0, ErrBadFilterIndex
	}
	return uint64(HeaderBytesV1) + uint64(filterIdx)*uint64(bitsetBytes), nil
}

// CheckBPE validates a bits-per-element setting.
func CheckBPE(bitsPerElement uint64) error {
	if bitsPerElement == 0 {
		return ErrBadMBits
	}
	if bitsPerElement > uint64(^uint32(0)) {
		return ErrMBitsOverflow
	}
	return nil
}
