package sigbloom

import (
	"crypto/sha256"
)

const sigDomainV1 = 0x5B

// InitV1 initializes region with a HeaderV1 for filters filters of mBits each.
//
// The caller must allocate region with at least RegionBytesV1(filters, mBits).
func InitV1(region []byte, filters uint8, mBits uint32, k uint8) error {
	if mBits == 0 {
		return ErrBadMBits
	}
	if filters == 0 || filters > MaxFilters {
		return ErrBadFilters
	}
	need := RegionBytesV1(filters, mBits)
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}

	// Ensure clean initialization even if region is reused.
	clear(region[:need])

	return EncodeHeaderV1(region, HeaderV1{
		BitOrder: BitOrderLSB0,
		K:        k,
		Filters:  filters,
		MBits:    mBits,
	})
}

// InsertV1 inserts sig into filterIdx and increments NInserted in the header.
func InsertV1(region []byte, filterIdx uint8, sig []byte) error {
	h, bitset, err := filterBitset(region, filterIdx, sig)
	if err != nil {
		return err
	}

	h1, h2 := hashPairV1(filterIdx, sig)
	setBitsLSB0(bitset, uint64(h.MBits), h.K, h1, h2)

	h.NInserted++
	return EncodeHeaderV1(region, h)
}

// MaybeContainsV1 checks membership for sig in filterIdx.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func MaybeContainsV1(region []byte, filterIdx uint8, sig []byte) (bool, error) {
	h, bitset, err := filterBitset(region, filterIdx, sig)
	if err != nil {
		return false, err
	}

	h1, h2 := hashPairV1(filterIdx, sig)
	return testBitsLSB0(bitset, uint64(h.MBits), h.K, h1, h2), nil
}

func filterBitset(region []byte, filterIdx uint8, sig []byte) (HeaderV1, []byte, error) {
	if len(sig) != SignatureBytes {
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
	off, err := filterBitsetOffV1(filterIdx, h.Filters, bitsetBytes)
	if err != nil {
		return HeaderV1{}, nil, err
	}
	end := off + uint64(bitsetBytes)
	if uint64(len(region)) < end {
		return HeaderV1{}, nil, ErrBadRegionSize
	}
	return h, region[off:end], nil
}

func hashPairV1(filterIdx uint8, sig []byte) (h1 uint64, h2 uint64) {
	// SHA-256( 0x5B || filterIdx || sig )
	var buf [1 + 1 + SignatureBytes]byte
	buf[0] = sigDomainV1
	buf[1] = filterIdx
	copy(buf[2:], sig)
	sum := sha256.Sum256(buf[:])
	h1 = readU64BE(sum[0:8])
	h2 = readU64BE(sum[8:16])
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

func setBitsLSB0(bitset []byte, mBits uint64, k uint8, h1, h2 uint64) {
	for i := uint64(0); i < uint64(k); i++ {
		j := (h1 + i*h2) % mBits
		bitset[j>>3] |= 1 << uint8(j&7)
	}
}

func testBitsLSB0(bitset []byte, mBits uint64, k uint8, h1, h2 uint64) bool {
	for i := uint64(0); i < uint64(k); i++ {
		j := (h1 + i*h2) % mBits
		if bitset[j>>3]&(1<<uint8(j&7)) == 0 {
			return false
		}
	}
	return true
}
