package sigbloom

import "errors"

const (
	// SignatureBytes is the fixed element width.
	SignatureBytes = 32

	// MaxFilters bounds the per-region filter count (one per tree depth).
	MaxFilters = 32

	// HeaderBytesV1 is the fixed header size for HeaderV1.
	HeaderBytesV1 = 16

	MagicV1         = "SIG1"
	VersionV1 uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0
)

var (
	ErrBadElemSize    = errors.New("sigbloom: signature must be 32 bytes")
	ErrBadFilterIndex = errors.New("sigbloom: invalid filter index")
	ErrBadRegionSize  = errors.New("sigbloom: region buffer too small")
	ErrNotInitialized = errors.New("sigbloom: header not initialized")

	ErrBadMagic    = errors.New("sigbloom: header magic invalid")
	ErrBadVersion  = errors.New("sigbloom: header version invalid")
	ErrBadBitOrder = errors.New("sigbloom: header bitOrder unsupported")
	ErrBadK        = errors.New("sigbloom: header k invalid")
	ErrBadFilters  = errors.New("sigbloom: header filters invalid")
	ErrBadMBits    = errors.New("sigbloom: header mBits invalid")

	ErrMBitsOverflow = errors.New("sigbloom: mBits overflows supported range")
)

type HeaderV1 struct {
	BitOrder  uint8
	K         uint8
	Filters   uint8
	MBits     uint32
	NInserted uint32
}
