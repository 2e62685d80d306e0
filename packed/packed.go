package packed

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Packed attribute words hold four 8 bit channels, channel 0 in the most
// significant byte:
//
//	| c0 | c1 | c2 | c3 |
//	|31 24|23 16|15  8|7  0|
//
// Colour words are RGBA. Normal words are XYZ plus a density byte in c3.
const (
	Channels   = 4
	ChannelMax = 255
	Mask8      = uint32(0x000000FF)
)

// Quantize converts a unit channel value to a byte.
//
// The value is scaled by 255 and truncated toward zero. Out of range values
// saturate to 0 or 255 and NaN maps to 0, so the result never depends on
// platform float to integer conversion rules.
func Quantize(f float32) uint8 {
	if math32.IsNaN(f) {
		return 0
	}
	v := f * ChannelMax
	if v <= 0 {
		return 0
	}
	if v >= ChannelMax {
		return ChannelMax
	}
	return uint8(v)
}

// Dequantize maps a byte back to [0,1].
func Dequantize(b uint8) float32 {
	return float32(b) / ChannelMax
}

// Pack quantizes the four channels of v into a single word.
func Pack(v mgl32.Vec4) uint32 {
	return PackBytes(Quantize(v[0]), Quantize(v[1]), Quantize(v[2]), Quantize(v[3]))
}

// Unpack reverses Pack. The round trip is exact only to within 1/255.
func Unpack(word uint32) mgl32.Vec4 {
	c0, c1, c2, c3 := UnpackBytes(word)
	return mgl32.Vec4{Dequantize(c0), Dequantize(c1), Dequantize(c2), Dequantize(c3)}
}

// PackBytes lays out four bytes, c0 most significant.
func PackBytes(c0, c1, c2, c3 uint8) uint32 {
	return uint32(c0)<<24 | uint32(c1)<<16 | uint32(c2)<<8 | uint32(c3)
}

func UnpackBytes(word uint32) (c0, c1, c2, c3 uint8) {
	return uint8(word >> 24 & Mask8), uint8(word >> 16 & Mask8), uint8(word >> 8 & Mask8), uint8(word & Mask8)
}

// Channel returns byte i (0 is most significant) of word.
func Channel(word uint32, i int) uint8 {
	return uint8(word >> (24 - 8*uint(i&3)) & Mask8)
}

// Density returns the low byte of a normal word.
func Density(word uint32) uint8 {
	return uint8(word & Mask8)
}
