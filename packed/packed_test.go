package packed

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackRoundTripWithinOneStep(t *testing.T) {
	for _, v := range []float32{0.0, 0.25, 0.5, 0.75, 1.0} {
		got := Unpack(Pack(mgl32.Vec4{v, v, v, v}))
		for i := 0; i < Channels; i++ {
			assert.InDelta(t, v, got[i], 1.0/255.0, "channel %d of %v", i, v)
		}
	}
}

func TestPackMixedChannels(t *testing.T) {
	word := Pack(mgl32.Vec4{1.0, 0.0, 0.5, 1.0})
	require.Equal(t, uint32(0xFF007FFF), word)

	got := Unpack(word)
	assert.InDelta(t, 1.0, got[0], 1e-6)
	assert.InDelta(t, 0.0, got[1], 1e-6)
	assert.InDelta(t, 127.0/255.0, got[2], 1e-6)
	assert.InDelta(t, 1.0, got[3], 1e-6)
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half truncates", 0.5, 127},
		{"negative saturates", -0.5, 0},
		{"large saturates", 4, 255},
		{"nan", math32.NaN(), 0},
		{"inf", math32.Inf(1), 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantize(tt.in))
		})
	}
}

func TestPackBytesLayout(t *testing.T) {
	word := PackBytes(0x11, 0x22, 0x33, 0x44)
	require.Equal(t, uint32(0x11223344), word)

	c0, c1, c2, c3 := UnpackBytes(word)
	assert.Equal(t, []uint8{0x11, 0x22, 0x33, 0x44}, []uint8{c0, c1, c2, c3})
	for i, want := range []uint8{0x11, 0x22, 0x33, 0x44} {
		assert.Equal(t, want, Channel(word, i))
	}
	assert.Equal(t, uint8(0x44), Density(word))
}
