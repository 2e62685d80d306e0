package volume

import (
	"testing"

	"github.com/forestrie/go-octdag/packed"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColouredWallsDominantAxis(t *testing.T) {
	tests := []struct {
		name string
		pos  Cell
		want mgl32.Vec4
	}{
		{"x", Cell{5, 2, 1}, mgl32.Vec4{1, 0, 0, 1}},
		{"y", Cell{1, -7, 3}, mgl32.Vec4{0, 1, 0, 1}},
		{"z", Cell{-2, 3, -9}, mgl32.Vec4{0, 0, 1, 1}},
		{"x wins ties", Cell{3, 3, 3}, mgl32.Vec4{1, 0, 0, 1}},
		{"y wins tie with z", Cell{1, 4, -4}, mgl32.Vec4{0, 1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, packed.Unpack(ColouredWalls.Bake(tt.pos, 16)))
		})
	}
}

func TestTiledSpectrumWrapsNegative(t *testing.T) {
	word := TiledSpectrum.Bake(Cell{2, -1, 3}, 4)
	r, g, b, a := packed.UnpackBytes(word)
	assert.Equal(t, []uint8{127, 191, 191, 255}, []uint8{r, g, b, a})
}

func TestRedZGradient(t *testing.T) {
	r, g, b, a := packed.UnpackBytes(RedZGradient.Bake(Cell{-3, 9, 8}, 16))
	assert.Equal(t, []uint8{127, 50, 50, 255}, []uint8{r, g, b, a})

	// below the origin the ramp is truncated to 8 bits, not clamped
	r, _, _, _ = packed.UnpackBytes(RedZGradient.Bake(Cell{0, 0, -1}, 16))
	assert.Equal(t, uint8(256-15), r)
}

func TestClearBlue(t *testing.T) {
	r, g, b, a := packed.UnpackBytes(ClearBlue.Bake(Cell{1, 2, 3}, 16))
	assert.Equal(t, []uint8{25, 25, 127, 2}, []uint8{r, g, b, a})
}

func TestParseMaterialKind(t *testing.T) {
	for _, k := range []MaterialKind{TiledSpectrum, RedZGradient, ClearBlue, ColouredWalls} {
		got, err := ParseMaterialKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseMaterialKind("chrome")
	require.ErrorIs(t, err, ErrUnknownMaterial)
	assert.Equal(t, "material(99)", MaterialKind(99).String())
}
