package volume

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-octdag/packed"
	"github.com/go-gl/mathgl/mgl32"
)

type MaterialKind uint8

const (
	// TiledSpectrum maps each axis to a colour channel, wrapping negative
	// coordinates into the positive half of the scene.
	TiledSpectrum MaterialKind = iota
	// RedZGradient ramps red with height over a dim grey.
	RedZGradient
	// ClearBlue is a faint, nearly transparent blue.
	ClearBlue
	// ColouredWalls paints each axis-facing wall pure red, green or blue.
	ColouredWalls
)

const gradientFloor = 50

var (
	clearBlue = packed.Pack(mgl32.Vec4{0.1, 0.1, 0.5, 0.01})
	wallRed   = packed.Pack(mgl32.Vec4{1, 0, 0, 1})
	wallGreen = packed.Pack(mgl32.Vec4{0, 1, 0, 1})
	wallBlue  = packed.Pack(mgl32.Vec4{0, 0, 1, 1})
)

var materialNames = map[MaterialKind]string{
	TiledSpectrum: "tiled-spectrum",
	RedZGradient:  "red-z-gradient",
	ClearBlue:     "clear-blue",
	ColouredWalls: "coloured-walls",
}

func (k MaterialKind) String() string {
	if name, ok := materialNames[k]; ok {
		return name
	}
	return fmt.Sprintf("material(%d)", uint8(k))
}

// ParseMaterialKind accepts the names returned by String, case insensitively.
func ParseMaterialKind(s string) (MaterialKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range materialNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
}

// Bake implements Material.
func (k MaterialKind) Bake(pos Cell, maxLevelSize int32) uint32 {
	switch k {
	case TiledSpectrum:
		return tiledSpectrum(pos, maxLevelSize)
	case RedZGradient:
		return packed.PackBytes(ramp(pos.Z, maxLevelSize), gradientFloor, gradientFloor, packed.ChannelMax)
	case ClearBlue:
		return clearBlue
	case ColouredWalls:
		return colouredWalls(pos)
	}
	return 0
}

func tiledSpectrum(pos Cell, maxLevelSize int32) uint32 {
	tile := func(c int32) int32 {
		if c >= 0 {
			return c
		}
		return maxLevelSize + c
	}
	return packed.PackBytes(
		ramp(tile(pos.X), maxLevelSize),
		ramp(tile(pos.Y), maxLevelSize),
		ramp(tile(pos.Z), maxLevelSize),
		packed.ChannelMax)
}

// ramp maps c linearly onto a byte using integer arithmetic. Values outside
// [0, maxLevelSize) are truncated to 8 bits rather than clamped.
func ramp(c, maxLevelSize int32) uint8 {
	return uint8(c * packed.ChannelMax / maxLevelSize)
}

func colouredWalls(pos Cell) uint32 {
	colour := wallRed
	dist := abs32(pos.X)
	if abs32(pos.Y) > dist {
		colour = wallGreen
		dist = abs32(pos.Y)
	}
	if abs32(pos.Z) > dist {
		colour = wallBlue
	}
	return colour
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
