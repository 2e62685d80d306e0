package volume

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Cell is an integer cell position relative to the scene origin. Cells at
// every depth share one lattice whose unit is the finest voxel.
type Cell struct {
	X, Y, Z int32
}

func (c Cell) Add(o Cell) Cell { return Cell{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }
func (c Cell) Scale(s int32) Cell { return Cell{c.X * s, c.Y * s, c.Z * s} }

// Vec3 returns the cell position as a float vector.
func (c Cell) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}

// Volume evaluates a signed distance for a cell position.
//
// The first component of the result is the distance and the remaining three
// are an unnormalized direction estimate. maxLevelSize is the linear extent of
// the whole scene in finest voxels.
type Volume interface {
	Distance(pos mgl32.Vec3, maxLevelSize float32) mgl32.Vec4
}

// Material bakes a packed RGBA colour for a cell position.
type Material interface {
	Bake(pos Cell, maxLevelSize int32) uint32
}

var (
	ErrUnknownVolume   = errors.New("volume: unknown volume kind")
	ErrUnknownMaterial = errors.New("volume: unknown material kind")
)
