package volume

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type VolumeKind uint8

const (
	// Perimeter is the inside of the scene bounding cube.
	Perimeter VolumeKind = iota
	// Pillar is a vertical cylinder offset half a scene to -x.
	Pillar
	// Plane is a gently inclined plane near the top of the scene.
	Plane
)

const (
	pillarRadiusScale = 0.2
	planeSlope        = 10.0
)

var planeNormal = mgl32.Vec3{1, 1, planeSlope}

var volumeNames = map[VolumeKind]string{
	Perimeter: "perimeter",
	Pillar:    "pillar",
	Plane:     "plane",
}

func (k VolumeKind) String() string {
	if name, ok := volumeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("volume(%d)", uint8(k))
}

// ParseVolumeKind accepts the names returned by String, case insensitively.
func ParseVolumeKind(s string) (VolumeKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range volumeNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVolume, s)
}

// Distance implements Volume.
func (k VolumeKind) Distance(pos mgl32.Vec3, maxLevelSize float32) mgl32.Vec4 {
	switch k {
	case Perimeter:
		return perimeter(pos, maxLevelSize)
	case Pillar:
		return pillar(pos, maxLevelSize)
	case Plane:
		return plane(pos, maxLevelSize)
	}
	// Unknown kinds lose every closest-volume comparison.
	return mgl32.Vec4{math32.Inf(1), 0, 0, 0}
}

func perimeter(pos mgl32.Vec3, maxLevelSize float32) mgl32.Vec4 {
	dist := math32.Abs(pos.X())
	norm := mgl32.Vec3{1, 0, 0}
	if math32.Abs(pos.Y()) > dist {
		dist = math32.Abs(pos.Y())
		norm = mgl32.Vec3{0, 1, 0}
	}
	if math32.Abs(pos.Z()) > dist {
		dist = math32.Abs(pos.Z())
		norm = mgl32.Vec3{0, 0, 1}
	}
	return withDirection(maxLevelSize-dist-1, norm)
}

func pillar(pos mgl32.Vec3, maxLevelSize float32) mgl32.Vec4 {
	offset := mgl32.Vec3{pos.X() + maxLevelSize*0.5, pos.Y(), pos.Z()}
	radius := maxLevelSize * pillarRadiusScale
	// The axis is vertical, so y plays no part in the distance.
	reach := math32.Sqrt(offset.X()*offset.X() + offset.Z()*offset.Z())
	return withDirection(radius-reach, offset)
}

func plane(pos mgl32.Vec3, maxLevelSize float32) mgl32.Vec4 {
	height := (pos.X()*planeNormal.X()+pos.Y()*planeNormal.Y())/planeNormal.Z() + maxLevelSize
	return withDirection(height-pos.Z(), planeNormal)
}

func withDirection(dist float32, dir mgl32.Vec3) mgl32.Vec4 {
	return mgl32.Vec4{dist, dir[0], dir[1], dir[2]}
}
