// Package scene describes what the octree builder voxelizes: an ordered list
// of (volume, material) pairs, optionally chosen by a named preset.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/forestrie/go-octdag/volume"
)

var (
	ErrEmptyDescriptor   = errors.New("scene: descriptor has no volumes")
	ErrNilVolume         = errors.New("scene: pair has no volume or material")
	ErrUnknownPreset     = errors.New("scene: unknown preset")
	ErrDepthBelowMinimum = errors.New("scene: depth below the scene minimum")
)

// Pair binds a volume to the material painted on the cells it claims.
type Pair struct {
	Volume   volume.Volume
	Material volume.Material
}

// Descriptor is the read-only scene input to a build. Pair order matters:
// the first pair wins when two volumes report the same distance.
//
// MinDepth is the scene's own minimum, zero when it has none. The supported
// depth range is the builder's concern.
type Descriptor struct {
	Name     string
	Pairs    []Pair
	MinDepth uint32
}

// NewDescriptor copies pairs so later changes by the caller cannot leak into
// a build.
func NewDescriptor(name string, minDepth uint32, pairs ...Pair) Descriptor {
	return Descriptor{
		Name:     name,
		Pairs:    append([]Pair(nil), pairs...),
		MinDepth: minDepth,
	}
}

// Validate checks the descriptor is complete and usable at maxDepth.
func (d Descriptor) Validate(maxDepth uint32) error {
	if len(d.Pairs) == 0 {
		return ErrEmptyDescriptor
	}
	for i, p := range d.Pairs {
		if p.Volume == nil || p.Material == nil {
			return fmt.Errorf("%w: pair %d", ErrNilVolume, i)
		}
	}
	if maxDepth < d.MinDepth {
		return fmt.Errorf("%w: %s needs %d, got %d", ErrDepthBelowMinimum, d.label(), d.MinDepth, maxDepth)
	}
	return nil
}

// String lists the pairs as volume/material names, e.g.
// "perimeter:coloured-walls".
func (d Descriptor) String() string {
	parts := make([]string, 0, len(d.Pairs))
	for _, p := range d.Pairs {
		parts = append(parts, fmt.Sprintf("%v:%v", p.Volume, p.Material))
	}
	return strings.Join(parts, ",")
}

func (d Descriptor) label() string {
	if d.Name != "" {
		return d.Name
	}
	return "scene"
}
