package scene

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-octdag/volume"
)

type Preset uint8

const (
	// Box is a hollow cube with red, green and blue walls.
	Box Preset = iota
	// Pillar is a spectrum coloured room cut by an inclined red floor and a
	// translucent blue pillar.
	Pillar
)

const (
	boxMinDepth    = 2
	pillarMinDepth = 4
)

var presetNames = map[Preset]string{
	Box:    "Box",
	Pillar: "Pillar",
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("preset(%d)", uint8(p))
}

// ParsePreset accepts preset names case insensitively.
func ParsePreset(s string) (Preset, error) {
	for p, name := range presetNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// MinDepth is the shallowest build that resolves the preset's features.
func (p Preset) MinDepth() uint32 {
	if p == Pillar {
		return pillarMinDepth
	}
	return boxMinDepth
}

// Descriptor returns the preset's scene.
func (p Preset) Descriptor() (Descriptor, error) {
	switch p {
	case Box:
		return NewDescriptor(p.String(), p.MinDepth(),
			Pair{volume.Perimeter, volume.ColouredWalls},
		), nil
	case Pillar:
		return NewDescriptor(p.String(), p.MinDepth(),
			Pair{volume.Perimeter, volume.TiledSpectrum},
			Pair{volume.Plane, volume.RedZGradient},
			Pair{volume.Pillar, volume.ClearBlue},
		), nil
	}
	return Descriptor{}, fmt.Errorf("%w: %v", ErrUnknownPreset, p)
}

// DescriptorFor returns the preset's scene after checking it can be built at
// maxDepth.
func (p Preset) DescriptorFor(maxDepth uint32) (Descriptor, error) {
	d, err := p.Descriptor()
	if err != nil {
		return Descriptor{}, err
	}
	if err := d.Validate(maxDepth); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}
