package octdag

import "github.com/forestrie/go-octdag/volume"

// Octant is one child slot of a node.
//
// Child is meaningful only for KindInterior. Extra is reserved and always zero
// from the builder.
type Octant struct {
	Kind   OctantKind
	Child  Ref
	Color  uint32
	Normal uint32
	Extra  uint32
}

// Node is a fixed group of 8 octants.
type Node [NodeOctants]Octant

// IsLeaf reports whether the octant has no child node.
func (o Octant) IsLeaf() bool {
	return o.Kind != KindInterior
}

// WireChild returns the childIndex word written to the wire.
func (o Octant) WireChild() uint32 {
	if o.IsLeaf() {
		return uint32(NoRef)
	}
	return uint32(o.Child)
}

// OctantDir returns the unit direction of octant slot i, each axis -1 or +1.
func OctantDir(i int) volume.Cell {
	axis := func(bit int) int32 {
		if i&(1<<bit) != 0 {
			return 1
		}
		return -1
	}
	return volume.Cell{X: axis(0), Y: axis(1), Z: axis(2)}
}
