package octdag

import (
	"encoding/binary"
	"errors"
)

const (
	// OctantWords is the number of uint32 words in an octant record.
	OctantWords = 4
	// OctantBytes is the fixed byte width of an octant record.
	OctantBytes = OctantWords * 4 // 16

	// NodeOctants is the fan out of every node.
	NodeOctants = 8
	// NodeBytes is the fixed byte width of a node record.
	NodeBytes = NodeOctants * OctantBytes // 128

	// MinDepth and MaxDepth bound the supported tree depth.
	MinDepth = 2
	MaxDepth = 16
)

// WireByteOrder is the word order of serialized graphs. Renderers upload the
// buffer verbatim, so it matches GPU host order.
var WireByteOrder = binary.LittleEndian

// Ref is a node index.
type Ref uint32

// NoRef is the wire childIndex of a leaf octant.
const NoRef = ^Ref(0)

// RootRef is always the first node.
const RootRef Ref = 0

type OctantKind uint8

const (
	// KindLeaf is the zero value so that a zero Octant is an empty leaf.
	KindLeaf OctantKind = iota
	KindInterior
)

func (k OctantKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindInterior:
		return "interior"
	}
	return "invalid"
}

var (
	ErrDepthOutOfRange = errors.New("octdag: max depth out of range")
	ErrBadDedupMode    = errors.New("octdag: unknown dedup mode")
	ErrGraphBadSize    = errors.New("octdag: graph buffer size invalid")
	ErrEmptyGraph      = errors.New("octdag: empty graph")
	ErrDanglingRef     = errors.New("octdag: child ref out of range")
	ErrForwardRef      = errors.New("octdag: child ref does not precede its parent")
	ErrRootRef         = errors.New("octdag: child ref points at the root")
	ErrRefOutOfRange   = errors.New("octdag: ref out of range")
	ErrNodeCountLimit  = errors.New("octdag: node count exceeds the addressable range")
)
