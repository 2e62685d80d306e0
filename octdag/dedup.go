package octdag

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/forestrie/go-octdag/sigbloom"
)

// DedupMode selects how freshly subdivided nodes are matched against nodes
// already appended at the same depth.
type DedupMode uint8

const (
	// DedupHashed looks candidates up by canonical key.
	DedupHashed DedupMode = iota
	// DedupLinear scans the depth's nodes in append order, skipping the scan
	// when the depth's signature filter rules the candidate out.
	DedupLinear
	// DedupNone appends every node, producing a plain octree.
	DedupNone
)

var dedupModeNames = map[DedupMode]string{
	DedupHashed: "hashed",
	DedupLinear: "linear",
	DedupNone:   "none",
}

func (m DedupMode) String() string {
	if name, ok := dedupModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("dedup(%d)", uint8(m))
}

func ParseDedupMode(s string) (DedupMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range dedupModeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDedupMode, s)
}

// nodeKey is the canonical structural key of a node. Leaves contribute their
// colour only; interior octants contribute their child ref, tagged so that
// a ref never collides with a colour.
type nodeKey [NodeOctants]uint64

const interiorTag = uint64(1) << 32

func keyOf(n *Node) nodeKey {
	var k nodeKey
	for i, o := range n {
		if o.IsLeaf() {
			k[i] = uint64(o.Color)
			continue
		}
		k[i] = interiorTag | uint64(o.Child)
	}
	return k
}

// sameShape reports whether candidate matches existing slot by slot. Leaf
// normals are not compared.
func sameShape(candidate, existing *Node) bool {
	for i := range candidate {
		c, e := candidate[i], existing[i]
		if c.IsLeaf() {
			if !e.IsLeaf() || e.Color != c.Color {
				return false
			}
			continue
		}
		if e.IsLeaf() || e.Child != c.Child {
			return false
		}
	}
	return true
}

func (k *nodeKey) signature() [sha256.Size]byte {
	var buf [NodeOctants * 8]byte
	for i, v := range k {
		binary.BigEndian.PutUint64(buf[i*8:], v)
	}
	return sha256.Sum256(buf[:])
}

// dedupIndex finds a previously recorded node equal to a candidate.
type dedupIndex interface {
	lookup(nodes []Node, depth uint32, candidate *Node) (Ref, bool)
	record(depth uint32, candidate *Node, ref Ref) error
}

func newDedupIndex(mode DedupMode, maxDepth uint32, opts *BuilderOptions) (dedupIndex, error) {
	switch mode {
	case DedupHashed:
		return newHashedIndex(maxDepth), nil
	case DedupLinear:
		return newLinearIndex(maxDepth, opts.PrefilterBitsPerElement, opts.PrefilterK)
	case DedupNone:
		return noIndex{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrBadDedupMode, mode)
}

type hashedIndex struct {
	levels []map[nodeKey]Ref
}

func newHashedIndex(maxDepth uint32) *hashedIndex {
	levels := make([]map[nodeKey]Ref, maxDepth)
	for i := range levels {
		levels[i] = make(map[nodeKey]Ref)
	}
	return &hashedIndex{levels: levels}
}

func (h *hashedIndex) lookup(_ []Node, depth uint32, candidate *Node) (Ref, bool) {
	ref, ok := h.levels[depth][keyOf(candidate)]
	return ref, ok
}

func (h *hashedIndex) record(depth uint32, candidate *Node, ref Ref) error {
	k := keyOf(candidate)
	// First recorded wins, matching the scan order of the linear index.
	if _, ok := h.levels[depth][k]; !ok {
		h.levels[depth][k] = ref
	}
	return nil
}

type linearIndex struct {
	levels [][]Ref
	region []byte
	skips  uint64
}

// prefilterCapacity caps the per-depth element estimate used to size the
// signature filters.
const prefilterCapacity = 1 << 16

func newLinearIndex(maxDepth uint32, bitsPerElement uint64, k uint8) (*linearIndex, error) {
	// Depths 1..maxDepth-1 each get a filter at index depth-1.
	filters := uint8(maxDepth - 1)
	elems := min(NodeCountMax(maxDepth), prefilterCapacity)
	mBits := sigbloom.MBitsV1(elems, bitsPerElement)
	if mBits == 0 {
		return nil, sigbloom.ErrMBitsOverflow
	}
	region := make([]byte, sigbloom.RegionBytesV1(filters, mBits))
	if err := sigbloom.InitV1(region, filters, mBits, k); err != nil {
		return nil, err
	}
	return &linearIndex{
		levels: make([][]Ref, maxDepth),
		region: region,
	}, nil
}

func (l *linearIndex) lookup(nodes []Node, depth uint32, candidate *Node) (Ref, bool) {
	k := keyOf(candidate)
	sig := k.signature()
	maybe, err := sigbloom.MaybeContainsV1(l.region, uint8(depth-1), sig[:])
	if err == nil && !maybe {
		l.skips++
		return NoRef, false
	}
	for _, ref := range l.levels[depth] {
		if sameShape(candidate, &nodes[ref]) {
			return ref, true
		}
	}
	return NoRef, false
}

func (l *linearIndex) record(depth uint32, candidate *Node, ref Ref) error {
	l.levels[depth] = append(l.levels[depth], ref)
	k := keyOf(candidate)
	sig := k.signature()
	return sigbloom.InsertV1(l.region, uint8(depth-1), sig[:])
}

type noIndex struct{}

func (noIndex) lookup([]Node, uint32, *Node) (Ref, bool) { return NoRef, false }
func (noIndex) record(uint32, *Node, Ref) error          { return nil }
