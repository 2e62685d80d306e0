package octdag

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/forestrie/go-octdag/packed"
	"github.com/forestrie/go-octdag/scene"
	"github.com/forestrie/go-octdag/sigbloom"
	"github.com/forestrie/go-octdag/volume"
)

// Builder voxelizes scene descriptors into octree DAGs. A Builder holds only
// configuration and may be reused, but each Build call is single threaded.
type Builder struct {
	opts BuilderOptions
}

func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{opts: defaultBuilderOptions()}
	for _, o := range opts {
		o(&b.opts)
	}
	if _, ok := dedupModeNames[b.opts.Dedup]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrBadDedupMode, b.opts.Dedup)
	}
	if b.opts.Dedup == DedupLinear {
		if err := sigbloom.CheckBPE(b.opts.PrefilterBitsPerElement); err != nil {
			return nil, err
		}
		if b.opts.PrefilterK == 0 {
			return nil, sigbloom.ErrBadK
		}
	}
	return b, nil
}

// BuildPreset builds one of the named scenes.
func (b *Builder) BuildPreset(p scene.Preset, maxDepth uint32) (*Graph, error) {
	if err := CheckMaxDepth(maxDepth); err != nil {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", err, maxDepth, MinDepth, MaxDepth)
	}
	desc, err := p.DescriptorFor(maxDepth)
	if err != nil {
		return nil, err
	}
	return b.Build(desc, maxDepth)
}

// Build voxelizes desc to maxDepth levels. Configuration errors are reported
// before any node is produced.
func (b *Builder) Build(desc scene.Descriptor, maxDepth uint32) (*Graph, error) {
	if err := CheckMaxDepth(maxDepth); err != nil {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", err, maxDepth, MinDepth, MaxDepth)
	}
	if err := desc.Validate(maxDepth); err != nil {
		return nil, err
	}

	index, err := newDedupIndex(b.opts.Dedup, maxDepth, &b.opts)
	if err != nil {
		return nil, err
	}

	bd := &build{
		pairs:        desc.Pairs,
		maxDepth:     maxDepth,
		maxLevelSize: int32(1) << maxDepth,
		index:        index,
		nodes:        make([]Node, 1, 64),
	}
	bd.stats.Scene = desc.String()
	bd.stats.MaxDepth = maxDepth
	bd.stats.Dedup = b.opts.Dedup.String()
	bd.stats.LevelNodes = make([]uint64, maxDepth)
	bd.stats.LevelNodes[0] = 1

	// The root is written in place and never enters the dedup index.
	half := levelSize(maxDepth, 1)
	for i := range bd.nodes[RootRef] {
		o, err := bd.fill(OctantDir(i).Scale(half), 1)
		if err != nil {
			return nil, err
		}
		bd.nodes[RootRef][i] = o
	}

	if l, ok := index.(*linearIndex); ok {
		bd.stats.PrefilterSkips = l.skips
	}
	bd.stats.Nodes = uint64(len(bd.nodes))

	g := &Graph{nodes: bd.nodes, maxDepth: maxDepth, stats: bd.stats}
	b.logBuild(desc, g)
	return g, nil
}

func (b *Builder) logBuild(desc scene.Descriptor, g *Graph) {
	log := b.opts.Log
	if log == nil {
		return
	}
	st := g.stats
	log.Infof(
		"octdag: built %s at depth %d: %d nodes, %d shared, %d leaves (%s dedup)",
		desc.Name, st.MaxDepth, st.Nodes, st.Shared, st.Leaves, st.Dedup)
	for d, n := range st.LevelNodes {
		log.Debugf("octdag: depth %d: %d nodes", d, n)
	}
	if st.DegenerateNormals > 0 || st.ZeroDensityAggregates > 0 {
		log.Debugf("octdag: %d degenerate normals, %d zero density aggregates",
			st.DegenerateNormals, st.ZeroDensityAggregates)
	}
}

// build is the exclusively owned state of one Build call.
type build struct {
	pairs        []scene.Pair
	maxDepth     uint32
	maxLevelSize int32
	index        dedupIndex
	nodes        []Node
	stats        Stats
}

// closest returns the pair whose volume reports the algebraically smallest
// distance at pos, with that volume's raw result. The first pair wins ties.
func (bd *build) closest(pos mgl32.Vec3) (scene.Pair, mgl32.Vec4) {
	size := float32(bd.maxLevelSize)
	best := bd.pairs[0]
	bestDist := best.Volume.Distance(pos, size)
	for _, p := range bd.pairs[1:] {
		d := p.Volume.Distance(pos, size)
		if d.X() < bestDist.X() {
			best, bestDist = p, d
		}
	}
	return best, bestDist
}

// fill produces the octant for the cell at pos, depth levels below the root.
func (bd *build) fill(pos volume.Cell, depth uint32) (Octant, error) {
	pair, dist := bd.closest(pos.Vec3())
	d := dist.X() / float32(levelSize(bd.maxDepth, depth))

	switch {
	case d < -1 || (depth == bd.maxDepth && d <= 1):
		bd.stats.Leaves++
		return Octant{
			Kind:   KindLeaf,
			Color:  pair.Material.Bake(pos, bd.maxLevelSize),
			Normal: bd.leafNormal(dist),
		}, nil
	case d <= 1:
		bd.stats.Interior++
		return bd.subdivide(pos, depth)
	default:
		bd.stats.Empty++
		return Octant{}, nil
	}
}

// leafNormal packs the volume direction, components 1..3 of a distance
// result, as a unit normal with full density.
func (bd *build) leafNormal(dist mgl32.Vec4) uint32 {
	dir := mgl32.Vec3{dist[1], dist[2], dist[3]}
	if l := dir.Len(); l != 0 {
		dir = mgl32.Vec3{dir.X() / l, dir.Y() / l, dir.Z() / l}
	} else {
		bd.stats.DegenerateNormals++
		dir = mgl32.Vec3{}
	}
	return packed.Pack(dir.Vec4(1))
}

func (bd *build) subdivide(pos volume.Cell, depth uint32) (Octant, error) {
	var candidate Node
	step := levelSize(bd.maxDepth, depth+1)
	for i := range candidate {
		o, err := bd.fill(pos.Add(OctantDir(i).Scale(step)), depth+1)
		if err != nil {
			return Octant{}, err
		}
		candidate[i] = o
	}

	ref, ok := bd.index.lookup(bd.nodes, depth, &candidate)
	if ok {
		bd.stats.Shared++
	} else {
		if uint64(len(bd.nodes)) >= uint64(NoRef) {
			return Octant{}, ErrNodeCountLimit
		}
		ref = Ref(len(bd.nodes))
		bd.nodes = append(bd.nodes, candidate)
		bd.stats.LevelNodes[depth]++
		if err := bd.index.record(depth, &candidate, ref); err != nil {
			return Octant{}, err
		}
	}

	// Attributes come from the candidate even when a match is reused.
	s := bd.aggregate(&candidate)
	return Octant{Kind: KindInterior, Child: ref, Color: s.color, Normal: s.normal}, nil
}

func (bd *build) aggregate(n *Node) summary {
	s := aggregate(n)
	if s.zeroDensity {
		bd.stats.ZeroDensityAggregates++
	}
	return s
}
