package octdag

// Stats summarizes a build. Octant counters cover every octant the builder
// produced, including those of candidates discarded by deduplication.
type Stats struct {
	Scene    string `cbor:"scene"`
	MaxDepth uint32 `cbor:"maxDepth"`
	Dedup    string `cbor:"dedup"`

	Nodes uint64 `cbor:"nodes"`
	// LevelNodes[d] counts nodes appended at depth d; LevelNodes[0] is the
	// root.
	LevelNodes []uint64 `cbor:"levelNodes"`

	Leaves   uint64 `cbor:"leaves"`
	Empty    uint64 `cbor:"empty"`
	Interior uint64 `cbor:"interior"`
	Shared   uint64 `cbor:"shared"`

	DegenerateNormals     uint64 `cbor:"degenerateNormals"`
	ZeroDensityAggregates uint64 `cbor:"zeroDensityAggregates"`
	PrefilterSkips        uint64 `cbor:"prefilterSkips"`
}

// Stats returns the statistics of the build that produced g. Decoded graphs
// carry only the node count.
func (g *Graph) Stats() Stats {
	st := g.stats
	st.LevelNodes = append([]uint64(nil), g.stats.LevelNodes...)
	st.Nodes = uint64(len(g.nodes))
	return st
}
