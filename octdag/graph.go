package octdag

// Graph is a finished, read-only octree DAG. It is safe for concurrent use.
type Graph struct {
	nodes    []Node
	maxDepth uint32
	stats    Stats
}

// Len returns the number of nodes, including the root.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// MaxDepth returns the depth the graph was built at, or 0 for decoded graphs
// where it is unknown.
func (g *Graph) MaxDepth() uint32 {
	return g.maxDepth
}

// Node returns a copy of the node at ref.
func (g *Graph) Node(ref Ref) (Node, error) {
	if uint64(ref) >= uint64(len(g.nodes)) {
		return Node{}, ErrRefOutOfRange
	}
	return g.nodes[ref], nil
}

// Root returns a copy of the root node.
func (g *Graph) Root() (Node, error) {
	if len(g.nodes) == 0 {
		return Node{}, ErrEmptyGraph
	}
	return g.nodes[RootRef], nil
}

// SizeBytes returns the wire size of the graph.
func (g *Graph) SizeBytes() uint64 {
	return GraphBytes(uint64(len(g.nodes)))
}

// Bytes returns a fresh wire encoding of the graph.
func (g *Graph) Bytes() []byte {
	buf := make([]byte, g.SizeBytes())
	for i := range g.nodes {
		NodeWrite(buf, Ref(i), &g.nodes[i])
	}
	return buf
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (g *Graph) MarshalBinary() ([]byte, error) {
	return g.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The data is
// validated as by Decode.
func (g *Graph) UnmarshalBinary(data []byte) error {
	d, err := Decode(data)
	if err != nil {
		return err
	}
	*g = *d
	return nil
}
