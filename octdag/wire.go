package octdag

// NodeRecordOffset returns the byte offset of ref in a graph buffer.
func NodeRecordOffset(ref Ref) uint64 {
	return uint64(ref) * NodeBytes
}

func nodeRec(buf []byte, ref Ref) []byte {
	off := NodeRecordOffset(ref)
	return buf[off : off+NodeBytes]
}

func octantRec(rec []byte, slot int) []byte {
	off := slot * OctantBytes
	return rec[off : off+OctantBytes]
}

// NodeWrite encodes n into buf at ref.
func NodeWrite(buf []byte, ref Ref, n *Node) {
	rec := nodeRec(buf, ref)
	for i := range n {
		o := octantRec(rec, i)
		WireByteOrder.PutUint32(o[0:4], n[i].WireChild())
		WireByteOrder.PutUint32(o[4:8], n[i].Color)
		WireByteOrder.PutUint32(o[8:12], n[i].Normal)
		WireByteOrder.PutUint32(o[12:16], n[i].Extra)
	}
}

// NodeRead decodes the node at ref from buf. It does not validate refs.
func NodeRead(buf []byte, ref Ref) Node {
	var n Node
	rec := nodeRec(buf, ref)
	for i := range n {
		o := octantRec(rec, i)
		child := WireByteOrder.Uint32(o[0:4])
		if Ref(child) == NoRef {
			n[i].Kind = KindLeaf
		} else {
			n[i].Kind = KindInterior
			n[i].Child = Ref(child)
		}
		n[i].Color = WireByteOrder.Uint32(o[4:8])
		n[i].Normal = WireByteOrder.Uint32(o[8:12])
		n[i].Extra = WireByteOrder.Uint32(o[12:16])
	}
	return n
}

// Decode parses and validates a wire encoded graph.
func Decode(data []byte) (*Graph, error) {
	if len(data) == 0 {
		return nil, ErrEmptyGraph
	}
	if len(data)%NodeBytes != 0 {
		return nil, ErrGraphBadSize
	}
	count := uint64(len(data) / NodeBytes)
	if count >= uint64(NoRef) {
		return nil, ErrNodeCountLimit
	}
	g := &Graph{nodes: make([]Node, count)}
	for i := range g.nodes {
		g.nodes[i] = NodeRead(data, Ref(i))
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
