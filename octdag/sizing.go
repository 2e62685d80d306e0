package octdag

// NodeCountMax returns the most nodes a build at maxDepth can produce: the
// root plus a full octree of interior nodes at depths 1..maxDepth-1.
func NodeCountMax(maxDepth uint32) uint64 {
	return 1 + NonRootNodeCountMax(maxDepth)
}

// NonRootNodeCountMax bounds the nodes below the root.
//
//	sum(8^d, d=1..maxDepth-1)
func NonRootNodeCountMax(maxDepth uint32) uint64 {
	total := uint64(0)
	level := uint64(1)
	for d := uint32(1); d < maxDepth; d++ {
		level *= NodeOctants
		total += level
	}
	return total
}

// GraphBytes returns the wire size of nodeCount nodes.
func GraphBytes(nodeCount uint64) uint64 {
	return nodeCount * NodeBytes
}

// CheckMaxDepth checks maxDepth against the supported range.
func CheckMaxDepth(maxDepth uint32) error {
	if maxDepth < MinDepth || maxDepth > MaxDepth {
		return ErrDepthOutOfRange
	}
	return nil
}

func levelSize(maxDepth, depth uint32) int32 {
	return int32(1) << (maxDepth - depth)
}
