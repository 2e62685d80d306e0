package octdag

import "fmt"

// Validate checks that every interior ref is in range and that no node other
// than the root refers forwards or back to the root.
func (g *Graph) Validate() error {
	if len(g.nodes) == 0 {
		return ErrEmptyGraph
	}
	n := uint64(len(g.nodes))
	for i := range g.nodes {
		for slot, o := range g.nodes[i] {
			if o.IsLeaf() {
				continue
			}
			if uint64(o.Child) >= n {
				return fmt.Errorf("%w: node %d slot %d ref %d, len %d", ErrDanglingRef, i, slot, o.Child, n)
			}
			if o.Child == RootRef {
				return fmt.Errorf("%w: node %d slot %d", ErrRootRef, i, slot)
			}
			if i != int(RootRef) && int(o.Child) >= i {
				return fmt.Errorf("%w: node %d slot %d ref %d", ErrForwardRef, i, slot, o.Child)
			}
		}
	}
	return nil
}
