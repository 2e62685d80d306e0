package octdag

import (
	"fmt"
	"io"
)

// SizeString reports the node count and the wire size in megabytes.
func (g *Graph) SizeString() string {
	return fmt.Sprintf("Node count: %d,  Size in Mb: %g", len(g.nodes), float32(g.SizeBytes())/1e6)
}

// Dump writes every node reachable from the root, depth first, one line per
// node. Shared nodes are written once per reference.
func (g *Graph) Dump(w io.Writer) error {
	if len(g.nodes) == 0 {
		return ErrEmptyGraph
	}
	return g.DumpNode(w, RootRef)
}

// DumpNode writes the subtree rooted at ref.
func (g *Graph) DumpNode(w io.Writer, ref Ref) error {
	if uint64(ref) >= uint64(len(g.nodes)) {
		return ErrRefOutOfRange
	}
	n := &g.nodes[ref]
	if _, err := fmt.Fprintf(w, "index: %d, octants: (", ref); err != nil {
		return err
	}
	for _, o := range n {
		if _, err := fmt.Fprintf(w, "[index: %d, colour: 0x%08x, normal: 0x%08x]", o.WireChild(), o.Color, o.Normal); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ") \n"); err != nil {
		return err
	}
	for _, o := range n {
		if o.IsLeaf() {
			continue
		}
		if err := g.DumpNode(w, o.Child); err != nil {
			return err
		}
	}
	return nil
}
