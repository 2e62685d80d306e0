package octdag

/*

# Sparse voxel octree DAG

An OctDag is a flat, append-only array of fixed width node records. Each node
holds 8 octant records, one per child cell, indexed by a 3 bit code:

	bit 0 set: +X   clear: -X
	bit 1 set: +Y   clear: -Y
	bit 2 set: +Z   clear: -Z

An octant is either a leaf, carrying baked colour and normal words, or an
interior octant referring to the node that subdivides it further.

## Build order

Node 0 is the root. Every other node is appended only after all of its
children, so each interior ref recorded in a non-root node at index j is
strictly less than j. The root's refs are the only forward references. This
ordering is what makes the array a DAG rather than a tree with back edges.

## Deduplication

Before a freshly subdivided node is appended, the builder looks for an
already appended node at the same depth with the same canonical key: per slot,
either both leaves with equal colour, or both interior with the same child
ref. Children are canonicalized first, so ref equality suffices and no
recursive comparison is needed. A match reuses the existing ref and discards
the candidate.

## Wire format

	+--------------------------------+  node 0 (128 bytes)
	| octant 0 | octant 1 | ... | 7  |
	+--------------------------------+  node 1
	| ...                            |

Each octant is 4 little endian uint32 words:

	[ childIndex | colour | normal | extra ]

childIndex 0xFFFFFFFF marks a leaf. Leaf vs interior is an explicit Kind in
memory; the sentinel exists only at the wire.

*/
