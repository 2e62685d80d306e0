package octdag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-octdag/scene"
)

func TestWireRoundTrip(t *testing.T) {
	g, err := mustBuilder(t).BuildPreset(scene.Pillar, 4)
	require.NoError(t, err)

	data, err := g.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, g.Len()*NodeBytes)
	require.Equal(t, g.SizeBytes(), uint64(len(data)))

	var decoded Graph
	require.NoError(t, decoded.UnmarshalBinary(data))
	require.Equal(t, g.Len(), decoded.Len())
	for i := 0; i < g.Len(); i++ {
		want, _ := g.Node(Ref(i))
		got, _ := decoded.Node(Ref(i))
		require.Equal(t, want, got, "node %d", i)
	}
	require.Equal(t, data, decoded.Bytes())
}

func TestWireOctantLayout(t *testing.T) {
	g := &Graph{nodes: make([]Node, 2)}
	g.nodes[0][0] = Octant{Kind: KindInterior, Child: 1, Color: 0x11223344, Normal: 0x55667788}
	g.nodes[0][1] = Octant{Color: 0xAABBCCDD, Normal: 0x000000FF}

	data := g.Bytes()
	require.Len(t, data, 2*NodeBytes)

	// Words are little endian.
	assert.Equal(t, []byte{1, 0, 0, 0}, data[0:4])
	assert.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, data[4:8])
	assert.Equal(t, []byte{0x88, 0x77, 0x66, 0x55}, data[8:12])
	assert.Equal(t, []byte{0, 0, 0, 0}, data[12:16])

	// A leaf carries the sentinel child index.
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, data[16:20])
	assert.Equal(t, uint32(0xAABBCCDD), WireByteOrder.Uint32(data[20:24]))

	// Zero octants are empty leaves.
	off := NodeRecordOffset(1)
	assert.Equal(t, uint32(NoRef), WireByteOrder.Uint32(data[off:off+4]))
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, err := Decode(nil)
	require.ErrorIs(t, err, ErrEmptyGraph)

	_, err = Decode(make([]byte, NodeBytes+1))
	require.ErrorIs(t, err, ErrGraphBadSize)

	encode := func(nodes ...Node) []byte {
		return (&Graph{nodes: nodes}).Bytes()
	}
	interior := func(ref Ref) Node {
		var n Node
		n[3] = Octant{Kind: KindInterior, Child: ref}
		return n
	}

	_, err = Decode(encode(interior(5), Node{}))
	require.ErrorIs(t, err, ErrDanglingRef)

	_, err = Decode(encode(interior(1), interior(2), Node{}))
	require.ErrorIs(t, err, ErrForwardRef)

	_, err = Decode(encode(interior(1), interior(1)))
	require.ErrorIs(t, err, ErrForwardRef)

	_, err = Decode(encode(interior(1), interior(0)))
	require.ErrorIs(t, err, ErrRootRef)

	// The root alone may refer forwards.
	g, err := Decode(encode(interior(2), Node{}, interior(1)))
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
}

func TestGraphAccessors(t *testing.T) {
	var empty Graph
	_, err := empty.Root()
	require.ErrorIs(t, err, ErrEmptyGraph)
	require.ErrorIs(t, empty.Validate(), ErrEmptyGraph)

	g, err := mustBuilder(t).BuildPreset(scene.Box, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(2), g.MaxDepth())
	_, err = g.Node(Ref(g.Len()))
	require.ErrorIs(t, err, ErrRefOutOfRange)

	// Bytes returns a copy the caller may scribble on.
	b := g.Bytes()
	b[0] ^= 0xFF
	require.NotEqual(t, b, g.Bytes())
}
