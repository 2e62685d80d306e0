package octdag

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-octdag/packed"
)

func withDensities(ds ...uint8) Node {
	var n Node
	for i, d := range ds {
		n[i].Normal = packed.PackBytes(0, 0, 0, d)
	}
	return n
}

func TestNetworkDensity(t *testing.T) {
	tests := []struct {
		name string
		ds   []uint8
		want float32
	}{
		{"empty", []uint8{0, 0, 0, 0, 0, 0, 0, 0}, 0},
		{"full", []uint8{255, 255, 255, 255, 255, 255, 255, 255}, 4},
		// Sorted pairs end up as (30,200) and (60,250).
		{"mixed", []uint8{10, 200, 30, 40, 250, 5, 60, 70}, 540.0 / 255},
		{"one", []uint8{0, 0, 0, 0, 0, 0, 0, 255}, 1},
		{"lower half", []uint8{255, 255, 255, 255, 0, 0, 0, 0}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := withDensities(tc.ds...)
			assert.InDelta(t, tc.want, networkDensity(&n), 1e-5)
		})
	}
}

func TestAggregateUniform(t *testing.T) {
	red := packed.Pack(mgl32.Vec4{1, 0, 0, 1})
	up := packed.Pack(mgl32.Vec4{0, 0, 1, 1})

	var n Node
	for i := range n {
		n[i] = Octant{Color: red, Normal: up}
	}
	s := aggregate(&n)
	require.False(t, s.zeroDensity)
	assert.Equal(t, uint32(0xFF0000FF), s.color)
	assert.Equal(t, uint32(0x0000FFFF), s.normal)
}

func TestAggregateWeightsByDensity(t *testing.T) {
	red := packed.Pack(mgl32.Vec4{1, 0, 0, 1})
	up := packed.Pack(mgl32.Vec4{0, 0, 1, 1})

	// Empty octants have no weight, so half a node of red is still red.
	var n Node
	for i := 0; i < 4; i++ {
		n[i] = Octant{Color: red, Normal: up}
	}
	s := aggregate(&n)
	require.False(t, s.zeroDensity)
	assert.Equal(t, uint32(0xFF0000FF), s.color)
	assert.Equal(t, uint32(0x0000FFFF), s.normal)
}

func TestAggregateZeroDensity(t *testing.T) {
	var n Node
	for i := range n {
		// Colour without density contributes nothing.
		n[i].Color = 0xFFFFFFFF
	}
	s := aggregate(&n)
	require.True(t, s.zeroDensity)
	assert.Equal(t, uint32(0), s.color)
	assert.Equal(t, uint32(0), s.normal)
}

func TestAggregateNeverEmitsNaNChannels(t *testing.T) {
	var n Node
	s := aggregate(&n)
	v := packed.Unpack(s.normal)
	for i := range v {
		assert.Equal(t, float32(0), v[i])
	}
}
