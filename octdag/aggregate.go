package octdag

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/forestrie/go-octdag/packed"
)

// summary is the baked colour and normal an interior octant carries so that
// ancestors can shade it without descending.
type summary struct {
	color       uint32
	normal      uint32
	zeroDensity bool
}

// compareExchange pairs, applied in order. Only the upper pair of each half
// is read afterwards.
var densityNetwork = [...][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {4, 6},
	{1, 3}, {5, 7},
	{2, 3}, {6, 7},
}

// networkDensity estimates how much of the node is occupied from the density
// bytes of its octants' normals.
func networkDensity(n *Node) float32 {
	var d [NodeOctants]uint8
	for i := range n {
		d[i] = packed.Density(n[i].Normal)
	}
	for _, p := range densityNetwork {
		if d[p[0]] > d[p[1]] {
			d[p[0]], d[p[1]] = d[p[1]], d[p[0]]
		}
	}
	var density float32
	for _, half := range [2]int{0, 4} {
		density += packed.Dequantize(d[half+2]) + packed.Dequantize(d[half+3])
	}
	return density
}

// aggregate averages the octants' colour and direction weighted by each
// octant's density. When no octant has any density the summary is fully
// transparent black with a zero direction.
func aggregate(n *Node) summary {
	density := networkDensity(n)

	var color mgl32.Vec4
	var dir mgl32.Vec3
	var total float32
	for i := range n {
		c := packed.Unpack(n[i].Color)
		nv := packed.Unpack(n[i].Normal)
		w := nv.W()
		total += w
		color = color.Add(c.Mul(w))
		dir = dir.Add(nv.Vec3().Mul(w))
	}

	if total == 0 {
		return summary{
			normal:      packed.Pack(mgl32.Vec4{0, 0, 0, density}),
			zeroDensity: true,
		}
	}
	return summary{
		color: packed.Pack(mgl32.Vec4{
			color.X() / total, color.Y() / total, color.Z() / total, color.W() / total,
		}),
		normal: packed.Pack(mgl32.Vec4{dir.X() / total, dir.Y() / total, dir.Z() / total, density}),
	}
}
