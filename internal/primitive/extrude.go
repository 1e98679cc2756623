package primitive

import (
	"github.com/chewxy/math32"

	"rosegen/internal/mesh"
)

// Extrude sweeps a closed 2D outline (XY plane, counter-clockwise, last point
// implicitly connects to the first) along Z by depth, with a rounded bevel of
// the given size at both faces. Caps are triangle fans around the outline
// centroid. Normals are recomputed from the final surface.
func Extrude(outline [][2]float32, depth, bevel float32, bevelSegs int) *mesh.Buffer {
	m := len(outline)
	if m < 3 || depth <= 0 {
		return &mesh.Buffer{}
	}
	if bevelSegs < 1 {
		bevelSegs = 1
	}
	if bevel > depth/2 {
		bevel = depth / 2
	}

	var cx, cy float32
	for _, p := range outline {
		cx += p[0]
		cy += p[1]
	}
	cx /= float32(m)
	cy /= float32(m)

	// Largest centroid distance scales the bevel inset into a ring scale.
	var extent float32
	for _, p := range outline {
		dx, dy := p[0]-cx, p[1]-cy
		if d := math32.Sqrt(dx*dx + dy*dy); d > extent {
			extent = d
		}
	}
	if extent < 1e-6 {
		return &mesh.Buffer{}
	}

	half := depth / 2

	// Ring schedule front to back: (inset, z). The bevel follows a quarter
	// arc so the edge reads rounded rather than chamfered.
	type ring struct{ inset, z float32 }
	rings := make([]ring, 0, 2*bevelSegs+4)
	rings = append(rings, ring{bevel, half})
	for i := 1; i <= bevelSegs; i++ {
		a := float32(i) / float32(bevelSegs) * math32.Pi / 2
		rings = append(rings, ring{bevel * (1 - math32.Sin(a)), half - bevel*(1-math32.Cos(a))})
	}
	rings = append(rings, ring{0, -half + bevel})
	for i := bevelSegs - 1; i >= 0; i-- {
		a := float32(i) / float32(bevelSegs) * math32.Pi / 2
		rings = append(rings, ring{bevel * (1 - math32.Sin(a)), -half + bevel*(1-math32.Cos(a))})
	}
	rings = append(rings, ring{bevel, -half})

	rows := len(rings)
	n := rows*m + 2 // outline rings + two cap centroids
	b := &mesh.Buffer{
		Pos:   make([][3]float32, 0, n),
		UV:    make([][2]float32, 0, n),
		Index: make([]uint32, 0, rows*m*6),
	}

	for r, rg := range rings {
		scale := 1 - rg.inset/extent
		v := float32(r) / float32(rows-1)
		for k, p := range outline {
			b.Pos = append(b.Pos, [3]float32{
				cx + (p[0]-cx)*scale,
				cy + (p[1]-cy)*scale,
				rg.z,
			})
			b.UV = append(b.UV, [2]float32{float32(k) / float32(m), v})
		}
	}

	// side wall quads, wrapping around the outline
	for r := 0; r < rows-1; r++ {
		for k := 0; k < m; k++ {
			a := uint32(r*m + k)
			bb := uint32(r*m + (k+1)%m)
			cc := a + uint32(m)
			d := uint32((r+1)*m + (k+1)%m)
			b.Index = append(b.Index, a, bb, d, a, d, cc)
		}
	}

	// caps
	frontC := uint32(len(b.Pos))
	b.Pos = append(b.Pos, [3]float32{cx, cy, half})
	b.UV = append(b.UV, [2]float32{0.5, 0.5})
	backC := uint32(len(b.Pos))
	b.Pos = append(b.Pos, [3]float32{cx, cy, -half})
	b.UV = append(b.UV, [2]float32{0.5, 0.5})
	for k := 0; k < m; k++ {
		a := uint32(k)
		bb := uint32((k + 1) % m)
		b.Index = append(b.Index, frontC, a, bb)
		la := uint32((rows-1)*m + k)
		lb := uint32((rows-1)*m + (k+1)%m)
		b.Index = append(b.Index, backC, lb, la)
	}

	b.RecomputeNormals()
	return b
}
