// Package primitive builds the regular base surfaces the deformation fields
// sculpt: parametric grids, spheres, lathes, extrusions, tubes, and cones.
// Every constructor returns a fresh indexed mesh.Buffer with positions, uvs,
// and (analytic or recomputed) normals.
package primitive

import "rosegen/internal/mesh"

// Grid builds a flat plane in the XY plane: x ∈ [-width/2, width/2],
// y ∈ [0, height], z = 0, split into wsegs × hsegs quads. UVs run u across
// the width and v up the height, which is the (u,v) chart the deformation
// fields evaluate their displacement terms over.
func Grid(width, height float32, wsegs, hsegs int) *mesh.Buffer {
	if wsegs < 1 {
		wsegs = 1
	}
	if hsegs < 1 {
		hsegs = 1
	}
	cols := wsegs + 1
	rows := hsegs + 1
	n := cols * rows

	b := &mesh.Buffer{
		Pos:   make([][3]float32, n),
		Norm:  make([][3]float32, n),
		UV:    make([][2]float32, n),
		Index: make([]uint32, 0, wsegs*hsegs*6),
	}

	i := 0
	for r := 0; r < rows; r++ {
		v := float32(r) / float32(hsegs)
		for c := 0; c < cols; c++ {
			u := float32(c) / float32(wsegs)
			b.Pos[i] = [3]float32{(u - 0.5) * width, v * height, 0}
			b.Norm[i] = [3]float32{0, 0, 1}
			b.UV[i] = [2]float32{u, v}
			i++
		}
	}

	for r := 0; r < hsegs; r++ {
		for c := 0; c < wsegs; c++ {
			a := uint32(r*cols + c)
			bb := a + 1
			cc := a + uint32(cols)
			d := cc + 1
			b.Index = append(b.Index, a, bb, d, a, d, cc)
		}
	}
	return b
}
