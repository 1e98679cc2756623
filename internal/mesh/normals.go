package mesh

import "github.com/chewxy/math32"

// RecomputeNormals rebuilds vertex normals from the current positions by
// accumulating unnormalized face normals per vertex (area-weighted) and
// normalizing the sums. Deformed buffers must call this; copying the
// undeformed primitive's normals would be wrong after displacement.
//
// Non-indexed buffers treat consecutive position triples as triangles.
// Vertices touched by no face (or only degenerate ones) get DefaultNormal.
func (b *Buffer) RecomputeNormals() {
	n := len(b.Pos)
	if cap(b.Norm) >= n {
		b.Norm = b.Norm[:n]
		for i := range b.Norm {
			b.Norm[i] = [3]float32{}
		}
	} else {
		b.Norm = make([][3]float32, n)
	}

	tris := b.TriangleCount()
	for t := 0; t < tris; t++ {
		var i0, i1, i2 int
		if b.Index != nil {
			i0, i1, i2 = int(b.Index[t*3]), int(b.Index[t*3+1]), int(b.Index[t*3+2])
		} else {
			i0, i1, i2 = t*3, t*3+1, t*3+2
		}
		if i0 >= n || i1 >= n || i2 >= n {
			continue
		}
		p0, p1, p2 := b.Pos[i0], b.Pos[i1], b.Pos[i2]
		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		fn := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		for _, i := range [3]int{i0, i1, i2} {
			b.Norm[i][0] += fn[0]
			b.Norm[i][1] += fn[1]
			b.Norm[i][2] += fn[2]
		}
	}

	for i, v := range b.Norm {
		l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if l < 1e-8 {
			b.Norm[i] = DefaultNormal
			continue
		}
		b.Norm[i] = [3]float32{v[0] / l, v[1] / l, v[2] / l}
	}
}
