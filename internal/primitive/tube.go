package primitive

import (
	"math"

	"rosegen/internal/mathutil"
	"rosegen/internal/mesh"
)

// Tube sweeps a circular cross-section along a sampled centerline. radii
// gives the ring radius per center (len(radii) == len(centers)); taper a ring
// to near zero to close an end. Ring frames use the same reference-up
// fallback as the curve frame sampler so a vertical run never degenerates.
func Tube(centers []mathutil.Vec3, radii []float64, radialSegs int) *mesh.Buffer {
	rows := len(centers)
	if rows < 2 || len(radii) != rows || radialSegs < 3 {
		return &mesh.Buffer{}
	}
	cols := radialSegs + 1
	n := cols * rows

	b := &mesh.Buffer{
		Pos:   make([][3]float32, n),
		UV:    make([][2]float32, n),
		Index: make([]uint32, 0, radialSegs*(rows-1)*6),
	}

	i := 0
	for r := 0; r < rows; r++ {
		// central-difference tangent, one-sided at the ends
		lo, hi := r-1, r+1
		if lo < 0 {
			lo = 0
		}
		if hi > rows-1 {
			hi = rows - 1
		}
		tan := centers[hi].Sub(centers[lo])
		if tan.Len() < 1e-9 {
			tan = mathutil.Vec3{0, 1, 0}
		}
		tan = tan.Normalize()

		up := mathutil.Vec3{0, 1, 0}
		if d := tan.Dot(up); d > 0.9 || d < -0.9 {
			up = mathutil.Vec3{1, 0, 0}
		}
		side := tan.Cross(up).Normalize()
		out := side.Cross(tan).Normalize()

		v := float32(r) / float32(rows-1)
		for c := 0; c < cols; c++ {
			u := float32(c) / float32(radialSegs)
			ang := float64(u) * 2 * math.Pi
			dir := side.Scale(math.Cos(ang)).Add(out.Scale(math.Sin(ang)))
			p := centers[r].Add(dir.Scale(radii[r]))
			b.Pos[i] = p.F32()
			b.UV[i] = [2]float32{u, v}
			i++
		}
	}

	for r := 0; r < rows-1; r++ {
		for c := 0; c < radialSegs; c++ {
			a := uint32(r*cols + c)
			bb := a + 1
			cc := a + uint32(cols)
			d := cc + 1
			b.Index = append(b.Index, a, bb, d, a, d, cc)
		}
	}

	b.RecomputeNormals()
	return b
}
