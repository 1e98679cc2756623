package deform

import (
	"github.com/chewxy/math32"

	"rosegen/internal/mesh"
)

// Sepal bends an extruded sepal solid into its final pose: an S-curve along
// the length plus cupping across the width, both along the depth axis. base
// is the beveled extrusion of the sepal outline (y up, z = thickness).
func Sepal(base *mesh.Buffer, length, width float32) *mesh.Buffer {
	out := base.Clone()

	for i, p := range out.Pos {
		t := p[1] / length
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}

		z := p[2]
		z += math32.Sin(t*math32.Pi*0.8) * 0.35
		z += math32.Pow(math32.Abs(p[0])/width, 2.2) * 0.3

		out.Pos[i] = [3]float32{p[0], p[1], z}
	}

	out.RecomputeNormals()
	return out
}
