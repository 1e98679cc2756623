package deform

import "rosegen/internal/mesh"

// Thorn hooks a cone into a thorn: a quadratic bend of normalized height
// along the depth axis plus a fixed lateral squeeze, so every thorn curves
// back toward the stem tip.
func Thorn(base *mesh.Buffer, height float32) *mesh.Buffer {
	out := base.Clone()

	for i, p := range out.Pos {
		hf := p[1] / height
		if hf < 0 {
			hf = 0
		} else if hf > 1 {
			hf = 1
		}
		out.Pos[i] = [3]float32{
			p[0] * 0.8,
			p[1],
			p[2] + hf*hf*0.4*height,
		}
	}

	out.RecomputeNormals()
	return out
}
