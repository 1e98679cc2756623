package rose

import (
	"math"
	"math/rand"

	"rosegen/internal/deform"
	"rosegen/internal/mathutil"
	"rosegen/internal/mesh"
	"rosegen/internal/primitive"
)

const (
	sepalLength = 0.55
	sepalWidth  = 0.16
	sepalTilt   = 60 // degrees outward from the flower axis
)

// sepalOutline traces the closed sepal silhouette: a narrow base widening
// through a quadratic arc to the broadest point, then a second arc closing to
// the pointed tip. Right edge up, mirrored left edge down.
func sepalOutline() [][2]float32 {
	const arcSteps = 6
	half := float32(sepalWidth) / 2
	length := float32(sepalLength)

	quad := func(p0, p1, p2 [2]float32, t float32) [2]float32 {
		s := 1 - t
		return [2]float32{
			s*s*p0[0] + 2*s*t*p1[0] + t*t*p2[0],
			s*s*p0[1] + 2*s*t*p1[1] + t*t*p2[1],
		}
	}

	baseR := [2]float32{half * 0.25, 0}
	widest := [2]float32{half, length * 0.45}
	tip := [2]float32{0, length}

	var right [][2]float32
	for i := 0; i <= arcSteps; i++ {
		right = append(right, quad(baseR, [2]float32{half * 1.15, length * 0.18}, widest, float32(i)/arcSteps))
	}
	for i := 1; i <= arcSteps; i++ {
		right = append(right, quad(widest, [2]float32{half * 0.8, length * 0.8}, tip, float32(i)/arcSteps))
	}

	// mirror for the left edge, skipping the shared tip and base points
	out := right
	for i := len(right) - 2; i >= 1; i-- {
		out = append(out, [2]float32{-right[i][0], right[i][1]})
	}
	out = append(out, [2]float32{-baseR[0], 0})
	return out
}

func (r *Rose) buildSepals(rng *rand.Rand, head mathutil.Vec3) (*mesh.Buffer, error) {
	_ = rng // sepal geometry carries no jitter

	solid := primitive.Extrude(sepalOutline(), 0.05, 0.012, 2)
	base := deform.Sepal(solid, sepalLength, sepalWidth/2)

	n := r.params.SepalCount
	if n < 1 {
		n = 1
	}
	step := 2 * math.Pi / float64(n)
	tilt := mathutil.Deg2Rad(sepalTilt)

	parts := make([]*mesh.Buffer, 0, n)
	for k := 0; k < n; k++ {
		angle := float64(k) * step
		inst := base.Clone()
		rot := mathutil.Mat3Mul(mathutil.RotY(-angle-math.Pi/2), mathutil.RotX(tilt))
		pos := head.Add(mathutil.Vec3{
			math.Cos(angle) * 0.06,
			0.24,
			math.Sin(angle) * 0.06,
		})
		inst.Apply(mesh.TRS(pos, rot, 1))
		parts = append(parts, inst)
	}

	return mesh.Merge(parts)
}
