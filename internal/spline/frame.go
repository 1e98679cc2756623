package spline

import (
	"math/rand"

	"rosegen/internal/mathutil"
)

// Frame is an orthonormal basis at a point on a curve. Y points radially away
// from the curve, Z runs roughly against the tangent, X completes the basis.
// Frames are rebuilt per placement and never persisted.
type Frame struct {
	Pos     mathutil.Vec3
	Tangent mathutil.Vec3
	X, Y, Z mathutil.Vec3
}

// Basis returns the rotation whose columns are the frame axes.
func (f Frame) Basis() mathutil.Mat3 {
	return mathutil.FromAxes(f.X, f.Y, f.Z)
}

// FrameAt samples the curve at t and builds a stable orthonormal frame.
//
// Degeneracies never surface as errors: a near-zero tangent falls back to the
// curve's dominant direction, and a tangent nearly parallel to world up swaps
// in the world X axis as the reference before the cross product.
func FrameAt(c *Curve, t float64) Frame {
	pos, rawTan := c.Eval(t)

	tan := rawTan
	if tan.Dot(tan) < 0.1 {
		tan = c.dominant
	}
	tan = tan.Normalize()

	up := mathutil.Vec3{0, 1, 0}
	if d := tan.Dot(up); d > 0.9 || d < -0.9 {
		up = mathutil.Vec3{1, 0, 0}
	}
	binormal := tan.Cross(up).Normalize()

	y := binormal
	x := y.Cross(tan.Neg()).Normalize()
	z := x.Cross(y).Normalize()
	return Frame{Pos: pos, Tangent: tan, X: x, Y: y, Z: z}
}

// PlacementFrame orients one scattered instance: the binormal is rotated
// about the tangent by angle to pick the radial direction, the basis is
// re-orthogonalized around it, and a bounded random wobble (radians) is
// composed in for organic variance.
func PlacementFrame(c *Curve, t, angle, wobble float64, rng *rand.Rand) Frame {
	f := FrameAt(c, t)

	radial := mathutil.AxisAngle(f.Tangent, angle).MulVec3(f.Y)

	y := radial
	zApprox := f.Tangent.Neg()
	x := y.Cross(zApprox).Normalize()
	if x.Len() < 0.5 {
		// radial ended up along the tangent; any perpendicular will do
		x = f.X
	}
	z := x.Cross(y).Normalize()

	if wobble > 0 && rng != nil {
		q := mathutil.EulerToQuat(
			(rng.Float64()*2-1)*wobble,
			(rng.Float64()*2-1)*wobble,
			(rng.Float64()*2-1)*wobble,
		)
		w := mathutil.QuatToMat3(q)
		x = w.MulVec3(x)
		y = w.MulVec3(y)
		z = w.MulVec3(z)
	}

	return Frame{Pos: f.Pos, Tangent: f.Tangent, X: x, Y: y, Z: z}
}
