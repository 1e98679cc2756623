package mesh

import "rosegen/internal/mathutil"

// Transform is an affine map: scale, then rotate, then translate.
type Transform struct {
	Translate mathutil.Vec3
	Rotate    mathutil.Mat3
	Scale     mathutil.Vec3
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{
		Rotate: mathutil.Mat3Identity(),
		Scale:  mathutil.Vec3{1, 1, 1},
	}
}

// TRS builds a transform from translation, rotation, and uniform scale.
func TRS(t mathutil.Vec3, r mathutil.Mat3, s float64) Transform {
	return Transform{Translate: t, Rotate: r, Scale: mathutil.Vec3{s, s, s}}
}

// Linear returns the linear part Rotate × diag(Scale).
func (t Transform) Linear() mathutil.Mat3 {
	return mathutil.Mat3Mul(t.Rotate, mathutil.Mat3Diag(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// Mat4 returns the full affine matrix.
func (t Transform) Mat4() mathutil.Mat4 {
	return mathutil.FromMat3Translation(t.Linear(), t.Translate)
}

// NormalMatrix returns the inverse-transpose of the linear part. Normals must
// go through it (not through Linear) to stay perpendicular under non-uniform
// scale; callers re-normalize afterwards.
func (t Transform) NormalMatrix() mathutil.Mat3 {
	return t.Linear().Inverse().Transpose()
}

// Apply maps the buffer through the transform in place. The receiver must be
// exclusively owned (a clone of any shared base).
func (b *Buffer) Apply(t Transform) {
	m := t.Mat4()
	for i, p := range b.Pos {
		b.Pos[i] = m.MulPoint(mathutil.FromF32(p)).F32()
	}
	if b.Norm == nil {
		return
	}
	nm := t.NormalMatrix()
	for i, n := range b.Norm {
		b.Norm[i] = nm.MulVec3(mathutil.FromF32(n)).Normalize().F32()
	}
}
