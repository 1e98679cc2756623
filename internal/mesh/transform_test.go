package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosegen/internal/mathutil"
)

func TestApplyTranslation(t *testing.T) {
	b := quadBuffer()
	tr := Identity()
	tr.Translate = mathutil.Vec3{1, 2, 3}
	b.Apply(tr)

	assert.Equal(t, [3]float32{1, 2, 3}, b.Pos[0])
	assert.Equal(t, [3]float32{2, 2, 3}, b.Pos[1])
	// pure translation leaves normals alone
	assert.Equal(t, [3]float32{0, 0, 1}, b.Norm[0])
}

func TestNormalStaysPerpendicularUnderNonUniformScale(t *testing.T) {
	// a surface direction and its normal, deliberately tilted
	dir := mathutil.Vec3{1, 0, -1}.Normalize()
	nrm := mathutil.Vec3{1, 0, 1}.Normalize()
	require.InDelta(t, 0, dir.Dot(nrm), 1e-12)

	tr := Identity()
	tr.Scale = mathutil.Vec3{2, 1, 0.5}
	tr.Rotate = mathutil.RotY(0.7)

	b := &Buffer{
		Pos:  [][3]float32{dir.F32()},
		Norm: [][3]float32{nrm.F32()},
	}
	b.Apply(tr)

	tDir := tr.Linear().MulVec3(dir)
	tNrm := mathutil.FromF32(b.Norm[0])

	// perpendicularity survives only through the inverse-transpose
	assert.InDelta(t, 0, tDir.Dot(tNrm), 1e-5)
	assert.InDelta(t, 1, tNrm.Len(), 1e-5)
}

func TestNormalMatrixEqualsRotationForRigidTransforms(t *testing.T) {
	tr := Identity()
	tr.Rotate = mathutil.Mat3Mul(mathutil.RotX(0.3), mathutil.RotZ(-1.1))

	nm := tr.NormalMatrix()
	for i := 0; i < 9; i++ {
		assert.InDelta(t, tr.Rotate[i], nm[i], 1e-9)
	}
}

func TestRecomputeNormalsFlatGrid(t *testing.T) {
	b := quadBuffer()
	// scramble the stored normals; recompute must not trust them
	for i := range b.Norm {
		b.Norm[i] = [3]float32{1, 0, 0}
	}
	b.RecomputeNormals()
	for _, n := range b.Norm {
		assert.InDelta(t, 0, float64(n[0]), 1e-6)
		assert.InDelta(t, 0, float64(n[1]), 1e-6)
		assert.InDelta(t, 1, float64(n[2]), 1e-6)
	}
}

func TestRecomputeNormalsNonIndexed(t *testing.T) {
	b := &Buffer{
		Pos: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	}
	b.RecomputeNormals()
	require.Len(t, b.Norm, 3)
	for _, n := range b.Norm {
		l := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		assert.InDelta(t, 1, l, 1e-6)
		assert.InDelta(t, 1, float64(n[2]), 1e-6)
	}
}

func TestRecomputeNormalsDegenerateFace(t *testing.T) {
	// zero-area triangle: vertices fall back to the default normal
	b := &Buffer{
		Pos: [][3]float32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	}
	b.RecomputeNormals()
	for _, n := range b.Norm {
		assert.Equal(t, DefaultNormal, n)
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := quadBuffer()
	c := b.Clone()
	c.Pos[0][0] = 99
	c.Index[0] = 3
	assert.Equal(t, float32(0), b.Pos[0][0])
	assert.Equal(t, uint32(0), b.Index[0])
}
