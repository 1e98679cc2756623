package spline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosegen/internal/mathutil"
)

func stemLikeCurve() *Curve {
	return FromPoints([]mathutil.Vec3{
		{0, 0, 0},
		{0.05, 0.5, -0.03},
		{-0.04, 1.0, 0.04},
		{0.03, 1.5, -0.02},
		{0, 2.0, 0.1},
	})
}

func TestCurveInterpolatesEndpoints(t *testing.T) {
	c := stemLikeCurve()

	p0, _ := c.Eval(0)
	p1, _ := c.Eval(1)
	assert.InDelta(t, 0, p0.Sub(mathutil.Vec3{0, 0, 0}).Len(), 1e-9)
	assert.InDelta(t, 0, p1.Sub(mathutil.Vec3{0, 2.0, 0.1}).Len(), 1e-9)

	// out-of-range parameters clamp
	pLo, _ := c.Eval(-5)
	pHi, _ := c.Eval(7)
	assert.Equal(t, p0, pLo)
	assert.Equal(t, p1, pHi)
}

func TestCurveTangentPointsForward(t *testing.T) {
	c := stemLikeCurve()
	for _, tv := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		_, tan := c.Eval(tv)
		// the stem rises monotonically, so tangents must too
		assert.Positive(t, tan[1], "t=%v", tv)
	}
}

func assertOrthonormal(t *testing.T, f Frame) {
	t.Helper()
	assert.InDelta(t, 1, f.X.Len(), 1e-9)
	assert.InDelta(t, 1, f.Y.Len(), 1e-9)
	assert.InDelta(t, 1, f.Z.Len(), 1e-9)
	assert.InDelta(t, 0, f.X.Dot(f.Y), 1e-9)
	assert.InDelta(t, 0, f.Y.Dot(f.Z), 1e-9)
	assert.InDelta(t, 0, f.Z.Dot(f.X), 1e-9)
}

func TestFrameAtOrthonormal(t *testing.T) {
	c := stemLikeCurve()
	for _, tv := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assertOrthonormal(t, FrameAt(c, tv))
	}
}

func TestFrameAtVerticalTangentFallsBack(t *testing.T) {
	// a perfectly vertical curve: tangent == world up everywhere, which
	// would degenerate the cross product without the secondary-axis fallback
	c := FromPoints([]mathutil.Vec3{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}})
	f := FrameAt(c, 0.5)
	assertOrthonormal(t, f)
	assert.InDelta(t, 1, f.Tangent[1], 1e-9)
}

func TestFrameAtDegenerateCurve(t *testing.T) {
	// single point: tangent falls back to the dominant direction
	c := FromPoints([]mathutil.Vec3{{1, 2, 3}})
	f := FrameAt(c, 0.3)
	assertOrthonormal(t, f)
	assert.Equal(t, mathutil.Vec3{1, 2, 3}, f.Pos)
}

func TestPlacementFrameOrthonormal(t *testing.T) {
	c := stemLikeCurve()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		f := PlacementFrame(c, float64(i)/19, 2.5*float64(i), 0.12, rng)
		assertOrthonormal(t, f)
	}
}

func TestPlacementFrameSpiralsRadially(t *testing.T) {
	c := stemLikeCurve()
	a := PlacementFrame(c, 0.5, 0, 0, nil)
	b := PlacementFrame(c, 0.5, 2.5, 0, nil)
	// different spiral angles pick different radial directions
	assert.Less(t, a.Y.Dot(b.Y), 0.99)
	// both stay perpendicular to the tangent
	assert.InDelta(t, 0, a.Y.Dot(a.Tangent), 1e-9)
	assert.InDelta(t, 0, b.Y.Dot(b.Tangent), 1e-9)
}

func TestCurveLength(t *testing.T) {
	c := FromPoints([]mathutil.Vec3{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}})
	require.InDelta(t, 2, c.Length(64), 1e-6)
}
