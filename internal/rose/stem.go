package rose

import (
	"math/rand"

	"rosegen/internal/deform"
	"rosegen/internal/mathutil"
	"rosegen/internal/mesh"
	"rosegen/internal/primitive"
	"rosegen/internal/spline"
)

const (
	thornTMin   = 0.15
	thornTMax   = 0.92
	thornJitter = 0.03
	thornInset  = 0.012
	thornSpiral = 2.5 // radians of spiral advance per thorn index
)

// leafPlacements is literal configuration, not a generative rule: each entry
// poses one cloned leaf along the stem.
var leafPlacements = []struct {
	pos              mathutil.Vec3
	yaw, tilt, scale float64
}{
	{mathutil.Vec3{0.03, 1.28, 0.02}, 0.4, 1.00, 0.82},
	{mathutil.Vec3{-0.04, 0.92, -0.01}, 2.6, 1.10, 1.00},
	{mathutil.Vec3{0.02, 0.58, -0.04}, 4.4, 1.05, 0.72},
}

// stemRadiusAt tapers the stem from full radius at the root to 70% at the tip.
func (r *Rose) stemRadiusAt(t float64) float64 {
	return r.params.StemRadius * (1 - 0.3*t)
}

func (r *Rose) buildStem(rng *rand.Rand) (*mesh.Buffer, error) {
	curve := spline.FromPoints(r.params.StemPoints)

	// stem tube along the curve
	const tubeRings = 24
	centers := make([]mathutil.Vec3, tubeRings+1)
	radii := make([]float64, tubeRings+1)
	for i := 0; i <= tubeRings; i++ {
		t := float64(i) / tubeRings
		centers[i], _ = curve.Eval(t)
		radii[i] = r.stemRadiusAt(t)
	}
	parts := []*mesh.Buffer{primitive.Tube(centers, radii, 10)}

	parts = append(parts, r.buildLeaves()...)
	parts = append(parts, r.buildThorns(curve, rng)...)

	return mesh.Merge(parts)
}

func (r *Rose) buildLeaves() []*mesh.Buffer {
	blade := deform.Leaf(primitive.Grid(1, 1, 8, 16), deform.DefaultLeafParams())

	// stipules: the same blade squeezed into the small leaflets hugging the
	// stem at each attachment point
	stipule := blade.Clone()
	stipule.Apply(mesh.Transform{
		Rotate:    mathutil.Mat3Identity(),
		Scale:     mathutil.Vec3{0.3, 0.28, 0.4},
		Translate: mathutil.Vec3{},
	})

	var parts []*mesh.Buffer
	for _, lp := range leafPlacements {
		rot := mathutil.Mat3Mul(mathutil.RotY(lp.yaw), mathutil.RotX(lp.tilt))
		leaf := blade.Clone()
		leaf.Apply(mesh.TRS(lp.pos, rot, lp.scale))
		parts = append(parts, leaf)

		srot := mathutil.Mat3Mul(mathutil.RotY(lp.yaw+0.5), mathutil.RotX(lp.tilt*0.7))
		st := stipule.Clone()
		st.Apply(mesh.TRS(lp.pos.Add(mathutil.Vec3{0, 0.03, 0}), srot, lp.scale))
		parts = append(parts, st)
	}
	return parts
}

// thornParam spreads thorn i across the usable stretch of the stem, applies
// its jitter, and clamps into [0.12, 0.99] so no thorn lands on the root cut
// or past the curve's end.
func thornParam(i, count int, jitter float64) float64 {
	if count < 2 {
		count = 2
	}
	t := thornTMin + (thornTMax-thornTMin)*float64(i)/float64(count-1)
	return mathutil.Clamp(t+jitter, 0.12, 0.99)
}

func (r *Rose) buildThorns(curve *spline.Curve, rng *rand.Rand) []*mesh.Buffer {
	const thornHeight = 0.16
	base := deform.Thorn(primitive.Cone(0.045, 0.002, thornHeight, 7, 4), thornHeight)

	parts := make([]*mesh.Buffer, 0, r.params.ThornCount)
	for i := 0; i < r.params.ThornCount; i++ {
		t := thornParam(i, r.params.ThornCount, (rng.Float64()*2-1)*thornJitter)
		angle := thornSpiral*float64(i) + (rng.Float64()*2-1)*0.6

		f := spline.PlacementFrame(curve, t, angle, 0.12, rng)
		pos := f.Pos.Add(f.Y.Scale(r.stemRadiusAt(t) - thornInset))
		scale := 0.7 + rng.Float64()*0.45

		thorn := base.Clone()
		thorn.Apply(mesh.TRS(pos, f.Basis(), scale))
		parts = append(parts, thorn)
	}
	return parts
}
