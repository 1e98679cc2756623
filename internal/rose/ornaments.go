package rose

import (
	"math"
	"math/rand"

	"github.com/chewxy/math32"

	"rosegen/internal/mathutil"
	"rosegen/internal/mesh"
	"rosegen/internal/primitive"
	"rosegen/internal/spline"
)

// shardOrbits is literal configuration: one floating crystal fragment per
// entry, at (orbit radius, height, azimuth degrees).
var shardOrbits = [][3]float64{
	{0.85, 2.30, 15},
	{1.05, 1.80, 80},
	{0.70, 1.45, 150},
	{1.20, 2.05, 205},
	{0.95, 1.10, 250},
	{0.80, 2.50, 305},
	{1.10, 1.60, 345},
}

func shardProfile() [][2]float32 {
	return [][2]float32{
		{0, -0.09},
		{0.035, -0.03},
		{0.05, 0.02},
		{0.02, 0.08},
		{0, 0.11},
	}
}

func (r *Rose) buildShards(rng *rand.Rand) (*mesh.Buffer, error) {
	base := primitive.Lathe(shardProfile(), 5)

	parts := make([]*mesh.Buffer, 0, len(shardOrbits))
	for _, o := range shardOrbits {
		az := mathutil.Deg2Rad(o[2])
		pos := mathutil.Vec3{math.Cos(az) * o[0], o[1], math.Sin(az) * o[0]}

		q := mathutil.EulerToQuat(
			rng.Float64()*2*math.Pi,
			rng.Float64()*2*math.Pi,
			rng.Float64()*2*math.Pi,
		)
		scale := 0.8 + rng.Float64()*0.5

		shard := base.Clone()
		shard.Apply(mesh.TRS(pos, mathutil.QuatToMat3(q), scale))
		parts = append(parts, shard)
	}

	return mesh.Merge(parts)
}

// butterflyAnchor floats the butterfly off the flower's shoulder.
var butterflyAnchor = mathutil.Vec3{0.55, 2.35, 0.40}

func (r *Rose) buildButterflyBody(rng *rand.Rand) (*mesh.Buffer, error) {
	_ = rng

	body := primitive.Lathe([][2]float32{
		{0, -0.09},
		{0.015, -0.05},
		{0.022, 0},
		{0.014, 0.06},
		{0, 0.10},
	}, 8)

	// lathe axis is Y; lay the body horizontal
	body.Apply(mesh.TRS(butterflyAnchor, mathutil.RotX(math.Pi/2), 1))
	return mesh.Merge([]*mesh.Buffer{body})
}

// butterflyWing shapes one wing from a grid: a sine span envelope with a
// forward sweep and a gentle upward curl toward the wingtip.
func butterflyWing() *mesh.Buffer {
	wing := primitive.Grid(1, 1, 6, 8)
	for i := range wing.Pos {
		u, v := wing.UV[i][0], wing.UV[i][1]
		span := math32.Pow(math32.Sin(v*math32.Pi), 0.6)
		x := u * 0.32 * span
		y := v*0.26 - 0.13
		z := u * u * 0.10 // curl up toward the tip
		y += u * 0.05     // forward sweep
		wing.Pos[i] = [3]float32{x, y, z}
	}
	wing.RecomputeNormals()
	return wing
}

func (r *Rose) buildButterflyWings(rng *rand.Rand) (*mesh.Buffer, error) {
	base := butterflyWing()
	flap := mathutil.Deg2Rad(30 + rng.Float64()*15)

	right := base.Clone()
	right.Apply(mesh.Transform{
		Translate: butterflyAnchor,
		Rotate:    mathutil.RotY(flap),
		Scale:     mathutil.Vec3{1, 1, 1},
	})

	left := base.Clone()
	left.Apply(mesh.Transform{
		Translate: butterflyAnchor,
		Rotate:    mathutil.RotY(-flap),
		Scale:     mathutil.Vec3{-1, 1, 1},
	})

	return mesh.Merge([]*mesh.Buffer{right, left})
}

func (r *Rose) buildButterflyAntennae(rng *rand.Rand) (*mesh.Buffer, error) {
	_ = rng

	mk := func(side float64) *mesh.Buffer {
		curve := spline.FromPoints([]mathutil.Vec3{
			{0, 0, -0.04},
			{side * 0.02, 0.01, -0.08},
			{side * 0.05, 0.04, -0.11},
			{side * 0.07, 0.08, -0.12},
		})
		const rings = 10
		centers := make([]mathutil.Vec3, rings+1)
		radii := make([]float64, rings+1)
		for i := 0; i <= rings; i++ {
			t := float64(i) / rings
			centers[i], _ = curve.Eval(t)
			radii[i] = 0.004 * (1 - 0.8*t)
		}
		a := primitive.Tube(centers, radii, 5)
		a.Apply(mesh.TRS(butterflyAnchor, mathutil.Mat3Identity(), 1))
		return a
	}

	return mesh.Merge([]*mesh.Buffer{mk(1), mk(-1)})
}
