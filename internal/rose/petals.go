package rose

import (
	"math"
	"math/rand"

	"rosegen/internal/deform"
	"rosegen/internal/mathutil"
	"rosegen/internal/mesh"
	"rosegen/internal/primitive"
)

// petalTier is one piecewise-linear stretch of the placement schedule:
// radius, height offset, scale, and outward tilt (degrees) interpolate from
// the tier's first index to its last.
type petalTier struct {
	lo, hi           int
	radius0, radius1 float64
	height0, height1 float64
	scale0, scale1   float64
	tilt0, tilt1     float64
}

var petalTiers = []petalTier{
	{0, 4, 0.04, 0.10, 0.30, 0.26, 0.50, 0.62, 10, 22},
	{5, 9, 0.10, 0.18, 0.26, 0.20, 0.62, 0.78, 22, 38},
	{10, 15, 0.18, 0.28, 0.20, 0.12, 0.78, 0.92, 38, 58},
	{16, 21, 0.28, 0.38, 0.12, 0.04, 0.92, 1.00, 58, 78},
}

// petalSchedule returns the pose parameters for petal i. Indices past the
// last tier clamp to its end values.
func petalSchedule(i int) (radius, height, scale, tiltRad float64) {
	tier := petalTiers[len(petalTiers)-1]
	for _, t := range petalTiers {
		if i >= t.lo && i <= t.hi {
			tier = t
			break
		}
	}
	f := 0.0
	if tier.hi > tier.lo {
		f = mathutil.Clamp(float64(i-tier.lo)/float64(tier.hi-tier.lo), 0, 1)
	}
	radius = mathutil.Lerp(tier.radius0, tier.radius1, f)
	height = mathutil.Lerp(tier.height0, tier.height1, f)
	scale = mathutil.Lerp(tier.scale0, tier.scale1, f)
	tiltRad = mathutil.Deg2Rad(mathutil.Lerp(tier.tilt0, tier.tilt1, f))
	return
}

// petalAngle is the phyllotactic azimuth of petal i.
func petalAngle(i int) float64 {
	return float64(i) * mathutil.GoldenAngle
}

func (r *Rose) buildPetals(rng *rand.Rand, head mathutil.Vec3) (*mesh.Buffer, error) {
	base := primitive.Grid(1, 1, 10, 14)

	parts := make([]*mesh.Buffer, 0, r.params.PetalCount)
	for i := 0; i < r.params.PetalCount; i++ {
		radius, height, scale, tilt := petalSchedule(i)
		angle := petalAngle(i)

		petal := deform.Petal(base, i, rng)

		// face outward, then tilt away from the axis
		rot := mathutil.Mat3Mul(mathutil.RotY(-angle-math.Pi/2), mathutil.RotX(tilt))
		pos := head.Add(mathutil.Vec3{
			math.Cos(angle) * radius,
			height,
			math.Sin(angle) * radius,
		})
		petal.Apply(mesh.TRS(pos, rot, scale))
		parts = append(parts, petal)
	}

	return mesh.Merge(parts)
}
