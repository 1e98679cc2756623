package deform

import (
	"github.com/chewxy/math32"

	"rosegen/internal/mesh"
)

// LeafParams sizes one leaf blade.
type LeafParams struct {
	Length          float32
	Width           float32
	EdgeThickness   float32
	MidribThickness float32
}

// DefaultLeafParams returns the stock rose-leaf proportions.
func DefaultLeafParams() LeafParams {
	return LeafParams{
		Length:          1.0,
		Width:           0.46,
		EdgeThickness:   0.01,
		MidribThickness: 0.035,
	}
}

const leafTeeth = 16

// Leaf sculpts a serrated leaf blade from a flat grid. The blade thickens
// toward the midrib, folds along it, bows down its length, and carries a
// masked high-frequency vein relief. The grid's native height axis is
// flattened: height becomes v·Length regardless of the primitive's own size.
func Leaf(base *mesh.Buffer, p LeafParams) *mesh.Buffer {
	out := base.Clone()

	for i := range out.Pos {
		u, v := out.UV[i][0], out.UV[i][1]
		lat := u - 0.5

		w := math32.Sin(math32.Pow(v, 0.75) * math32.Pi)
		if v > 0.7 {
			// taper the tip to a point faster than the sine alone would
			w *= pos0(1 - (v-0.7)/0.3)
		}
		if w < 0 {
			w = 0
		}

		halfWidth := p.Width * 0.5 * w

		// serration: sawtooth teeth along the edge, fading at base and tip
		saw := v*leafTeeth - math32.Floor(v*leafTeeth) - 0.5
		halfWidth += saw * 0.04 * math32.Sin(v*math32.Pi)
		if halfWidth < 0 {
			halfWidth = 0
		}

		x := lat * 2 * halfWidth

		// distance ratio guards the halfWidth≈0 rows at base and tip
		var dr float32
		if halfWidth > 1e-6 {
			dr = math32.Min(math32.Abs(x)/halfWidth, 1)
		}

		// edge-to-midrib thickness blend
		th := p.EdgeThickness + (p.MidribThickness-p.EdgeThickness)*(1-math32.Pow(dr, 2.5))
		z := th

		// fold along the midrib
		z += math32.Abs(x) * 0.6

		// base dip where the petiole meets the blade
		if v < 0.12 {
			d := 1 - v/0.12
			z += d * d * 0.06
		}

		// longitudinal bow
		z -= math32.Sin(v*math32.Pi*0.85) * 0.25

		// vein relief, masked to vanish at midrib and edge
		z += math32.Sin(v*12*math32.Pi+3.5*dr) * 0.02 * math32.Sin(math32.Pi*dr)

		// tip dip
		if v > 0.8 {
			d := (v - 0.8) / 0.2
			z += d * d * 0.08
		}

		out.Pos[i] = [3]float32{x, v * p.Length, z}
	}

	out.RecomputeNormals()
	return out
}
