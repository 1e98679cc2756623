// Package deform holds the closed-form displacement fields that sculpt the
// organ silhouettes from regular primitives. Each field is functional: it
// clones its input, remaps positions over the primitive's (u,v) chart, and
// recomputes normals from the displaced surface. Randomness only enters
// through an explicit rng, so a fixed seed reproduces the geometry exactly.
package deform

import (
	"math/rand"

	"github.com/chewxy/math32"

	"rosegen/internal/mesh"
)

// Petal sculpts one rose petal from a flat grid. index selects the variant:
// the edge-wave frequency cycles with index mod 3, petals past index 12 cup
// flatter, and three index tiers (<6, 6–11, ≥12) get distinct curl and droop
// corrections so inner petals wrap while outer ones relax. The base sits at
// height 0.5 so the attachment point lands on the receptacle.
func Petal(base *mesh.Buffer, index int, rng *rand.Rand) *mesh.Buffer {
	out := base.Clone()

	var phase float32
	if rng != nil {
		phase = rng.Float32() * 2 * math32.Pi
	}
	edgeFreq := float32(2 + index%3)
	cup := float32(0.45)
	if index > 12 {
		cup = 0.25
	}

	for i := range out.Pos {
		u, v := out.UV[i][0], out.UV[i][1]
		lat := u - 0.5

		// width envelope: rounded sine silhouette, quickly opening at the base
		w := math32.Pow(pos0(math32.Sin(v*math32.Pi*0.85)), 0.4) * math32.Min(1, v*3.5)
		x := lat * 1.5 * w
		y := v + 0.5
		z := math32.Sin(3*u+phase) * math32.Cos(2*v+phase) * 0.04

		// edge wave, masked toward the silhouette edge
		edge := math32.Pow(math32.Min(math32.Abs(lat)*2, 1), 1.5)
		wave := math32.Sin(v*math32.Pi*edgeFreq + phase)
		z += wave * 0.06 * edge
		y += wave * 0.02 * edge

		// cupping across the lateral axis
		z += math32.Pow(math32.Abs(x), 2.2) * cup

		switch {
		case index < 6:
			// innermost tier curls tightly over the center
			z += v * v * 0.22
			y -= v * v * 0.06
		case index < 12:
			z += v*v*0.10 - math32.Sin(v*math32.Pi)*0.03
		default:
			// outer tier droops away from the head
			z -= math32.Sin(v*math32.Pi*0.5) * 0.12
			y -= v * v * 0.10
		}

		out.Pos[i] = [3]float32{x, y, z}
	}

	out.RecomputeNormals()
	return out
}

// WidthEnvelope is the petal silhouette profile: 0 at the base, bounded and
// positive across the blade, returning toward 0 at the tip. Exposed for the
// placement schedule, which uses it to size tier radii.
func WidthEnvelope(v float32) float32 {
	return math32.Pow(pos0(math32.Sin(v*math32.Pi*0.85)), 0.4) * math32.Min(1, v*3.5)
}

// pos0 clamps negatives to 0, keeping fractional powers defined.
func pos0(x float32) float32 {
	if x < 0 {
		return 0
	}
	return x
}
