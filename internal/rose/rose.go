// Package rose assembles the full ornament: petals, sepals, stem with leaves
// and thorns, floating shards, and the butterfly. Each organ is synthesized
// once per Rose by deforming primitives, posing clones per instance, and
// merging them into a single drawable buffer.
package rose

import (
	"fmt"
	"math/rand"

	"rosegen/internal/mathutil"
	"rosegen/internal/mesh"
)

// Params configures one rose instance. All randomness flows from Seed, so
// two roses with equal Params synthesize identical geometry.
type Params struct {
	Seed       int64
	PetalCount int
	SepalCount int
	ThornCount int
	StemPoints []mathutil.Vec3
	StemRadius float64
}

// DefaultParams returns the stock rose.
func DefaultParams() Params {
	return Params{
		Seed:       7,
		PetalCount: 22,
		SepalCount: 6,
		ThornCount: 20,
		StemPoints: []mathutil.Vec3{
			{0, 0, 0},
			{0.05, 0.5, -0.03},
			{-0.04, 1.0, 0.04},
			{0.03, 1.5, -0.02},
			{0, 1.95, 0.08},
			{0.02, 2.1, 0.12},
		},
		StemRadius: 0.05,
	}
}

// Organ is one merged drawable part with its display color. Glow marks
// organs the renderer blends additively instead of z-testing.
type Organ struct {
	Name   string
	Buffer *mesh.Buffer
	Color  [4]uint8
	Glow   bool
}

// Rose synthesizes and caches the organ buffers for one parameter set.
// Geometry is built on the first Build call and reused afterwards; repeated
// scene updates never resynthesize.
type Rose struct {
	params Params
	organs []Organ
	err    error
	built  bool
}

func New(p Params) *Rose {
	return &Rose{params: p}
}

func (r *Rose) Params() Params {
	return r.params
}

// Build synthesizes every organ (memoized). The returned slice is shared;
// callers treat buffers as read-only.
func (r *Rose) Build() ([]Organ, error) {
	if r.built {
		return r.organs, r.err
	}
	r.built = true

	rng := rand.New(rand.NewSource(r.params.Seed))
	head := r.headCenter()

	steps := []struct {
		name  string
		color [4]uint8
		glow  bool
		build func(*rand.Rand) (*mesh.Buffer, error)
	}{
		{"petals", [4]uint8{196, 30, 58, 255}, false, func(g *rand.Rand) (*mesh.Buffer, error) { return r.buildPetals(g, head) }},
		{"sepals", [4]uint8{46, 102, 58, 255}, false, func(g *rand.Rand) (*mesh.Buffer, error) { return r.buildSepals(g, head) }},
		{"stem", [4]uint8{56, 94, 50, 255}, false, r.buildStem},
		{"shards", [4]uint8{208, 186, 222, 230}, true, r.buildShards},
		{"butterfly-body", [4]uint8{40, 36, 44, 255}, false, r.buildButterflyBody},
		{"butterfly-wings", [4]uint8{236, 158, 96, 255}, false, r.buildButterflyWings},
		{"butterfly-antennae", [4]uint8{40, 36, 44, 255}, false, r.buildButterflyAntennae},
	}

	organs := make([]Organ, 0, len(steps))
	for _, s := range steps {
		buf, err := s.build(rng)
		if err != nil {
			r.err = fmt.Errorf("rose: build %s: %w", s.name, err)
			return nil, r.err
		}
		organs = append(organs, Organ{Name: s.name, Buffer: buf, Color: s.color, Glow: s.glow})
	}
	r.organs = organs
	return r.organs, nil
}

// headCenter is where the flower head sits: the tip of the stem curve.
func (r *Rose) headCenter() mathutil.Vec3 {
	if len(r.params.StemPoints) == 0 {
		return mathutil.Vec3{}
	}
	return r.params.StemPoints[len(r.params.StemPoints)-1]
}
