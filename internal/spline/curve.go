// Package spline provides the Catmull-Rom centerline used by the stem and the
// frame sampler that orients instances scattered along it.
package spline

import (
	"math"

	"rosegen/internal/mathutil"
)

// Curve is an immutable Catmull-Rom interpolant through its control points,
// evaluable at t ∈ [0,1]. Ends are clamped by repeating the end points.
type Curve struct {
	pts      []mathutil.Vec3
	dominant mathutil.Vec3 // fallback tangent when evaluation degenerates
}

// FromPoints builds a curve through the given control points. At least two
// points are required; fewer yields a degenerate curve pinned to the first
// point (or the origin).
func FromPoints(pts []mathutil.Vec3) *Curve {
	c := &Curve{pts: make([]mathutil.Vec3, len(pts)), dominant: mathutil.Vec3{0, 1, 0}}
	copy(c.pts, pts)
	if len(pts) >= 2 {
		d := pts[len(pts)-1].Sub(pts[0])
		if d.Len() > 1e-9 {
			c.dominant = d.Normalize()
		}
	}
	return c
}

// Eval returns the position and (unnormalized) tangent at t, clamped to [0,1].
func (c *Curve) Eval(t float64) (pos, tan mathutil.Vec3) {
	n := len(c.pts)
	if n == 0 {
		return mathutil.Vec3{}, c.dominant
	}
	if n == 1 {
		return c.pts[0], c.dominant
	}

	t = mathutil.Clamp(t, 0, 1)
	segs := float64(n - 1)
	s := t * segs
	i := int(math.Floor(s))
	if i > n-2 {
		i = n - 2
	}
	u := s - float64(i)

	p0 := c.pts[clampIdx(i-1, n)]
	p1 := c.pts[i]
	p2 := c.pts[i+1]
	p3 := c.pts[clampIdx(i+2, n)]

	u2 := u * u
	u3 := u2 * u
	for k := 0; k < 3; k++ {
		a := -p0[k] + 3*p1[k] - 3*p2[k] + p3[k]
		b := 2*p0[k] - 5*p1[k] + 4*p2[k] - p3[k]
		cc := -p0[k] + p2[k]
		pos[k] = 0.5 * (2*p1[k] + cc*u + b*u2 + a*u3)
		tan[k] = 0.5 * (cc + 2*b*u + 3*a*u2) * segs
	}
	return pos, tan
}

// Length approximates the arc length by sampling.
func (c *Curve) Length(samples int) float64 {
	if samples < 1 || len(c.pts) < 2 {
		return 0
	}
	total := 0.0
	prev, _ := c.Eval(0)
	for i := 1; i <= samples; i++ {
		p, _ := c.Eval(float64(i) / float64(samples))
		total += p.Sub(prev).Len()
		prev = p
	}
	return total
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
