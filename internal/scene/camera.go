// Package scene fits the synthesized organs into a frame: turntable view
// matrix, bounds fitting, and orthographic projection to pixel coordinates.
package scene

import (
	"math"

	"rosegen/internal/mathutil"
	"rosegen/internal/mesh"
)

// Camera is a turntable orbit around the rose: azimuth spins, elevation
// tips the view down toward the flower head.
type Camera struct {
	AzimuthDeg   float64
	ElevationDeg float64
}

// DefaultCamera frames the rose slightly from above.
func DefaultCamera() Camera {
	return Camera{AzimuthDeg: 30, ElevationDeg: -18}
}

// ViewMatrix returns the world-to-view rotation.
func (c Camera) ViewMatrix() mathutil.Mat3 {
	return mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(c.ElevationDeg)),
		mathutil.RotY(mathutil.Deg2Rad(c.AzimuthDeg)),
	)
}

// FitBounds computes the view-space center and the pixel scale that fit every
// buffer into a size×size frame with the given margin. The fit uses the
// bounding sphere around the view-space box center, so a spinning rose does
// not pump in and out of frame.
func FitBounds(bufs []*mesh.Buffer, R mathutil.Mat3, size, margin int) (center mathutil.Vec3, scale float64) {
	min := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	any := false
	for _, b := range bufs {
		for _, p := range b.Pos {
			tv := R.MulVec3(mathutil.FromF32(p))
			any = true
			for k := 0; k < 3; k++ {
				if tv[k] < min[k] {
					min[k] = tv[k]
				}
				if tv[k] > max[k] {
					max[k] = tv[k]
				}
			}
		}
	}
	if !any {
		return mathutil.Vec3{}, 1
	}

	center = min.Add(max).Scale(0.5)
	radius := 0.0
	for _, b := range bufs {
		for _, p := range b.Pos {
			if d := R.MulVec3(mathutil.FromF32(p)).Sub(center).Len(); d > radius {
				radius = d
			}
		}
	}
	if radius < 0.0005 {
		radius = 0.0005
	}
	scale = (float64(size)/2 - float64(margin)) / radius
	return center, scale
}

// Project maps a buffer's positions to screen-space pixel arrays. Z is kept
// for depth testing (larger = closer).
func Project(b *mesh.Buffer, R mathutil.Mat3, center mathutil.Vec3, scale float64, size int) (px, py, pz []float64) {
	n := len(b.Pos)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)
	half := float64(size) / 2
	for i, p := range b.Pos {
		tv := R.MulVec3(mathutil.FromF32(p)).Sub(center)
		px[i] = tv[0]*scale + half
		py[i] = half - tv[1]*scale
		pz[i] = tv[2] * scale
	}
	return
}

// ProjectNormals rotates normals into view space (unit length preserved).
func ProjectNormals(b *mesh.Buffer, R mathutil.Mat3) []mathutil.Vec3 {
	out := make([]mathutil.Vec3, len(b.Norm))
	for i, nrm := range b.Norm {
		out[i] = R.MulVec3(mathutil.FromF32(nrm))
	}
	return out
}
