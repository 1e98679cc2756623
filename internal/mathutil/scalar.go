package mathutil

import "math"

// GoldenAngle is the phyllotactic placement increment (137.5°) in radians.
const GoldenAngle = 137.5 * math.Pi / 180

// Lerp linearly interpolates between a and b by f.
func Lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AngleDist returns the shortest angular distance between two angles in degrees (0–180).
func AngleDist(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		return 360 - d
	}
	return d
}
