package primitive

import (
	"github.com/chewxy/math32"

	"rosegen/internal/mesh"
)

// Cone builds an open cone along +Y from a base ring at y=0 to a tip ring at
// y=height, radius interpolated linearly. A near-zero tipRadius closes the
// shape visually (thorn base primitive).
func Cone(baseRadius, tipRadius, height float32, radialSegs, heightSegs int) *mesh.Buffer {
	if radialSegs < 3 {
		radialSegs = 3
	}
	if heightSegs < 1 {
		heightSegs = 1
	}
	cols := radialSegs + 1
	rows := heightSegs + 1
	n := cols * rows

	b := &mesh.Buffer{
		Pos:   make([][3]float32, n),
		UV:    make([][2]float32, n),
		Index: make([]uint32, 0, radialSegs*heightSegs*6),
	}

	i := 0
	for r := 0; r < rows; r++ {
		v := float32(r) / float32(heightSegs)
		radius := baseRadius + (tipRadius-baseRadius)*v
		for c := 0; c < cols; c++ {
			u := float32(c) / float32(radialSegs)
			ang := u * 2 * math32.Pi
			b.Pos[i] = [3]float32{
				radius * math32.Cos(ang),
				v * height,
				radius * math32.Sin(ang),
			}
			b.UV[i] = [2]float32{u, v}
			i++
		}
	}

	for r := 0; r < heightSegs; r++ {
		for c := 0; c < radialSegs; c++ {
			a := uint32(r*cols + c)
			bb := a + 1
			cc := a + uint32(cols)
			d := cc + 1
			b.Index = append(b.Index, a, d, bb, a, cc, d)
		}
	}

	b.RecomputeNormals()
	return b
}
