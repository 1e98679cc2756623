package primitive

import (
	"github.com/chewxy/math32"

	"rosegen/internal/mesh"
)

// Lathe revolves a 2D profile polyline (x = radius, y = height) around the Y
// axis in segs steps. Normals are recomputed from the swept surface.
func Lathe(profile [][2]float32, segs int) *mesh.Buffer {
	if len(profile) < 2 || segs < 3 {
		return &mesh.Buffer{}
	}
	cols := segs + 1
	rows := len(profile)
	n := cols * rows

	b := &mesh.Buffer{
		Pos:   make([][3]float32, n),
		UV:    make([][2]float32, n),
		Index: make([]uint32, 0, segs*(rows-1)*6),
	}

	i := 0
	for r := 0; r < rows; r++ {
		v := float32(r) / float32(rows-1)
		for c := 0; c < cols; c++ {
			u := float32(c) / float32(segs)
			ang := u * 2 * math32.Pi
			b.Pos[i] = [3]float32{
				profile[r][0] * math32.Cos(ang),
				profile[r][1],
				profile[r][0] * math32.Sin(ang),
			}
			b.UV[i] = [2]float32{u, v}
			i++
		}
	}

	for r := 0; r < rows-1; r++ {
		for c := 0; c < segs; c++ {
			a := uint32(r*cols + c)
			bb := a + 1
			cc := a + uint32(cols)
			d := cc + 1
			b.Index = append(b.Index, a, bb, d, a, d, cc)
		}
	}

	b.RecomputeNormals()
	return b
}
