package primitive

import (
	"github.com/chewxy/math32"

	"rosegen/internal/mesh"
)

// Sphere builds a UV sphere centered at the origin with analytic normals.
func Sphere(radius float32, wsegs, hsegs int) *mesh.Buffer {
	if wsegs < 3 {
		wsegs = 3
	}
	if hsegs < 2 {
		hsegs = 2
	}
	cols := wsegs + 1
	rows := hsegs + 1
	n := cols * rows

	b := &mesh.Buffer{
		Pos:   make([][3]float32, n),
		Norm:  make([][3]float32, n),
		UV:    make([][2]float32, n),
		Index: make([]uint32, 0, wsegs*hsegs*6),
	}

	i := 0
	for r := 0; r < rows; r++ {
		v := float32(r) / float32(hsegs)
		elev := v * math32.Pi
		for c := 0; c < cols; c++ {
			u := float32(c) / float32(wsegs)
			ang := u * 2 * math32.Pi
			px := -radius * math32.Cos(ang) * math32.Sin(elev)
			py := radius * math32.Cos(elev)
			pz := radius * math32.Sin(ang) * math32.Sin(elev)
			b.Pos[i] = [3]float32{px, py, pz}
			nrm := [3]float32{px, py, pz}
			l := math32.Sqrt(nrm[0]*nrm[0] + nrm[1]*nrm[1] + nrm[2]*nrm[2])
			if l > 0 {
				nrm[0] /= l
				nrm[1] /= l
				nrm[2] /= l
			}
			b.Norm[i] = nrm
			b.UV[i] = [2]float32{u, v}
			i++
		}
	}

	for r := 0; r < hsegs; r++ {
		for c := 0; c < wsegs; c++ {
			a := uint32(r*cols + c)
			bb := a + 1
			cc := a + uint32(cols)
			d := cc + 1
			if r > 0 {
				b.Index = append(b.Index, a, bb, d)
			}
			if r < hsegs-1 {
				b.Index = append(b.Index, a, d, cc)
			}
		}
	}
	return b
}
