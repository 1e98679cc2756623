package raster

import (
	"image"
	"math"

	"rosegen/internal/texture"
)

// Material controls how one organ's triangles are filled: a base color,
// an optional matcap image sampled by view-space normal, and an additive
// blend used for the glowing shard fragments.
type Material struct {
	Color    [4]uint8
	Matcap   *image.NRGBA
	Additive bool
}

// Triangle rasterizes one triangle of a projected organ with flat shading,
// z-buffering (skipped in additive mode), and ACES tone mapping.
//
// Hot path: no allocations inside the pixel loop.
func Triangle(fb *FrameBuffer, px, py, pz []float64, i0, i1, i2 uint32, mat Material, lc *LightConfig) {
	nv := uint32(len(px))
	if i0 >= nv || i1 >= nv || i2 >= nv {
		return
	}

	x0, y0, z0 := px[i0], py[i0], pz[i0]
	x1, y1, z1 := px[i1], py[i1], pz[i1]
	x2, y2, z2 := px[i2], py[i2], pz[i2]

	// face normal in view space (screen x right, y down, z toward viewer)
	e1x, e1y, e1z := x1-x0, y1-y0, z1-z0
	e2x, e2y, e2z := x2-x0, y2-y0, z2-z0
	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x
	nl := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if nl < 1e-8 {
		return
	}
	nx /= nl
	ny /= nl
	nz /= nl

	shade := lc.Shade(nx, -ny, nz) // flip y: screen y grows downward

	cr, cg, cb, ca := mat.Color[0], mat.Color[1], mat.Color[2], mat.Color[3]
	if mat.Matcap != nil {
		// sample the matcap by the face normal, tinted by the base color
		mr, mg, mb, _ := texture.SampleDirection(mat.Matcap, nx, -ny)
		cr = uint8((int(cr) * int(mr)) / 255)
		cg = uint8((int(cg) * int(mg)) / 255)
		cb = uint8((int(cb) * int(mb)) / 255)
	}

	size := fb.Size
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= size {
		maxX = size - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= size {
		maxY = size - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	lr := srgbToLinear[cr]
	lg := srgbToLinear[cg]
	lb := srgbToLinear[cb]
	s := shade * lc.Exposure
	fr := math.Pow(ACESTonemap(lr*s), lc.InvGamma) * 255
	fg := math.Pow(ACESTonemap(lg*s), lc.InvGamma) * 255
	fbv := math.Pow(ACESTonemap(lb*s), lc.InvGamma) * 255

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			zIdx := rowOff + sx
			pxIdx := zIdx * 4

			if mat.Additive {
				// no z test or write: glow accumulates over whatever is behind
				fb.Color[pxIdx] = clamp255(float64(fb.Color[pxIdx]) + fr*0.6)
				fb.Color[pxIdx+1] = clamp255(float64(fb.Color[pxIdx+1]) + fg*0.6)
				fb.Color[pxIdx+2] = clamp255(float64(fb.Color[pxIdx+2]) + fbv*0.6)
				lum := fr*0.299 + fg*0.587 + fbv*0.114
				if a := clamp255(lum); a > fb.Color[pxIdx+3] {
					fb.Color[pxIdx+3] = a
				}
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			fb.Color[pxIdx] = clamp255(fr)
			fb.Color[pxIdx+1] = clamp255(fg)
			fb.Color[pxIdx+2] = clamp255(fbv)
			fb.Color[pxIdx+3] = ca
		}
	}
}
