// Package raster renders the synthesized organ meshes to an image with a
// software rasterizer: orthographic turntable projection, per-face flat
// shading, z-buffer, and ACES tone mapping.
package raster

import (
	"image"

	"rosegen/internal/mesh"
	"rosegen/internal/rose"
	"rosegen/internal/scene"
)

// margin keeps the rose off the frame edge, in pixels at render size.
const margin = 16

// Render draws the organs from the given camera into a square NRGBA image of
// renderSize pixels. Callers supersample by passing a multiple of the final
// size and downsampling afterwards. Opaque organs draw first so the additive
// shard pass accumulates over them.
func Render(organs []rose.Organ, cam scene.Camera, renderSize int, matcap *image.NRGBA) *image.NRGBA {
	R := cam.ViewMatrix()

	bufs := make([]*mesh.Buffer, 0, len(organs))
	for _, o := range organs {
		bufs = append(bufs, o.Buffer)
	}
	center, scale := scene.FitBounds(bufs, R, renderSize, margin)

	fb := NewFrameBuffer(renderSize)
	lc := DefaultLightConfig()

	drawPass := func(additive bool) {
		for _, o := range organs {
			if o.Glow != additive || o.Buffer.Empty() {
				continue
			}
			px, py, pz := scene.Project(o.Buffer, R, center, scale, renderSize)
			mat := Material{Color: o.Color, Matcap: matcap, Additive: additive}
			idx := o.Buffer.Index
			for t := 0; t+2 < len(idx); t += 3 {
				Triangle(fb, px, py, pz, idx[t], idx[t+1], idx[t+2], mat, &lc)
			}
		}
	}
	drawPass(false)
	drawPass(true)

	return fb.Image()
}
