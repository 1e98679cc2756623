package raster

import (
	"image"
	"math"
)

// FrameBuffer is the render target: interleaved RGBA plus a depth value per
// pixel (larger = closer, initialized to -inf).
type FrameBuffer struct {
	Size  int // frames are square
	Color []uint8
	ZBuf  []float64
}

// NewFrameBuffer allocates a transparent color buffer and a cleared z-buffer.
func NewFrameBuffer(size int) *FrameBuffer {
	n := size * size
	fb := &FrameBuffer{
		Size:  size,
		Color: make([]uint8, n*4),
		ZBuf:  make([]float64, n),
	}
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
	}
	return fb
}

// Image copies the framebuffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Size, fb.Size))
	copy(img.Pix, fb.Color)
	return img
}
