package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownsampleSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	out := Downsample(src, 64)
	assert.Equal(t, image.Rect(0, 0, 64, 64), out.Bounds())
}

func TestDownsamplePassthroughAtTargetSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	assert.Same(t, src, Downsample(src, 64))
}

func TestDownsampleSolidColorStaysSolid(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.SetNRGBA(x, y, color.NRGBA{200, 40, 80, 255})
		}
	}
	out := Downsample(src, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := out.NRGBAAt(x, y)
			assert.InDelta(t, 200, float64(c.R), 2)
			assert.InDelta(t, 40, float64(c.G), 2)
			assert.InDelta(t, 80, float64(c.B), 2)
			require.Equal(t, uint8(255), c.A)
		}
	}
}

func TestDownsampleNoDarkHaloOnTransparentBorder(t *testing.T) {
	// opaque red block surrounded by fully transparent pixels: straight-alpha
	// filtering would pull the zeroed rgb into the edge
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 16; y < 48; y++ {
		for x := 16; x < 48; x++ {
			src.SetNRGBA(x, y, color.NRGBA{220, 30, 30, 255})
		}
	}
	out := Downsample(src, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := out.NRGBAAt(x, y)
			if c.A < 32 {
				continue
			}
			// wherever coverage remains, the color must stay red, not darken
			assert.Greater(t, int(c.R), 150, "halo at (%d,%d): %+v", x, y, c)
		}
	}
}
