package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientTex() *image.NRGBA {
	tex := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			tex.SetNRGBA(x, y, color.NRGBA{uint8(x * 80), uint8(y * 80), 10, 255})
		}
	}
	return tex
}

func TestSampleBilinearCorners(t *testing.T) {
	tex := gradientTex()

	r, g, _, a := SampleBilinear(tex, 0, 0)
	assert.Equal(t, uint8(0), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(255), a)

	r, g, _, _ = SampleBilinear(tex, 1, 1)
	assert.Equal(t, uint8(240), r)
	assert.Equal(t, uint8(240), g)
}

func TestSampleBilinearInterpolates(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{200, 0, 0, 255})

	r, _, _, _ := SampleBilinear(tex, 0.5, 0)
	assert.Equal(t, uint8(100), r)
}

func TestSampleBilinearClampsOutOfRange(t *testing.T) {
	tex := gradientTex()
	r1, _, _, _ := SampleBilinear(tex, -3, 0.5)
	r2, _, _, _ := SampleBilinear(tex, 0, 0.5)
	assert.Equal(t, r2, r1)
}

func TestSampleBilinearEmptyTexture(t *testing.T) {
	r, g, b, a := SampleBilinear(image.NewNRGBA(image.Rectangle{}), 0.5, 0.5)
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Zero(t, a)
}

func TestSampleDirectionMapsNormalToSphere(t *testing.T) {
	tex := gradientTex()

	// a camera-facing normal lands in the middle of the sphere picture
	rc, gc, _, _ := SampleDirection(tex, 0, 0)
	rm, gm, _, _ := SampleBilinear(tex, 0.5, 0.5)
	assert.Equal(t, rm, rc)
	assert.Equal(t, gm, gc)

	// +x normal samples the right edge, +y the top
	rr, _, _, _ := SampleDirection(tex, 1, 0)
	re, _, _, _ := SampleBilinear(tex, 1, 0.5)
	assert.Equal(t, re, rr)
	_, gTop, _, _ := SampleDirection(tex, 0, 1)
	_, ge, _, _ := SampleBilinear(tex, 0.5, 0)
	assert.Equal(t, ge, gTop)
}

func TestLoadMatcapPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matcap.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, gradientTex()))
	require.NoError(t, f.Close())

	tex, err := LoadMatcap(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), tex.Bounds())
	assert.Equal(t, color.NRGBA{80, 160, 10, 255}, tex.NRGBAAt(1, 2))
}

func TestLoadMatcapMissingFile(t *testing.T) {
	_, err := LoadMatcap(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestLoadMatcapUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err := LoadMatcap(path)
	assert.Error(t, err)
}
