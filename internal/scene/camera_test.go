package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosegen/internal/mathutil"
	"rosegen/internal/mesh"
)

func unitCube() *mesh.Buffer {
	b := &mesh.Buffer{}
	for _, x := range []float32{-1, 1} {
		for _, y := range []float32{-1, 1} {
			for _, z := range []float32{-1, 1} {
				b.Pos = append(b.Pos, [3]float32{x, y, z})
			}
		}
	}
	return b
}

func TestFitBoundsCentersAndFits(t *testing.T) {
	cam := Camera{}
	center, scale := FitBounds([]*mesh.Buffer{unitCube()}, cam.ViewMatrix(), 512, 16)

	assert.InDelta(t, 0, center[0], 1e-9)
	assert.InDelta(t, 0, center[1], 1e-9)
	// bounding sphere radius √3, usable half-frame 256-16
	assert.InDelta(t, 240/math.Sqrt(3), scale, 1e-9)
}

func TestFitBoundsEmptyScene(t *testing.T) {
	center, scale := FitBounds(nil, DefaultCamera().ViewMatrix(), 512, 16)
	assert.Equal(t, mathutil.Vec3{}, center)
	assert.Equal(t, 1.0, scale)
}

func TestProjectPlacesCenterMidFrame(t *testing.T) {
	b := &mesh.Buffer{Pos: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}
	R := mathutil.Mat3Identity()
	px, py, pz := Project(b, R, mathutil.Vec3{}, 100, 512)
	require.Len(t, px, 3)

	assert.InDelta(t, 256, px[0], 1e-9)
	assert.InDelta(t, 256, py[0], 1e-9)
	assert.InDelta(t, 0, pz[0], 1e-9)

	// +x goes right, +y goes up (screen y decreases)
	assert.InDelta(t, 356, px[1], 1e-9)
	assert.InDelta(t, 156, py[2], 1e-9)
}

func TestProjectDepthIncreasesTowardCamera(t *testing.T) {
	b := &mesh.Buffer{Pos: [][3]float32{{0, 0, -1}, {0, 0, 1}}}
	_, _, pz := Project(b, mathutil.Mat3Identity(), mathutil.Vec3{}, 100, 512)
	assert.Less(t, pz[0], pz[1])
}

func TestFitBoundsRotationStable(t *testing.T) {
	// a spinning camera must not change the fitted scale for a symmetric body
	var scales []float64
	for _, az := range []float64{0, 45, 130, 270} {
		cam := Camera{AzimuthDeg: az}
		_, s := FitBounds([]*mesh.Buffer{unitCube()}, cam.ViewMatrix(), 512, 16)
		scales = append(scales, s)
	}
	for i := 1; i < len(scales); i++ {
		assert.InDelta(t, scales[0], scales[i], 1e-9)
	}
}

func TestProjectNormalsPreserveLength(t *testing.T) {
	b := &mesh.Buffer{Norm: [][3]float32{{0, 0, 1}, {1, 0, 0}}}
	out := ProjectNormals(b, Camera{AzimuthDeg: 72, ElevationDeg: -20}.ViewMatrix())
	require.Len(t, out, 2)
	for _, n := range out {
		assert.InDelta(t, 1, n.Len(), 1e-9)
	}
}
