package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadBuffer() *Buffer {
	return &Buffer{
		Pos: [][3]float32{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		},
		Norm: [][3]float32{
			{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
		},
		UV: [][2]float32{
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
		},
		Index: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func bareTriangle() *Buffer {
	// positions only, no normals/uvs/indices
	return &Buffer{
		Pos: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	}
}

func TestMergeNoInputs(t *testing.T) {
	out, err := Merge(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, out.VertexCount())
	assert.Empty(t, out.Index)
	assert.True(t, out.Empty())

	out, err = Merge([]*Buffer{})
	require.NoError(t, err)
	assert.True(t, out.Empty())
}

func TestMergeVertexAndIndexTotals(t *testing.T) {
	inputs := []*Buffer{quadBuffer(), bareTriangle(), quadBuffer()}

	out, err := Merge(inputs)
	require.NoError(t, err)

	wantVerts := 0
	wantIdx := 0
	for _, in := range inputs {
		wantVerts += len(in.Pos)
		if in.Index != nil {
			wantIdx += len(in.Index)
		} else {
			wantIdx += len(in.Pos)
		}
	}
	assert.Equal(t, wantVerts, out.VertexCount())
	assert.Equal(t, wantIdx, len(out.Index))

	for _, ix := range out.Index {
		assert.Less(t, int(ix), wantVerts)
	}
}

func TestMergeIndexOffsets(t *testing.T) {
	g1 := quadBuffer()   // 4 verts, 6 indices
	g2 := bareTriangle() // 3 verts, non-indexed

	out, err := Merge([]*Buffer{g1, g2})
	require.NoError(t, err)

	require.Equal(t, 7, out.VertexCount())
	require.Len(t, out.Index, 9)

	// g1's indices copy unshifted, g2 becomes a sequential run offset by 4
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, out.Index[:6])
	assert.Equal(t, []uint32{4, 5, 6}, out.Index[6:])
}

func TestMergeAttributeFallbacks(t *testing.T) {
	out, err := Merge([]*Buffer{quadBuffer(), bareTriangle()})
	require.NoError(t, err)

	// unnormaled input gets the documented default normal
	for i := 4; i < 7; i++ {
		assert.Equal(t, DefaultNormal, out.Norm[i])
	}
	// missing uvs stay zero-filled
	for i := 4; i < 7; i++ {
		assert.Equal(t, [2]float32{0, 0}, out.UV[i])
	}
	// present attributes copy verbatim
	assert.Equal(t, [3]float32{0, 0, 1}, out.Norm[0])
	assert.Equal(t, [2]float32{1, 1}, out.UV[2])
}

func TestMergeMissingPositions(t *testing.T) {
	bad := &Buffer{Index: []uint32{0, 1, 2}}
	_, err := Merge([]*Buffer{quadBuffer(), bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no positions")
}

func TestMergeSkipsEmptyInputs(t *testing.T) {
	out, err := Merge([]*Buffer{{}, quadBuffer(), {}})
	require.NoError(t, err)
	assert.Equal(t, 4, out.VertexCount())
	assert.Len(t, out.Index, 6)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	g1 := quadBuffer()
	g2 := bareTriangle()
	want1 := g1.Clone()
	want2 := g2.Clone()

	_, err := Merge([]*Buffer{g1, g2})
	require.NoError(t, err)

	assert.Equal(t, want1, g1)
	assert.Equal(t, want2, g2)
}
