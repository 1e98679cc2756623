// Package mesh holds the drawable-surface data model and the operations the
// synthesis pipeline composes: cloning, affine transforms, normal recompute,
// and multi-buffer merging.
package mesh

// Buffer holds one drawable surface as flat attribute slices.
// A nil Norm, UV, or Index slice means the attribute is absent; a buffer with
// zero vertices and zero indices is valid ("empty").
type Buffer struct {
	Pos   [][3]float32
	Norm  [][3]float32
	UV    [][2]float32
	Index []uint32
}

func (b *Buffer) VertexCount() int {
	return len(b.Pos)
}

// TriangleCount counts drawn triangles. Non-indexed buffers draw consecutive
// position triples.
func (b *Buffer) TriangleCount() int {
	if b.Index != nil {
		return len(b.Index) / 3
	}
	return len(b.Pos) / 3
}

func (b *Buffer) Empty() bool {
	return len(b.Pos) == 0 && len(b.Index) == 0
}

// Clone returns a deep copy. Deformation and instancing operate on clones so
// a shared base primitive is never mutated through an instance.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{}
	if b.Pos != nil {
		c.Pos = make([][3]float32, len(b.Pos))
		copy(c.Pos, b.Pos)
	}
	if b.Norm != nil {
		c.Norm = make([][3]float32, len(b.Norm))
		copy(c.Norm, b.Norm)
	}
	if b.UV != nil {
		c.UV = make([][2]float32, len(b.UV))
		copy(c.UV, b.UV)
	}
	if b.Index != nil {
		c.Index = make([]uint32, len(b.Index))
		copy(c.Index, b.Index)
	}
	return c
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty buffer returns two zero corners.
func (b *Buffer) Bounds() (min, max [3]float32) {
	if len(b.Pos) == 0 {
		return
	}
	min, max = b.Pos[0], b.Pos[0]
	for _, p := range b.Pos[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	return
}
