package mesh

import "fmt"

// DefaultNormal is fabricated for every vertex of a merge input that carries
// no normals, and for vertices whose recomputed normal degenerates.
var DefaultNormal = [3]float32{0, 1, 0}

// Merge concatenates the inputs, in order, into one new indexed buffer.
//
// Vertex attributes are copied verbatim; missing normals become
// DefaultNormal, missing texture coordinates stay zero-filled. Indexed inputs
// have their indices shifted by the running vertex offset; non-indexed inputs
// emit a sequential index run over their own vertices. Inputs are never
// mutated, and merging no inputs yields a valid empty buffer.
//
// A non-empty input without positions violates the pipeline precondition and
// is reported as an error.
func Merge(inputs []*Buffer) (*Buffer, error) {
	totalVerts := 0
	totalIdx := 0
	for i, in := range inputs {
		if len(in.Pos) == 0 {
			if !in.Empty() {
				return nil, fmt.Errorf("mesh: merge: input %d has no positions", i)
			}
			continue
		}
		totalVerts += len(in.Pos)
		if in.Index != nil {
			totalIdx += len(in.Index)
		} else {
			totalIdx += len(in.Pos)
		}
	}

	out := &Buffer{
		Pos:   make([][3]float32, totalVerts),
		Norm:  make([][3]float32, totalVerts),
		UV:    make([][2]float32, totalVerts),
		Index: make([]uint32, totalIdx),
	}

	vtxOff := 0
	idxOff := 0
	for _, in := range inputs {
		n := len(in.Pos)
		if n == 0 {
			continue
		}
		copy(out.Pos[vtxOff:], in.Pos)

		if in.Norm != nil {
			copy(out.Norm[vtxOff:], in.Norm)
		} else {
			for k := 0; k < n; k++ {
				out.Norm[vtxOff+k] = DefaultNormal
			}
		}
		if in.UV != nil {
			copy(out.UV[vtxOff:], in.UV)
		}

		if in.Index != nil {
			for k, ix := range in.Index {
				out.Index[idxOff+k] = ix + uint32(vtxOff)
			}
			idxOff += len(in.Index)
		} else {
			for k := 0; k < n; k++ {
				out.Index[idxOff+k] = uint32(vtxOff + k)
			}
			idxOff += n
		}
		vtxOff += n
	}

	return out, nil
}
