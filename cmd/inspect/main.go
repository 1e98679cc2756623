package main

import (
	"flag"
	"fmt"
	"os"

	"rosegen/internal/rose"
)

func main() {
	seed := flag.Int64("seed", 7, "Synthesis seed")
	flag.Parse()

	params := rose.DefaultParams()
	params.Seed = *seed

	organs, err := rose.New(params).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-20s %8s %8s  %s\n", "organ", "verts", "tris", "bounds (min .. max)")
	totalV, totalT := 0, 0
	for _, o := range organs {
		min, max := o.Buffer.Bounds()
		fmt.Printf("%-20s %8d %8d  (%.2f %.2f %.2f) .. (%.2f %.2f %.2f)\n",
			o.Name, o.Buffer.VertexCount(), o.Buffer.TriangleCount(),
			min[0], min[1], min[2], max[0], max[1], max[2])
		totalV += o.Buffer.VertexCount()
		totalT += o.Buffer.TriangleCount()

		// sanity: every index must address a vertex
		for _, ix := range o.Buffer.Index {
			if int(ix) >= o.Buffer.VertexCount() {
				fmt.Fprintf(os.Stderr, "%s: index %d out of range (%d vertices)\n",
					o.Name, ix, o.Buffer.VertexCount())
				os.Exit(1)
			}
		}
	}
	fmt.Printf("%-20s %8d %8d\n", "total", totalV, totalT)
}
