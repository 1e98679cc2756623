package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"rosegen/internal/batch"
	"rosegen/internal/config"
	"rosegen/internal/rose"
	"rosegen/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 512)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 24)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Synthesis seed (default: 7)")
	matcapPath := flag.String("matcap", "", "Optional matcap image (png/jpg/tga)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Matcap:    *matcapPath,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
		Seed:      *seed,
	})

	var matcap *image.NRGBA
	if cfg.Matcap != "" {
		var err error
		matcap, err = texture.LoadMatcap(cfg.Matcap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading matcap: %v\n", err)
			os.Exit(1)
		}
	}

	params := rose.DefaultParams()
	params.Seed = cfg.Seed

	start := time.Now()
	organs, err := rose.New(params).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error synthesizing rose: %v\n", err)
		os.Exit(1)
	}
	verts := 0
	for _, o := range organs {
		verts += o.Buffer.VertexCount()
	}
	fmt.Printf("Synthesized %d organs, %d vertices in %v\n", len(organs), verts, time.Since(start).Round(time.Millisecond))

	fmt.Printf("Rendering %d frames at %dpx (x%d supersample) with %d workers...\n",
		cfg.Frames, cfg.RenderSize, cfg.Supersample, cfg.Workers)

	results := batch.Run(batch.Config{
		OutputDir:    cfg.OutputDir,
		Organs:       organs,
		Matcap:       matcap,
		Frames:       cfg.Frames,
		RenderSize:   cfg.RenderSize,
		Supersample:  cfg.Supersample,
		Workers:      cfg.Workers,
		ElevationDeg: -18,
	})

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(os.Stderr, "frame %d: %s\n", r.Frame, r.Error)
		}
	}
	fmt.Printf("Done: %d/%d frames in %v, output %s\n",
		len(results)-failed, len(results), time.Since(start).Round(time.Millisecond), cfg.OutputDir)
	if failed > 0 {
		os.Exit(1)
	}
}
