// Package batch renders a full turntable sequence with a worker pool: each
// frame is one azimuth step of the same synthesized rose, rasterized,
// downsampled, and encoded to WebP.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"rosegen/internal/postprocess"
	"rosegen/internal/raster"
	"rosegen/internal/rose"
	"rosegen/internal/scene"
)

// Config holds the shared resources for one turntable run. The organ slice
// is read-only across workers; synthesis happened once before the pool
// starts.
type Config struct {
	OutputDir    string
	Organs       []rose.Organ
	Matcap       *image.NRGBA
	Frames       int
	RenderSize   int
	Supersample  int
	Workers      int
	ElevationDeg float64
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders all frames using a worker pool and reports progress every two
// seconds.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, frame int) Result {
	azimuth := 360 * float64(frame) / float64(cfg.Frames)
	cam := scene.Camera{AzimuthDeg: azimuth, ElevationDeg: cfg.ElevationDeg}

	img := raster.Render(cfg.Organs, cam, cfg.RenderSize*cfg.Supersample, cfg.Matcap)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.webp", frame))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: frame, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: frame, Path: outPath, Success: true}
}
