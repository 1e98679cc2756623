package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"rosegen/internal/raster"
	"rosegen/internal/rose"
	"rosegen/internal/scene"
	"rosegen/internal/texture"
)

const viewSize = 400

// game is an interactive turntable: the rose auto-spins, dragging with the
// left mouse button takes over the azimuth and tips the elevation.
type game struct {
	organs []rose.Organ
	matcap *image.NRGBA

	azimuth   float64
	elevation float64
	dragging  bool
	lastX     int
	lastY     int

	frame *ebiten.Image
	dirty bool
}

func (g *game) Update() error {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.dragging {
			g.azimuth += float64(x-g.lastX) * 0.5
			g.elevation += float64(y-g.lastY) * 0.3
			if g.elevation > 60 {
				g.elevation = 60
			}
			if g.elevation < -80 {
				g.elevation = -80
			}
		}
		g.dragging = true
		g.lastX, g.lastY = x, y
		g.dirty = true
		return nil
	}
	g.dragging = false
	g.azimuth += 0.6
	g.dirty = true
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty || g.frame == nil {
		cam := scene.Camera{AzimuthDeg: g.azimuth, ElevationDeg: g.elevation}
		img := raster.Render(g.organs, cam, viewSize, g.matcap)
		if g.frame == nil {
			g.frame = ebiten.NewImage(viewSize, viewSize)
		}
		g.frame.WritePixels(img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	seed := flag.Int64("seed", 7, "Synthesis seed")
	matcapPath := flag.String("matcap", "", "Optional matcap image (png/jpg/tga)")
	flag.Parse()

	params := rose.DefaultParams()
	params.Seed = *seed

	organs, err := rose.New(params).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error synthesizing rose: %v\n", err)
		os.Exit(1)
	}

	var matcap *image.NRGBA
	if *matcapPath != "" {
		matcap, err = texture.LoadMatcap(*matcapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading matcap: %v\n", err)
			os.Exit(1)
		}
	}

	g := &game{organs: organs, matcap: matcap, elevation: -18, dirty: true}

	ebiten.SetWindowTitle("rosegen (drag to orbit)")
	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
