// Package config holds the render settings shared by the command-line tools:
// a JSON file provides the baseline, CLI flags override, and zero values fall
// back to defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable output and render settings.
type Config struct {
	OutputDir string `json:"output_dir"`
	Matcap    string `json:"matcap"`

	RenderSize  int   `json:"render_size"`
	Supersample int   `json:"supersample"`
	Frames      int   `json:"frames"`
	Workers     int   `json:"workers"`
	Seed        int64 `json:"seed"`
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Matcap    string
	Size      int
	Frames    int
	Workers   int
	Seed      int64
}

// Resolve applies flag overrides, then fills any remaining zero fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Matcap != "" {
		c.Matcap = flags.Matcap
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 24
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed == 0 {
		c.Seed = 7
	}
}
