package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"output_dir": "out",
		"render_size": 768,
		"frames": 48,
		"seed": 11
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 768, cfg.RenderSize)
	assert.Equal(t, 48, cfg.Frames)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Zero(t, cfg.Workers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, "renders", cfg.OutputDir)
	assert.Equal(t, 512, cfg.RenderSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 24, cfg.Frames)
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{OutputDir: "from-file", RenderSize: 256, Frames: 12, Seed: 3}
	cfg.Resolve(Flags{OutputDir: "from-flag", Size: 1024, Seed: 5})

	assert.Equal(t, "from-flag", cfg.OutputDir)
	assert.Equal(t, 1024, cfg.RenderSize)
	assert.Equal(t, 12, cfg.Frames)
	assert.Equal(t, int64(5), cfg.Seed)
}

func TestResolveKeepsFileValues(t *testing.T) {
	cfg := Config{Matcap: "matcap.png", Workers: 3}
	cfg.Resolve(Flags{})
	assert.Equal(t, "matcap.png", cfg.Matcap)
	assert.Equal(t, 3, cfg.Workers)
}
