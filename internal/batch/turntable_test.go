package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosegen/internal/rose"
)

func TestRunWritesEveryFrame(t *testing.T) {
	organs, err := rose.New(rose.DefaultParams()).Build()
	require.NoError(t, err)

	dir := t.TempDir()
	results := Run(Config{
		OutputDir:    dir,
		Organs:       organs,
		Frames:       3,
		RenderSize:   32,
		Supersample:  2,
		Workers:      2,
		ElevationDeg: -18,
	})

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i, r.Frame)
		assert.True(t, r.Success, "frame %d: %s", i, r.Error)
		assert.Equal(t, filepath.Join(dir, fmt.Sprintf("frame_%03d.webp", i)), r.Path)

		info, err := os.Stat(r.Path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRunReportsUnwritableOutput(t *testing.T) {
	organs, err := rose.New(rose.DefaultParams()).Build()
	require.NoError(t, err)

	// a regular file where the output directory should be
	dir := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))

	results := Run(Config{
		OutputDir:   dir,
		Organs:      organs,
		Frames:      1,
		RenderSize:  16,
		Supersample: 1,
		Workers:     1,
	})
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
}
