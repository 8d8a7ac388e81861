package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styledItems() ([]TextItem, map[string]point) {
	plain := newTextItem("plain")

	heading := newTextItem("heading")
	heading.Text = "Heading"
	heading.FontSize = 48
	heading.Bold = true
	heading.FontFamily = "Georgia"
	heading.TextAlign = AlignCenter

	code := newTextItem("code")
	code.Text = "code()"
	code.FontFamily = "Courier New"
	code.Italic = true
	code.Underline = true
	code.TextAlign = AlignRight

	items := []TextItem{plain, heading, code}
	positions := map[string]point{
		"plain":   {X: 0, Y: 0},
		"heading": {X: 20, Y: 4},
		"code":    {X: 4, Y: 10},
	}
	return items, positions
}

func TestExportToPNG_WritesDecodableImage(t *testing.T) {
	items, positions := styledItems()
	path := filepath.Join(t.TempDir(), "board.png")

	require.NoError(t, ExportToPNG(items, positions, path, defaultConfig().Export))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Greater(t, bounds.Dx(), 20*8, "image covers the rightmost box")
	assert.Greater(t, bounds.Dy(), 10*16, "image covers the lowest box")

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "margin is white")
}

func TestExportToPNG_ScaleGrowsImage(t *testing.T) {
	items, positions := styledItems()
	dir := t.TempDir()
	cfg := defaultConfig().Export

	small := filepath.Join(dir, "small.png")
	require.NoError(t, ExportToPNG(items, positions, small, cfg))
	cfg.Scale = 2
	large := filepath.Join(dir, "large.png")
	require.NoError(t, ExportToPNG(items, positions, large, cfg))

	decode := func(path string) (int, int) {
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		c, err := png.DecodeConfig(f)
		require.NoError(t, err)
		return c.Width, c.Height
	}
	sw, sh := decode(small)
	lw, lh := decode(large)
	assert.Greater(t, lw, sw)
	assert.Greater(t, lh, sh)
}

func TestExport_NothingToExport(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, ExportToPNG(nil, nil, filepath.Join(dir, "a.png"), defaultConfig().Export), errNothingToExport)
	assert.ErrorIs(t, exportVisualTXT(nil, nil, filepath.Join(dir, "a.txt")), errNothingToExport)
	assert.NoFileExists(t, filepath.Join(dir, "a.png"))
}

func TestExportToPNG_BadPath(t *testing.T) {
	items, positions := styledItems()
	err := ExportToPNG(items, positions, filepath.Join(t.TempDir(), "missing", "a.png"), defaultConfig().Export)
	assert.Error(t, err)
}

func TestExportVisualTXT_MatchesCanvas(t *testing.T) {
	items, positions := styledItems()
	path := filepath.Join(t.TempDir(), "board.txt")

	require.NoError(t, exportVisualTXT(items, positions, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, "│ New Text   │")
	assert.Contains(t, text, "Heading")
	assert.Contains(t, text, "code()")
	assert.NotContains(t, text, "\x1b[", "no terminal styling")

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Len(t, lines, 13, "rows up to the bottom of the lowest box")
}

func TestLoadFont_FallsBackForUnknownFamily(t *testing.T) {
	f, err := loadFont("Comic Sans MS", false, false)
	require.NoError(t, err)
	sans, err := loadFont("Arial", false, false)
	require.NoError(t, err)
	assert.Same(t, sans, f)

	bold, err := loadFont("Arial", true, false)
	require.NoError(t, err)
	assert.NotSame(t, sans, bold)
}
