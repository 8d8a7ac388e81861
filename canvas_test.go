package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id string) TextItem {
	return newTextItem(id)
}

func TestBoxSize_GrowsWithFontSizeAndText(t *testing.T) {
	item := testItem("a")
	w, h := boxSize(item)
	assert.Equal(t, minInnerWidth+4, w)
	assert.Equal(t, boxHeight, h)

	item.FontSize = 48
	wide, _ := boxSize(item)
	assert.Greater(t, wide, w)

	item.FontSize = DefaultFontSize
	item.Text = strings.Repeat("x", 30)
	w, _ = boxSize(item)
	assert.Equal(t, 34, w)

	item.Text = strings.Repeat("x", 500)
	w, _ = boxSize(item)
	assert.Equal(t, maxInnerWidth+4, w)
}

func TestAlignText(t *testing.T) {
	cases := []struct {
		align  TextAlign
		offset int
	}{
		{AlignLeft, 0},
		{AlignJustify, 0},
		{AlignCenter, 2},
		{AlignRight, 4},
	}
	for _, tc := range cases {
		t.Run(string(tc.align), func(t *testing.T) {
			text, offset := alignText("abcdef", 10, tc.align)
			assert.Equal(t, "abcdef", text)
			assert.Equal(t, tc.offset, offset)
		})
	}

	text, offset := alignText("a very long line of text", 8, AlignRight)
	assert.Equal(t, 0, offset)
	assert.Equal(t, "a very …", text)
}

func TestRenderCanvas_DrawsBoxWithAlignedText(t *testing.T) {
	item := testItem("a")
	positions := map[string]point{"a": {X: 0, Y: 0}}

	lines := renderCanvas([]TextItem{item}, positions, "", 20, 3).PlainLines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "┌─ Arial"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "┐"), lines[0])
	assert.Equal(t, "│ New Text   │", lines[1])
	assert.Equal(t, "└"+strings.Repeat("─", 12)+"┘", lines[2])

	item.TextAlign = AlignCenter
	lines = renderCanvas([]TextItem{item}, positions, "", 20, 3).PlainLines()
	assert.Equal(t, "│  New Text  │", lines[1])

	item.TextAlign = AlignRight
	lines = renderCanvas([]TextItem{item}, positions, "", 20, 3).PlainLines()
	assert.Equal(t, "│   New Text │", lines[1])
}

func TestRenderCanvas_HighlightsSelectedBox(t *testing.T) {
	items := []TextItem{testItem("a"), testItem("b")}
	positions := map[string]point{"a": {X: 0, Y: 0}, "b": {X: 20, Y: 0}}

	lines := renderCanvas(items, positions, "b", 40, 3).PlainLines()
	assert.True(t, strings.HasPrefix(lines[1], "│"))
	assert.Contains(t, lines[1], "║ New Text   ║")
}

func TestRenderCanvas_ClipsToViewport(t *testing.T) {
	items := []TextItem{testItem("a")}
	positions := map[string]point{"a": {X: 15, Y: 2}}

	lines := renderCanvas(items, positions, "", 20, 3).PlainLines()
	require.Len(t, lines, 3)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, strings.Repeat(" ", 15)+"┌─ Ar", lines[2])
}

func TestItemAt_ReturnsTopmost(t *testing.T) {
	items := []TextItem{testItem("a"), testItem("b")}
	positions := map[string]point{"a": {X: 0, Y: 0}, "b": {X: 4, Y: 1}}
	boxes := layoutItems(items, positions)

	assert.Equal(t, "a", itemAt(boxes, 1, 0))
	assert.Equal(t, "b", itemAt(boxes, 5, 1))
	assert.Equal(t, "b", itemAt(boxes, 17, 3))
	assert.Equal(t, "", itemAt(boxes, 30, 10))
}

func TestCanvasLines_KeepsWideRunesAligned(t *testing.T) {
	c := NewCanvas(6, 1)
	c.drawString(0, 0, "日本", plainStyle)
	c.drawString(4, 0, "ab", plainStyle)
	assert.Equal(t, []string{"日本ab"}, c.PlainLines())
}
