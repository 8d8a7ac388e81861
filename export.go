package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
)

var errNothingToExport = errors.New("nothing to export")

type rect struct {
	X, Y, W, H float64
}

// pngItem is an item measured for PNG output, in unshifted pixels.
type pngItem struct {
	item      TextItem
	bounds    rect
	textWidth float64
	textH     float64
}

// ExportToPNG draws every item at its canvas position with its own font,
// size, weight, slant, alignment and underline.
func ExportToPNG(items []TextItem, positions map[string]point, filename string, cfg ExportConfig) error {
	if len(items) == 0 {
		return errNothingToExport
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	charWidth := cfg.CharWidth * scale
	charHeight := cfg.CharHeight * scale
	pad := 8 * scale

	measure := gg.NewContext(1, 1)
	measured := make([]pngItem, 0, len(items))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, item := range items {
		face, err := itemFace(item, scale)
		if err != nil {
			return err
		}
		measure.SetFontFace(face)
		tw, th := measure.MeasureString(item.Text)

		pos := positions[item.ID]
		cellsW, cellsH := boxSize(item)
		b := rect{
			X: float64(pos.X) * charWidth,
			Y: float64(pos.Y) * charHeight,
			W: math.Max(float64(cellsW)*charWidth, tw+2*pad),
			H: math.Max(float64(cellsH)*charHeight, th+2*pad),
		}
		measured = append(measured, pngItem{item: item, bounds: b, textWidth: tw, textH: th})

		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.X+b.W)
		maxY = math.Max(maxY, b.Y+b.H)
	}

	margin := float64(cfg.Padding) * charWidth
	minX -= margin
	minY -= margin
	maxX += margin
	maxY += margin

	imageWidth := int(math.Ceil(maxX - minX))
	imageHeight := int(math.Ceil(maxY - minY))

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	for _, m := range measured {
		m.bounds.X -= minX
		m.bounds.Y -= minY
		if err := drawItemPNG(dc, m, pad, scale); err != nil {
			return err
		}
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save png %s: %w", filename, err)
	}
	slog.Debug("exported png", "file", filename, "items", len(items), "width", imageWidth, "height", imageHeight)
	return nil
}

func drawItemPNG(dc *gg.Context, m pngItem, pad, scale float64) error {
	b := m.bounds

	dc.SetLineWidth(1.0 * scale)
	dc.SetColor(color.Black)
	dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, 4*scale)
	dc.Stroke()

	face, err := itemFace(m.item, scale)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	textX := b.X + pad
	switch m.item.TextAlign {
	case AlignCenter:
		textX = b.X + (b.W-m.textWidth)/2
	case AlignRight:
		textX = b.X + b.W - pad - m.textWidth
	}
	centerY := b.Y + b.H/2
	dc.DrawStringAnchored(m.item.Text, textX, centerY, 0, 0.5)

	if m.item.Underline && m.textWidth > 0 {
		baseline := centerY + m.textH/2
		offset := math.Max(1, float64(m.item.FontSize)*scale/12)
		dc.SetLineWidth(math.Max(1, float64(m.item.FontSize)*scale/16))
		dc.DrawLine(textX, baseline+offset, textX+m.textWidth, baseline+offset)
		dc.Stroke()
	}
	return nil
}

// exportVisualTXT writes the canvas the way it appears on screen, minus
// terminal styling.
func exportVisualTXT(items []TextItem, positions map[string]point, filename string) error {
	if len(items) == 0 {
		return errNothingToExport
	}

	width, height := 0, 0
	for _, b := range layoutItems(items, positions) {
		if right := b.X + b.Width; right > width {
			width = right
		}
		if bottom := b.Y + b.Height; bottom > height {
			height = bottom
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer file.Close()

	rendered := renderCanvas(items, positions, "", width, height).PlainLines()
	if _, err := fmt.Fprintln(file, strings.Join(rendered, "\n")); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	slog.Debug("exported txt", "file", filename, "items", len(items))
	return nil
}
