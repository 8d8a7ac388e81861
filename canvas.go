package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// itemBox is where an item sits on the canvas, in canvas cells.
type itemBox struct {
	ID     string
	X      int
	Y      int
	Width  int
	Height int
}

func (b itemBox) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// innerWidth grows with the font size so larger text gets a wider box.
func innerWidth(item TextItem) int {
	w := minInnerWidth + (item.FontSize-DefaultFontSize)/4
	if w < 4 {
		w = 4
	}
	if tw := runewidth.StringWidth(item.Text); tw > w {
		w = tw
	}
	if w > maxInnerWidth {
		w = maxInnerWidth
	}
	return w
}

func boxSize(item TextItem) (int, int) {
	// border + one space of padding on each side
	return innerWidth(item) + 4, boxHeight
}

func layoutItems(items []TextItem, positions map[string]point) []itemBox {
	boxes := make([]itemBox, 0, len(items))
	for _, item := range items {
		pos := positions[item.ID]
		w, h := boxSize(item)
		boxes = append(boxes, itemBox{ID: item.ID, X: pos.X, Y: pos.Y, Width: w, Height: h})
	}
	return boxes
}

// itemAt returns the topmost item under the canvas cell, or "".
func itemAt(boxes []itemBox, x, y int) string {
	for i := len(boxes) - 1; i >= 0; i-- {
		if boxes[i].contains(x, y) {
			return boxes[i].ID
		}
	}
	return ""
}

// alignText fits text into width cells and returns it with the column
// offset that aligns it. Justify on a single line behaves like left, as
// it does for the last line of a paragraph.
func alignText(text string, width int, align TextAlign) (string, int) {
	text = runewidth.Truncate(text, width, "…")
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text, 0
	}
	switch align {
	case AlignCenter:
		return text, gap / 2
	case AlignRight:
		return text, gap
	default:
		return text, 0
	}
}

type boxBorder struct {
	topLeft, topRight, bottomLeft, bottomRight, horizontal, vertical rune
}

var (
	plainBorder    = boxBorder{'┌', '┐', '└', '┘', '─', '│'}
	selectedBorder = boxBorder{'╔', '╗', '╚', '╝', '═', '║'}
)

const plainStyle = -1

type cell struct {
	r     rune
	style int
}

// Canvas is a grid of styled cells. Styles index into styles; cells
// holding 0 are the trailing half of a wide rune.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
	styles []lipgloss.Style
}

func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' ', style: plainStyle}
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) addStyle(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

func (c *Canvas) isValidPos(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) set(x, y int, r rune, style int) {
	if c.isValidPos(x, y) {
		c.cells[y][x] = cell{r: r, style: style}
	}
}

// drawString writes s starting at x and returns the column after it.
func (c *Canvas) drawString(x, y int, s string, style int) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(x, y, r, style)
		for i := 1; i < w; i++ {
			c.set(x+i, y, 0, style)
		}
		x += w
	}
	return x
}

func (c *Canvas) drawBox(box itemBox, item TextItem, selected bool, borderStyle, textStyle int) {
	b := plainBorder
	if selected {
		b = selectedBorder
	}
	right := box.X + box.Width - 1
	bottom := box.Y + box.Height - 1

	for x := box.X + 1; x < right; x++ {
		c.set(x, box.Y, b.horizontal, borderStyle)
		c.set(x, bottom, b.horizontal, borderStyle)
	}
	for y := box.Y + 1; y < bottom; y++ {
		c.set(box.X, y, b.vertical, borderStyle)
		c.set(right, y, b.vertical, borderStyle)
		for x := box.X + 1; x < right; x++ {
			c.set(x, y, ' ', plainStyle)
		}
	}
	c.set(box.X, box.Y, b.topLeft, borderStyle)
	c.set(right, box.Y, b.topRight, borderStyle)
	c.set(box.X, bottom, b.bottomLeft, borderStyle)
	c.set(right, bottom, b.bottomRight, borderStyle)

	label := fmt.Sprintf(" %s %dpx ", item.FontFamily, item.FontSize)
	if room := box.Width - 4; room > 2 {
		c.drawString(box.X+2, box.Y, runewidth.Truncate(label, room, "…"), borderStyle)
	}

	text, offset := alignText(item.Text, box.Width-4, item.TextAlign)
	c.drawString(box.X+2+offset, box.Y+1, text, textStyle)
}

func itemTextStyle(item TextItem) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(item.Bold).
		Italic(item.Italic).
		Underline(item.Underline)
}

var selectedBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

// renderCanvas draws items in creation order, later items on top.
func renderCanvas(items []TextItem, positions map[string]point, selected string, width, height int) *Canvas {
	c := NewCanvas(width, height)
	plainBorderStyle := c.addStyle(lipgloss.NewStyle())
	focusBorderStyle := c.addStyle(selectedBorderStyle)

	boxes := layoutItems(items, positions)
	for i, item := range items {
		isSelected := item.ID == selected
		border := plainBorderStyle
		if isSelected {
			border = focusBorderStyle
		}
		c.drawBox(boxes[i], item, isSelected, border, c.addStyle(itemTextStyle(item)))
	}
	return c
}

// Lines renders each row, merging runs of equally styled cells.
func (c *Canvas) Lines() []string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		var line strings.Builder
		var run strings.Builder
		current := plainStyle
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == plainStyle {
				line.WriteString(run.String())
			} else {
				line.WriteString(c.styles[current].Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.r == 0 {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines = append(lines, line.String())
	}
	return lines
}

// PlainLines renders each row without any terminal styling.
func (c *Canvas) PlainLines() []string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		var line strings.Builder
		for _, cl := range row {
			if cl.r != 0 {
				line.WriteRune(cl.r)
			}
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines
}
