package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type toolbarAction int

const (
	toolUndo toolbarAction = iota
	toolRedo
	toolFont
	toolSize
	toolBold
	toolItalic
	toolCenter
	toolUnderline
	toolAddText
)

type toolbarButton struct {
	action  toolbarAction
	label   string
	enabled bool
	active  bool
	x0, x1  int // columns [x0, x1)
}

var (
	buttonStyle         = lipgloss.NewStyle().Bold(true)
	buttonActiveStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	buttonDisabledStyle = lipgloss.NewStyle().Faint(true)
	ruleStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// toolbarButtons describes the toolbar for the editor's current state.
// Undo and Redo follow their stacks, style controls need a selection and
// Add Text is always available.
func toolbarButtons(e *Editor) []toolbarButton {
	item, selected := e.SelectedItem()

	fontLabel, sizeLabel := "Font", "Size"
	if selected {
		fontLabel = item.FontFamily
		sizeLabel = fmt.Sprintf("%dpx", item.FontSize)
	}

	buttons := []toolbarButton{
		{action: toolUndo, label: "Undo", enabled: e.CanUndo()},
		{action: toolRedo, label: "Redo", enabled: e.CanRedo()},
		{action: toolFont, label: fontLabel + " ▾", enabled: selected},
		{action: toolSize, label: sizeLabel + " ▾", enabled: selected},
		{action: toolBold, label: "B", enabled: selected, active: selected && item.Bold},
		{action: toolItalic, label: "I", enabled: selected, active: selected && item.Italic},
		{action: toolCenter, label: "C", enabled: selected, active: selected && item.TextAlign == AlignCenter},
		{action: toolUnderline, label: "U", enabled: selected, active: selected && item.Underline},
		{action: toolAddText, label: "+ Add Text", enabled: true},
	}

	x := 0
	for i := range buttons {
		w := runewidth.StringWidth(buttons[i].label) + 2
		buttons[i].x0 = x
		buttons[i].x1 = x + w
		x += w + 1
	}
	return buttons
}

// toolbarHit returns the enabled button under column x.
func toolbarHit(buttons []toolbarButton, x int) (toolbarAction, bool) {
	for _, b := range buttons {
		if x >= b.x0 && x < b.x1 {
			return b.action, b.enabled
		}
	}
	return 0, false
}

func renderToolbar(buttons []toolbarButton, width int) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		text := "[" + b.label + "]"
		switch {
		case !b.enabled:
			text = buttonDisabledStyle.Render(text)
		case b.active:
			text = buttonActiveStyle.Render(text)
		default:
			text = buttonStyle.Render(text)
		}
		parts = append(parts, text)
	}
	line := strings.Join(parts, " ")
	if width > 0 && lipgloss.Width(line) > width {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

func renderRule(width int) string {
	if width < 1 {
		width = 1
	}
	return ruleStyle.Render(strings.Repeat("─", width))
}

// runToolbarAction performs what clicking the button does. Font and size
// selectors step to the next entry of their fixed lists.
func (m *model) runToolbarAction(action toolbarAction) {
	e := m.editor
	switch action {
	case toolUndo:
		e.Undo()
	case toolRedo:
		e.Redo()
	case toolFont:
		if item, ok := e.SelectedItem(); ok {
			e.SetFontFamily(nextFontFamily(item.FontFamily, 1))
		}
	case toolSize:
		if item, ok := e.SelectedItem(); ok {
			e.SetFontSize(nextFontSize(item.FontSize, 1))
		}
	case toolBold:
		e.ToggleBold()
	case toolItalic:
		e.ToggleItalic()
	case toolCenter:
		e.SetTextAlign(AlignCenter)
	case toolUnderline:
		e.ToggleUnderline()
	case toolAddText:
		m.placeItem(e.AddText())
	}
}
