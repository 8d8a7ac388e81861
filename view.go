package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width := m.width
	if width < 1 {
		width = 1
	}

	var result strings.Builder
	result.WriteString(renderToolbar(toolbarButtons(m.editor), width))
	result.WriteString("\n")
	result.WriteString(renderRule(width))
	result.WriteString("\n")

	selected, _ := m.editor.Selected()
	canvas := renderCanvas(m.editor.Items(), m.positions, selected, width, m.canvasHeight())
	result.WriteString(strings.Join(canvas.Lines(), "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusLine())

	return result.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeEditing:
		return fmt.Sprintf("Mode: EDIT | Text: %s | Enter=save, Esc=cancel", m.input.View())
	case ModeMove:
		return "Mode: MOVE | hjkl/arrows=move, Shift=faster, Enter=finish, Esc=cancel"
	case ModeFileInput:
		op := "Export PNG"
		if m.fileOp == FileOpExportTXT {
			op = "Export TXT"
		}
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s | Enter=retry, Esc=cancel", m.errorMessage, op, m.input.View())
		}
		return fmt.Sprintf("Mode: FILE | %s filename: %s | Enter=confirm, Esc=cancel", op, m.input.View())
	case ModeConfirm:
		message := "Quit textboard? Unsaved work will be lost. (y/n)"
		if m.confirmAction == ConfirmOverwriteFile {
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		return "Mode: CONFIRM | " + message
	}

	status := fmt.Sprintf("Mode: %s | Items: %d", m.modeString(), len(m.editor.Items()))
	if item, ok := m.editor.SelectedItem(); ok {
		status += fmt.Sprintf(" | Selected: %s, %dpx, %s", item.FontFamily, item.FontSize, item.TextAlign)
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		status += " | ERROR: " + m.errorMessage
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeEditing:
		return "EDIT"
	case ModeMove:
		return "MOVE"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpLines() []string {
	lines := []string{
		"textboard help",
		"==============",
		"",
		"Click a box to select it, drag it to move it.",
		"Toolbar buttons are clickable; font and size step through their lists.",
		"",
	}
	titles := []string{"Items:", "Style:", "Font:", "History & clipboard:", "General:"}
	for i, group := range m.keys.helpBindings() {
		if i < len(titles) {
			lines = append(lines, titles[i], strings.Repeat("-", len(titles[i])))
		}
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-16s %s", h.Key, h.Desc))
		}
		lines = append(lines, "")
	}
	return lines
}

func (m model) maxHelpScroll() int {
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	max := len(m.helpLines()) - visible
	if max < 0 {
		max = 0
	}
	return max
}

func (m model) helpView() string {
	helpLines := m.helpLines()

	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	startLine := m.helpScroll
	if startLine > m.maxHelpScroll() {
		startLine = m.maxHelpScroll()
	}
	endLine := startLine + visibleHeight
	if endLine > len(helpLines) {
		endLine = len(helpLines)
	}

	result := strings.Join(helpLines[startLine:endLine], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, any other key to close",
		startLine+1, endLine, len(helpLines))
	return result
}
