package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func initialModel(config *Config) model {
	if config == nil {
		config = defaultConfig()
	}
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256

	return model{
		editor:    NewEditor(Options{RecordNoops: config.Editor.RecordNoops}),
		positions: make(map[string]point),
		mode:      ModeNormal,
		keys:      defaultKeyMap(),
		input:     input,
		config:    config,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width / 2
		for id, pos := range m.positions {
			m.positions[id] = m.clampPosition(id, pos)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg)
		}
		switch m.mode {
		case ModeEditing:
			return m.handleEditKey(msg)
		case ModeMove:
			return m.handleMoveModeKey(msg)
		case ModeFileInput:
			return m.handleFileInputKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""
	e := m.editor
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		if m.config.Editor.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help = true
		m.helpScroll = 0
	case key.Matches(msg, k.AddText):
		m.placeItem(e.AddText())
	case key.Matches(msg, k.NextItem):
		m.selectNext()
	case key.Matches(msg, k.Deselect):
		e.ClearSelection()
	case key.Matches(msg, k.Edit):
		return m.startEditing()
	case key.Matches(msg, k.Move):
		if id, ok := e.Selected(); ok {
			pos := m.positions[id]
			m.originalMoveX, m.originalMoveY = pos.X, pos.Y
			m.mode = ModeMove
		}
	case key.Matches(msg, k.Bold):
		e.ToggleBold()
	case key.Matches(msg, k.Italic):
		e.ToggleItalic()
	case key.Matches(msg, k.Underline):
		e.ToggleUnderline()
	case key.Matches(msg, k.AlignLeft):
		e.SetTextAlign(AlignLeft)
	case key.Matches(msg, k.AlignCenter):
		e.SetTextAlign(AlignCenter)
	case key.Matches(msg, k.AlignRight):
		e.SetTextAlign(AlignRight)
	case key.Matches(msg, k.AlignJustify):
		e.SetTextAlign(AlignJustify)
	case key.Matches(msg, k.NextFont), key.Matches(msg, k.PrevFont):
		if item, ok := e.SelectedItem(); ok {
			step := 1
			if key.Matches(msg, k.PrevFont) {
				step = -1
			}
			e.SetFontFamily(nextFontFamily(item.FontFamily, step))
		}
	case key.Matches(msg, k.SizeUp), key.Matches(msg, k.SizeDown):
		if item, ok := e.SelectedItem(); ok {
			step := 1
			if key.Matches(msg, k.SizeDown) {
				step = -1
			}
			e.SetFontSize(nextFontSize(item.FontSize, step))
		}
	case key.Matches(msg, k.Undo):
		e.Undo()
	case key.Matches(msg, k.Redo):
		e.Redo()
	case key.Matches(msg, k.Copy):
		m.copySelected()
	case key.Matches(msg, k.Paste):
		m.pasteAsNewItem()
	case key.Matches(msg, k.ExportPNG):
		cmd := m.startFileInput(FileOpExportPNG)
		return m, cmd
	case key.Matches(msg, k.ExportTXT):
		cmd := m.startFileInput(FileOpExportTXT)
		return m, cmd
	}
	m.prunePositions()
	return m, nil
}

func (m *model) selectNext() {
	items := m.editor.Items()
	if len(items) == 0 {
		return
	}
	current, _ := m.editor.Selected()
	next := 0
	for i, item := range items {
		if item.ID == current {
			next = (i + 1) % len(items)
			break
		}
	}
	m.editor.SetSelected(items[next].ID)
}

func (m model) startEditing() (tea.Model, tea.Cmd) {
	item, ok := m.editor.SelectedItem()
	if !ok {
		return m, nil
	}
	m.mode = ModeEditing
	m.editID = item.ID
	m.input.SetValue(item.Text)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.editor.UpdateText(m.editID, singleLine(m.input.Value()))
		m.stopInput()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.stopInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) stopInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.editID = ""
	m.mode = ModeNormal
}

func (m model) handleMoveModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Cancel):
		if id, ok := m.editor.Selected(); ok {
			m.positions[id] = point{X: m.originalMoveX, Y: m.originalMoveY}
		}
		m.mode = ModeNormal
	default:
		m.handleMoveKey(msg.String())
	}
	return m, nil
}

func (m *model) startFileInput(op FileOperation) tea.Cmd {
	if len(m.editor.Items()) == 0 {
		m.errorMessage = errNothingToExport.Error()
		return nil
	}
	m.mode = ModeFileInput
	m.fileOp = op
	name := "textboard.png"
	if op == FileOpExportTXT {
		name = "textboard.txt"
	}
	m.input.SetValue(name)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.errorMessage = ""
		m.stopInput()
		return m, nil
	case msg.Type == tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.errorMessage = "filename required"
			return m, nil
		}
		name = withExtension(name, m.fileOp)
		path, err := m.config.GetSavePath(name)
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.filename = path
		m.stopInput()
		if _, err := os.Stat(path); err == nil && m.config.Editor.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		m.runExport()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func withExtension(name string, op FileOperation) string {
	ext := ".png"
	if op == FileOpExportTXT {
		ext = ".txt"
	}
	if strings.EqualFold(filepath.Ext(name), ext) {
		return name
	}
	return name + ext
}

func (m *model) runExport() {
	var err error
	switch m.fileOp {
	case FileOpExportPNG:
		err = ExportToPNG(m.editor.Items(), m.positions, m.filename, m.config.Export)
	case FileOpExportTXT:
		err = exportVisualTXT(m.editor.Items(), m.positions, m.filename)
	}
	m.mode = ModeNormal
	if err != nil {
		slog.Error("export failed", "file", m.filename, "err", err)
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = fmt.Sprintf("Exported %s", m.filename)
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ConfirmYes):
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.runExport()
		}
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.ConfirmNo):
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ScrollHelpDown):
		if m.helpScroll < m.maxHelpScroll() {
			m.helpScroll++
		}
	case key.Matches(msg, m.keys.ScrollHelpUp):
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m, nil
}

func (m *model) copySelected() {
	item, ok := m.editor.SelectedItem()
	if !ok {
		return
	}
	if err := writeClipboard(item.Text); err != nil {
		slog.Error("copy failed", "err", err)
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = "Copied to clipboard"
}

func (m *model) pasteAsNewItem() {
	text, err := readClipboardLine()
	if err != nil {
		slog.Error("paste failed", "err", err)
		m.errorMessage = err.Error()
		return
	}
	if text == "" {
		m.errorMessage = "clipboard is empty"
		return
	}
	m.placeItem(m.editor.AddTextWith(text))
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.help || m.mode != ModeNormal {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y == 0 {
			if action, ok := toolbarHit(toolbarButtons(m.editor), msg.X); ok {
				m.runToolbarAction(action)
				m.prunePositions()
			}
			return m, nil
		}
		y := msg.Y - canvasTop
		if y < 0 {
			return m, nil
		}
		boxes := layoutItems(m.editor.Items(), m.positions)
		if id := itemAt(boxes, msg.X, y); id != "" {
			m.editor.SetSelected(id)
			pos := m.positions[id]
			m.dragID = id
			m.dragOffsetX = msg.X - pos.X
			m.dragOffsetY = y - pos.Y
		}
	case tea.MouseActionMotion:
		// Cell-motion mode reports motion only while a button is held.
		if m.dragID == "" {
			return m, nil
		}
		pos := point{X: msg.X - m.dragOffsetX, Y: msg.Y - canvasTop - m.dragOffsetY}
		m.positions[m.dragID] = m.clampPosition(m.dragID, pos)
	case tea.MouseActionRelease:
		m.dragID = ""
	}
	return m, nil
}
