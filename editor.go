package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Options tune how an Editor records history.
type Options struct {
	// RecordNoops pushes a history entry even when a command finds no
	// valid selection or leaves the item unchanged.
	RecordNoops bool
	// NewID generates item ids. Defaults to time-ordered UUIDv7 strings.
	NewID func() string
}

// Editor holds the text items, the selection and the undo/redo stacks.
// All operations are synchronous and silently ignore invalid input.
type Editor struct {
	items     []TextItem
	selected  string
	undoStack []Action
	redoStack []Action
	opts      Options
}

func NewEditor(opts Options) *Editor {
	if opts.NewID == nil {
		opts.NewID = newItemID
	}
	return &Editor{
		items:     make([]TextItem, 0),
		undoStack: []Action{},
		redoStack: []Action{},
		opts:      opts,
	}
}

func newItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func newTextItem(id string) TextItem {
	return TextItem{
		ID:         id,
		Text:       DefaultText,
		FontSize:   DefaultFontSize,
		TextAlign:  DefaultTextAlign,
		FontFamily: DefaultFontFamily,
	}
}

// AddText appends an item with default attributes and returns its id.
func (e *Editor) AddText() string {
	return e.AddTextWith(DefaultText)
}

// AddTextWith appends a default item carrying text instead of the
// placeholder. It is recorded as a single history entry.
func (e *Editor) AddTextWith(text string) string {
	item := newTextItem(e.opts.NewID())
	item.Text = text
	index := len(e.items)
	e.items = append(e.items, item)
	e.recordAction(ActionAddText, AddTextData{Index: index, Item: item}, RemoveTextData{ID: item.ID})
	return item.ID
}

// SetSelected points the selection at id. An empty id clears it.
// Selection is not part of history.
func (e *Editor) SetSelected(id string) {
	e.selected = id
}

func (e *Editor) ClearSelection() {
	e.selected = ""
}

// Selected returns the selected id only if it still names an item.
func (e *Editor) Selected() (string, bool) {
	if e.indexOf(e.selected) < 0 {
		return "", false
	}
	return e.selected, true
}

func (e *Editor) HasSelection() bool {
	_, ok := e.Selected()
	return ok
}

func (e *Editor) SelectedItem() (TextItem, bool) {
	idx := e.indexOf(e.selected)
	if idx < 0 {
		return TextItem{}, false
	}
	return e.items[idx], true
}

func (e *Editor) Item(id string) (TextItem, bool) {
	idx := e.indexOf(id)
	if idx < 0 {
		return TextItem{}, false
	}
	return e.items[idx], true
}

// Items returns a copy of the items in creation order.
func (e *Editor) Items() []TextItem {
	out := make([]TextItem, len(e.items))
	copy(out, e.items)
	return out
}

func (e *Editor) State() State {
	return State{Items: e.Items(), Selected: e.selected}
}

func (e *Editor) CanUndo() bool { return len(e.undoStack) > 0 }

func (e *Editor) CanRedo() bool { return len(e.redoStack) > 0 }

// UpdateText replaces the text of the item with the given id.
func (e *Editor) UpdateText(id, text string) {
	e.updateItem(ActionEditText, e.indexOf(id), func(t *TextItem) {
		t.Text = text
	})
}

// SetFontSize sets the selected item's size in px. Non-positive sizes
// are ignored.
func (e *Editor) SetFontSize(size int) {
	if size <= 0 {
		e.recordNoop(ActionFontSize)
		return
	}
	e.updateSelected(ActionFontSize, func(t *TextItem) {
		t.FontSize = size
	})
}

// SetFontSizeText parses size as a decimal integer, so "24" becomes 24.
func (e *Editor) SetFontSizeText(size string) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(size), "px"))
	if err != nil {
		slog.Debug("ignoring font size", "value", size, "err", err)
		e.recordNoop(ActionFontSize)
		return
	}
	e.SetFontSize(n)
}

func (e *Editor) ToggleBold() {
	e.updateSelected(ActionBold, func(t *TextItem) { t.Bold = !t.Bold })
}

func (e *Editor) ToggleItalic() {
	e.updateSelected(ActionItalic, func(t *TextItem) { t.Italic = !t.Italic })
}

func (e *Editor) ToggleUnderline() {
	e.updateSelected(ActionUnderline, func(t *TextItem) { t.Underline = !t.Underline })
}

func (e *Editor) SetTextAlign(align TextAlign) {
	if !align.Valid() {
		e.recordNoop(ActionTextAlign)
		return
	}
	e.updateSelected(ActionTextAlign, func(t *TextItem) { t.TextAlign = align })
}

func (e *Editor) SetFontFamily(family string) {
	if !isFontFamily(family) {
		e.recordNoop(ActionFontFamily)
		return
	}
	e.updateSelected(ActionFontFamily, func(t *TextItem) { t.FontFamily = family })
}

func (e *Editor) updateSelected(actionType ActionType, mutate func(*TextItem)) {
	e.updateItem(actionType, e.indexOf(e.selected), mutate)
}

func (e *Editor) updateItem(actionType ActionType, idx int, mutate func(*TextItem)) {
	if idx < 0 {
		e.recordNoop(actionType)
		return
	}
	before := e.items[idx]
	after := before
	mutate(&after)
	if after == before {
		e.recordNoop(actionType)
		return
	}
	e.items[idx] = after
	e.recordAction(actionType, ItemState{Item: after}, ItemState{Item: before})
}

func (e *Editor) recordAction(actionType ActionType, data, inverse interface{}) {
	action := Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	}
	e.undoStack = append(e.undoStack, action)
	e.redoStack = e.redoStack[:0]
	slog.Debug("recorded action", "type", actionType, "undo", len(e.undoStack))
}

func (e *Editor) recordNoop(actionType ActionType) {
	if !e.opts.RecordNoops {
		return
	}
	e.recordAction(actionType, nil, nil)
}

func (e *Editor) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range e.items {
		if e.items[i].ID == id {
			return i
		}
	}
	return -1
}
