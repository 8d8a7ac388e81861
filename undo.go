package main

import "log/slog"

// Undo reverts the newest undo entry and moves it onto the redo stack.
// It reports whether there was anything to undo.
func (e *Editor) Undo() bool {
	if len(e.undoStack) == 0 {
		return false
	}

	lastIndex := len(e.undoStack) - 1
	action := e.undoStack[lastIndex]
	e.undoStack = e.undoStack[:lastIndex]

	e.apply(action.Inverse)

	e.redoStack = append(e.redoStack, action)
	slog.Debug("undo", "type", action.Type, "undo", len(e.undoStack), "redo", len(e.redoStack))
	return true
}

// Redo re-applies the newest redo entry, the one most recently undone.
func (e *Editor) Redo() bool {
	if len(e.redoStack) == 0 {
		return false
	}

	lastIndex := len(e.redoStack) - 1
	action := e.redoStack[lastIndex]
	e.redoStack = e.redoStack[:lastIndex]

	e.apply(action.Data)

	e.undoStack = append(e.undoStack, action)
	slog.Debug("redo", "type", action.Type, "undo", len(e.undoStack), "redo", len(e.redoStack))
	return true
}

func (e *Editor) apply(change interface{}) {
	switch data := change.(type) {
	case AddTextData:
		idx := data.Index
		if idx < 0 || idx > len(e.items) {
			idx = len(e.items)
		}
		e.items = append(e.items, TextItem{})
		copy(e.items[idx+1:], e.items[idx:])
		e.items[idx] = data.Item
	case RemoveTextData:
		if idx := e.indexOf(data.ID); idx >= 0 {
			e.items = append(e.items[:idx], e.items[idx+1:]...)
		}
	case ItemState:
		if idx := e.indexOf(data.Item.ID); idx >= 0 {
			e.items[idx] = data.Item
		}
	case nil:
	}
}

// Restorable reports whether id names an item now or one that a redo
// would add back.
func (e *Editor) Restorable(id string) bool {
	if e.indexOf(id) >= 0 {
		return true
	}
	for _, action := range e.redoStack {
		if data, ok := action.Data.(AddTextData); ok && data.Item.ID == id {
			return true
		}
	}
	return false
}
