package main

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// TextItem is one styleable text element on the canvas.
type TextItem struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	FontSize   int       `json:"fontSize"`
	Bold       bool      `json:"bold"`
	Italic     bool      `json:"italic"`
	Underline  bool      `json:"underline"`
	TextAlign  TextAlign `json:"textAlign"`
	FontFamily string    `json:"fontFamily"`
}

// State is a copy of everything the editor holds apart from history.
type State struct {
	Items    []TextItem `json:"items"`
	Selected string     `json:"selectedId,omitempty"`
}

type model struct {
	width          int
	height         int
	editor         *Editor
	positions      map[string]point
	placed         int
	mode           Mode
	help           bool
	helpScroll     int
	keys           keyMap
	input          textinput.Model
	editID         string
	dragID         string
	dragOffsetX    int
	dragOffsetY    int
	originalMoveX  int
	originalMoveY  int
	filename       string
	fileOp         FileOperation
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
	config         *Config
}

type point struct {
	X, Y int
}

// Action is one undoable step. Data re-applies it, Inverse reverts it.
// Both are nil for an entry that changed nothing.
type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type AddTextData struct {
	Index int
	Item  TextItem
}

type RemoveTextData struct {
	ID string
}

// ItemState replaces the item with the same ID wholesale.
type ItemState struct {
	Item TextItem
}
