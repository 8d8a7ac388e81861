package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	AddText        key.Binding
	NextItem       key.Binding
	Deselect       key.Binding
	Edit           key.Binding
	Move           key.Binding
	Bold           key.Binding
	Italic         key.Binding
	Underline      key.Binding
	AlignLeft      key.Binding
	AlignCenter    key.Binding
	AlignRight     key.Binding
	AlignJustify   key.Binding
	NextFont       key.Binding
	PrevFont       key.Binding
	SizeUp         key.Binding
	SizeDown       key.Binding
	Undo           key.Binding
	Redo           key.Binding
	Copy           key.Binding
	Paste          key.Binding
	ExportPNG      key.Binding
	ExportTXT      key.Binding
	Help           key.Binding
	Quit           key.Binding
	Confirm        key.Binding
	Cancel         key.Binding
	ConfirmYes     key.Binding
	ConfirmNo      key.Binding
	ScrollHelpUp   key.Binding
	ScrollHelpDown key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		AddText:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add text")),
		NextItem:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "select next item")),
		Deselect:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Edit:         key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e/enter", "edit selected text")),
		Move:         key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move selected box")),
		Bold:         key.NewBinding(key.WithKeys("b", "ctrl+b"), key.WithHelp("b", "toggle bold")),
		Italic:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "toggle italic")),
		Underline:    key.NewBinding(key.WithKeys("_"), key.WithHelp("_", "toggle underline")),
		AlignLeft:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "align left")),
		AlignCenter:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "align center")),
		AlignRight:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "align right")),
		AlignJustify: key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "justify")),
		NextFont:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next font")),
		PrevFont:     key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "previous font")),
		SizeUp:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "larger size")),
		SizeDown:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller size")),
		Undo:         key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:         key.NewBinding(key.WithKeys("U", "ctrl+y"), key.WithHelp("U", "redo")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy text to clipboard")),
		Paste:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste clipboard as new text")),
		ExportPNG:    key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "export PNG")),
		ExportTXT:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "export TXT")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Confirm:        key.NewBinding(key.WithKeys("enter", "ctrl+s")),
		Cancel:         key.NewBinding(key.WithKeys("esc")),
		ConfirmYes:     key.NewBinding(key.WithKeys("y", "Y")),
		ConfirmNo:      key.NewBinding(key.WithKeys("n", "N", "esc")),
		ScrollHelpUp:   key.NewBinding(key.WithKeys("k", "up")),
		ScrollHelpDown: key.NewBinding(key.WithKeys("j", "down")),
	}
}

// helpBindings lists the bindings shown on the help screen, grouped.
func (k keyMap) helpBindings() [][]key.Binding {
	return [][]key.Binding{
		{k.AddText, k.NextItem, k.Deselect, k.Edit, k.Move},
		{k.Bold, k.Italic, k.Underline, k.AlignLeft, k.AlignCenter, k.AlignRight, k.AlignJustify},
		{k.NextFont, k.PrevFont, k.SizeUp, k.SizeDown},
		{k.Undo, k.Redo, k.Copy, k.Paste},
		{k.ExportPNG, k.ExportTXT, k.Help, k.Quit},
	}
}
