package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonFor(buttons []toolbarButton, action toolbarAction) toolbarButton {
	for _, b := range buttons {
		if b.action == action {
			return b
		}
	}
	return toolbarButton{}
}

func TestToolbarButtons_Enablement(t *testing.T) {
	e := newTestEditor(Options{})

	buttons := toolbarButtons(e)
	assert.False(t, buttonFor(buttons, toolUndo).enabled)
	assert.False(t, buttonFor(buttons, toolRedo).enabled)
	for _, action := range []toolbarAction{toolFont, toolSize, toolBold, toolItalic, toolCenter, toolUnderline} {
		assert.False(t, buttonFor(buttons, action).enabled, "action %d needs a selection", action)
	}
	assert.True(t, buttonFor(buttons, toolAddText).enabled)

	id := e.AddText()
	e.SetSelected(id)
	buttons = toolbarButtons(e)
	assert.True(t, buttonFor(buttons, toolUndo).enabled)
	assert.False(t, buttonFor(buttons, toolRedo).enabled)
	for _, action := range []toolbarAction{toolFont, toolSize, toolBold, toolItalic, toolCenter, toolUnderline} {
		assert.True(t, buttonFor(buttons, action).enabled)
	}
	assert.Equal(t, "Arial ▾", buttonFor(buttons, toolFont).label)
	assert.Equal(t, "16px ▾", buttonFor(buttons, toolSize).label)

	e.Undo()
	buttons = toolbarButtons(e)
	assert.False(t, buttonFor(buttons, toolUndo).enabled)
	assert.True(t, buttonFor(buttons, toolRedo).enabled)
	assert.False(t, buttonFor(buttons, toolBold).enabled, "dangling selection counts as none")
}

func TestToolbarButtons_ActiveState(t *testing.T) {
	e := newTestEditor(Options{})
	e.SetSelected(e.AddText())
	e.ToggleBold()
	e.SetTextAlign(AlignCenter)

	buttons := toolbarButtons(e)
	assert.True(t, buttonFor(buttons, toolBold).active)
	assert.True(t, buttonFor(buttons, toolCenter).active)
	assert.False(t, buttonFor(buttons, toolItalic).active)
}

func TestToolbarHit(t *testing.T) {
	e := newTestEditor(Options{})
	buttons := toolbarButtons(e)

	add := buttonFor(buttons, toolAddText)
	action, ok := toolbarHit(buttons, add.x0)
	require.True(t, ok)
	assert.Equal(t, toolAddText, action)

	bold := buttonFor(buttons, toolBold)
	_, ok = toolbarHit(buttons, bold.x0+1)
	assert.False(t, ok, "disabled buttons don't respond")

	_, ok = toolbarHit(buttons, add.x1+10)
	assert.False(t, ok)
}

func TestRunToolbarAction_StepsFontAndSize(t *testing.T) {
	m := initialModel(defaultConfig())
	m.editor = newTestEditor(Options{})
	m.runToolbarAction(toolAddText)
	id := m.editor.Items()[0].ID
	m.editor.SetSelected(id)

	m.runToolbarAction(toolFont)
	m.runToolbarAction(toolSize)
	m.runToolbarAction(toolSize)
	item, _ := m.editor.Item(id)
	assert.Equal(t, "Courier New", item.FontFamily)
	assert.Equal(t, 20, item.FontSize)
	assert.Contains(t, m.positions, id)
}

func TestNextFontSizeAndFamily(t *testing.T) {
	assert.Equal(t, 18, nextFontSize(16, 1))
	assert.Equal(t, 16, nextFontSize(99, 1))
	assert.Equal(t, 99, nextFontSize(16, -1))
	assert.Equal(t, 24, nextFontSize(22, 1))
	assert.Equal(t, 20, nextFontSize(22, -1))

	assert.Equal(t, "Courier New", nextFontFamily("Arial", 1))
	assert.Equal(t, "Verdana", nextFontFamily("Arial", -1))
	assert.Equal(t, "Arial", nextFontFamily("Verdana", 1))
	assert.Equal(t, "Arial", nextFontFamily("unknown", 1))
}
