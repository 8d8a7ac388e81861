package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRedo_ExampleScenario(t *testing.T) {
	e := newTestEditor(Options{})

	e.AddText()
	items := e.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "New Text", items[0].Text)
	assert.Equal(t, 16, items[0].FontSize)

	id := items[0].ID
	e.SetSelected(id)
	e.ToggleBold()
	item, _ := e.Item(id)
	assert.True(t, item.Bold)

	require.True(t, e.Undo())
	item, _ = e.Item(id)
	assert.False(t, item.Bold)

	require.True(t, e.Redo())
	item, _ = e.Item(id)
	assert.True(t, item.Bold)
}

func TestUndo_RestoresExactPriorStateAfterEachOperation(t *testing.T) {
	e := newTestEditor(Options{})
	var first string

	ops := []struct {
		name string
		run  func()
	}{
		{"add", func() { first = e.AddText() }},
		{"select", func() { e.SetSelected(first) }},
		{"edit", func() { e.UpdateText(first, "Hello") }},
		{"size", func() { e.SetFontSizeText("48") }},
		{"bold", func() { e.ToggleBold() }},
		{"italic", func() { e.ToggleItalic() }},
		{"underline", func() { e.ToggleUnderline() }},
		{"align", func() { e.SetTextAlign(AlignJustify) }},
		{"font", func() { e.SetFontFamily("Times New Roman") }},
		{"add second", func() { e.AddText() }},
	}

	for _, op := range ops {
		before := e.Items()
		op.run()
		after := e.Items()
		if op.name == "select" {
			continue
		}
		require.NotEqual(t, before, after, op.name)

		require.True(t, e.Undo(), op.name)
		assert.Equal(t, before, e.Items(), "undo after %s", op.name)

		require.True(t, e.Redo(), op.name)
		assert.Equal(t, after, e.Items(), "redo after %s", op.name)
	}
}

func TestRedo_IsLIFOAfterSeveralUndos(t *testing.T) {
	e := newTestEditor(Options{})
	id := e.AddText()
	e.SetSelected(id)

	s0 := e.Items()
	e.ToggleBold()
	s1 := e.Items()
	e.ToggleItalic()
	s2 := e.Items()
	e.ToggleUnderline()
	s3 := e.Items()

	require.True(t, e.Undo())
	require.True(t, e.Undo())
	require.True(t, e.Undo())
	assert.Equal(t, s0, e.Items())

	// Redo replays the most recently undone change first.
	require.True(t, e.Redo())
	assert.Equal(t, s1, e.Items())
	require.True(t, e.Redo())
	assert.Equal(t, s2, e.Items())
	require.True(t, e.Redo())
	assert.Equal(t, s3, e.Items())
	assert.False(t, e.Redo())
}

func TestUndoThenRedo_ReturnsToStateBeforeUndo(t *testing.T) {
	e := newTestEditor(Options{})
	id := e.AddText()
	e.SetSelected(id)
	e.ToggleBold()
	e.SetFontSize(60)
	e.UpdateText(id, "deep")

	for depth := 1; depth <= 4; depth++ {
		before := e.Items()
		for i := 0; i < depth; i++ {
			require.True(t, e.Undo())
		}
		for i := 0; i < depth; i++ {
			require.True(t, e.Redo())
		}
		assert.Equal(t, before, e.Items(), "depth %d", depth)
	}
}

func TestUndoRedo_EmptyStacksAreNoops(t *testing.T) {
	e := newTestEditor(Options{})
	assert.False(t, e.Undo())
	assert.False(t, e.Redo())
	assert.Empty(t, e.Items())

	e.AddText()
	before := e.State()
	assert.False(t, e.Redo())
	assert.Equal(t, before, e.State())
	assert.Len(t, e.undoStack, 1)
	assert.Empty(t, e.redoStack)

	require.True(t, e.Undo())
	assert.False(t, e.Undo())
	assert.Empty(t, e.Items())
	assert.Empty(t, e.undoStack)
	assert.Len(t, e.redoStack, 1)
}

func TestMutation_ClearsRedoStack(t *testing.T) {
	e := newTestEditor(Options{})
	id := e.AddText()
	e.SetSelected(id)
	e.ToggleBold()
	e.Undo()
	require.True(t, e.CanRedo())

	e.ToggleItalic()
	assert.False(t, e.CanRedo())

	item, _ := e.Item(id)
	assert.False(t, item.Bold)
	assert.True(t, item.Italic)
}

func TestUndoAdd_RestoresItemAtOriginalIndex(t *testing.T) {
	e := newTestEditor(Options{})
	a := e.AddText()
	b := e.AddText()
	c := e.AddText()

	e.Undo()
	e.Undo()
	assert.Equal(t, []string{a}, itemIDs(e.Items()))

	e.Redo()
	e.Redo()
	assert.Equal(t, []string{a, b, c}, itemIDs(e.Items()))
}

func TestUndo_DoesNotTouchSelection(t *testing.T) {
	e := newTestEditor(Options{})
	a := e.AddText()
	b := e.AddText()
	e.SetSelected(a)
	e.ToggleBold()
	e.SetSelected(b)

	e.Undo()
	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, b, selected)
	item, _ := e.Item(a)
	assert.False(t, item.Bold)
}

func itemIDs(items []TextItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestRestorable_FollowsRedoStack(t *testing.T) {
	e := newTestEditor(Options{})
	a := e.AddText()
	b := e.AddText()
	assert.True(t, e.Restorable(b))

	e.Undo()
	assert.True(t, e.Restorable(b), "redo can still add it back")

	e.AddText()
	assert.False(t, e.Restorable(b))
	assert.True(t, e.Restorable(a))
	assert.False(t, e.Restorable(""))
}
