package main

// handleMoveKey shifts the box being moved. Positions are view state and
// never enter history.
func (m *model) handleMoveKey(key string) {
	id, ok := m.editor.Selected()
	if !ok {
		return
	}
	speed := m.getMoveSpeed(key)
	pos := m.positions[id]
	switch key {
	case "h", "left", "H", "shift+left":
		pos.X -= speed
	case "l", "right", "L", "shift+right":
		pos.X += speed
	case "k", "up", "K", "shift+up":
		pos.Y -= speed
	case "j", "down", "J", "shift+down":
		pos.Y += speed
	}
	m.positions[id] = m.clampPosition(id, pos)
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// canvasHeight is the number of rows between the toolbar and status line.
func (m *model) canvasHeight() int {
	h := m.height - canvasTop - 1
	if h < 1 {
		h = 1
	}
	return h
}

// clampPosition keeps a box's top-left corner on the visible canvas.
func (m *model) clampPosition(id string, pos point) point {
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	item, ok := m.editor.Item(id)
	if !ok || m.width <= 0 || m.height <= 0 {
		return pos
	}
	w, h := boxSize(item)
	if maxX := m.width - w; pos.X > maxX && maxX >= 0 {
		pos.X = maxX
	}
	if maxY := m.canvasHeight() - h; pos.Y > maxY && maxY >= 0 {
		pos.Y = maxY
	}
	return pos
}

// placeItem gives a new item a cascading spot so boxes don't stack
// exactly on top of each other.
func (m *model) placeItem(id string) {
	if _, ok := m.positions[id]; ok {
		return
	}
	rows := m.canvasHeight() - boxHeight
	if rows < 1 {
		rows = 1
	}
	steps := rows/cascadeStep + 1
	slot := m.placed % steps
	column := m.placed / steps
	pos := point{X: 2 + slot*cascadeStep + column*(minInnerWidth+6), Y: slot * cascadeStep}
	m.positions[id] = m.clampPosition(id, pos)
	m.placed++
}

// prunePositions drops positions of items that are gone and can no longer
// come back through redo.
func (m *model) prunePositions() {
	for id := range m.positions {
		if !m.editor.Restorable(id) {
			delete(m.positions, id)
		}
	}
}
