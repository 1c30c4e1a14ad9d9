package menu

// Surface receives rendered slot content. Empty content clears the slot.
type Surface interface {
	SetSlotContent(slot int, c Content)
}

// Grid owns the slot to button mapping of one session.
type Grid struct {
	size       int
	explicit   map[int]*Button
	background Background
}

// NewGrid creates a grid of the given size. The background may be nil.
func NewGrid(size int, background Background) *Grid {
	if size < 0 {
		violate("grid", "negative size %d", size)
	}
	return &Grid{
		size:       size,
		explicit:   make(map[int]*Button),
		background: background,
	}
}

// Size returns the number of slots.
func (g *Grid) Size() int {
	return g.size
}

// Contains reports whether slot lies within the grid.
func (g *Grid) Contains(slot int) bool {
	return slot >= 0 && slot < g.size
}

// Place binds button to slot, replacing any previous entry.
func (g *Grid) Place(slot int, button *Button) {
	g.check("place", slot)
	if button == nil {
		violate("place", "nil button at slot %d", slot)
	}
	button.slot = slot
	g.explicit[slot] = button
}

// Remove drops the explicit entry of slot; the next Resolve consults the
// background again.
func (g *Grid) Remove(slot int) {
	g.check("remove", slot)
	delete(g.explicit, slot)
}

// Resolve returns the button occupying slot. Background buttons are pinned
// on first lookup so later resolves return the same instance.
func (g *Grid) Resolve(slot int) *Button {
	g.check("resolve", slot)
	if button, ok := g.explicit[slot]; ok {
		return button
	}
	if g.background == nil {
		return nil
	}
	button := g.background.Lookup(slot)
	if button == nil {
		return nil
	}
	button.slot = slot
	g.explicit[slot] = button
	return button
}

// Bound reports whether slot resolves to a button.
func (g *Grid) Bound(slot int) bool {
	if !g.Contains(slot) {
		return false
	}
	return g.Resolve(slot) != nil
}

// Render writes every slot to the surface.
func (g *Grid) Render(surface Surface) {
	for slot := 0; slot < g.size; slot++ {
		g.RenderSlot(surface, slot)
	}
}

// RenderSlot writes a single slot to the surface.
func (g *Grid) RenderSlot(surface Surface, slot int) {
	if button := g.Resolve(slot); button != nil {
		surface.SetSlotContent(slot, button.Content())
		return
	}
	surface.SetSlotContent(slot, Nothing)
}

func (g *Grid) check(op string, slot int) {
	if !g.Contains(slot) {
		violate(op, "slot %d outside grid of size %d", slot, g.size)
	}
}
