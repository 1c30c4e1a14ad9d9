package ui

import (
	"github.com/atomicstack/grid-menu/internal/logging/events"
	"github.com/atomicstack/grid-menu/internal/menu"
)

const (
	// inventorySize is the user's own storage shown below the menu.
	inventorySize = 36
	// maxStack caps how many items share one slot.
	maxStack = 64
	// outsideSlot is the raw slot reported for clicks outside every grid.
	outsideSlot = -999
)

type surface struct {
	handle menu.Handle
	title  string
	slots  []menu.Content
}

// Host is an in-memory menu.Host for a single terminal user. It keeps every
// surface, the user's inventory and the item held on the cursor, and
// applies the effect of interactions the registry lets through.
type Host struct {
	registry *menu.Registry
	user     menu.User

	next      menu.Handle
	surfaces  map[menu.Handle]*surface
	active    menu.Handle
	inventory []menu.Content
	cursor    menu.Content
	feedback  int
}

// NewHost creates a host for user. Attach must be called before use.
func NewHost(user menu.User) *Host {
	return &Host{
		user:      user,
		surfaces:  make(map[menu.Handle]*surface),
		inventory: make([]menu.Content, inventorySize),
	}
}

// Attach wires the registry that receives this host's events.
func (h *Host) Attach(r *menu.Registry) {
	h.registry = r
}

// CreateSurface implements menu.Host.
func (h *Host) CreateSurface(title string, size int) menu.Handle {
	h.next++
	h.surfaces[h.next] = &surface{handle: h.next, title: title, slots: make([]menu.Content, size)}
	events.Host.Surface(uint64(h.next), title, size)
	return h.next
}

// SetSlotContent implements menu.Host.
func (h *Host) SetSlotContent(handle menu.Handle, slot int, c menu.Content) {
	s, ok := h.surfaces[handle]
	if !ok || slot < 0 || slot >= len(s.slots) {
		return
	}
	s.slots[slot] = c.Clone()
}

// Show implements menu.Host. Showing a surface replaces the one on screen,
// which counts as closing it.
func (h *Host) Show(handle menu.Handle, _ menu.User) {
	if _, ok := h.surfaces[handle]; !ok {
		return
	}
	previous := h.active
	h.active = handle
	if previous != 0 && previous != handle {
		h.discard(previous)
	}
}

// CloseSurface implements menu.Host.
func (h *Host) CloseSurface(handle menu.Handle) {
	if h.active == handle {
		h.active = 0
		h.returnCursor()
	}
	h.discard(handle)
}

// Feedback implements menu.FeedbackHost.
func (h *Host) Feedback(menu.User, int) {
	h.feedback++
}

// Active returns the surface on screen, or 0.
func (h *Host) Active() menu.Handle {
	return h.active
}

// Title returns the title of the surface on screen.
func (h *Host) Title() string {
	if s := h.surfaces[h.active]; s != nil {
		return s.title
	}
	return ""
}

// Size returns the number of slots of the surface on screen.
func (h *Host) Size() int {
	if s := h.surfaces[h.active]; s != nil {
		return len(s.slots)
	}
	return 0
}

// Slot returns the content at a raw slot spanning the surface followed by
// the inventory.
func (h *Host) Slot(raw int) menu.Content {
	if c := h.slotRef(raw); c != nil {
		return *c
	}
	return menu.Nothing
}

// Cursor returns the item held on the cursor.
func (h *Host) Cursor() menu.Content {
	return h.cursor
}

// SetInventory replaces a slot of the user's own storage.
func (h *Host) SetInventory(slot int, c menu.Content) {
	if slot >= 0 && slot < len(h.inventory) {
		h.inventory[slot] = c.Clone()
	}
}

// FeedbackCount reports how many clicks were acknowledged.
func (h *Host) FeedbackCount() int {
	return h.feedback
}

// Region classifies a raw slot of the current view.
func (h *Host) Region(raw int) menu.Region {
	size := h.Size()
	switch {
	case raw >= 0 && raw < size:
		return menu.RegionSession
	case raw >= size && raw < size+inventorySize:
		return menu.RegionOther
	default:
		return menu.RegionNone
	}
}

// Click delivers a click to the registry and applies it unless cancelled.
func (h *Host) Click(raw int, kind menu.ActionKind, shift bool) *menu.ClickEvent {
	if h.active == 0 {
		return nil
	}
	handle := h.active
	ev := &menu.ClickEvent{
		Handle:  handle,
		User:    h.user,
		RawSlot: raw,
		Region:  h.Region(raw),
		Cursor:  h.cursor,
		Action:  kind,
		Shift:   shift,
		Surface: h.snapshot(),
	}
	if ev.Region == menu.RegionNone {
		ev.RawSlot = outsideSlot
	}
	h.registry.DispatchClick(ev)
	events.Host.Click(uint64(handle), ev.RawSlot, kind.String(), shift, ev.Cancelled())
	if !ev.Cancelled() && h.active == handle {
		h.apply(ev)
	}
	return ev
}

// Drag delivers a drag across raw slots and spreads the cursor over them
// unless cancelled.
func (h *Host) Drag(raws []int) *menu.DragEvent {
	if h.active == 0 || len(raws) == 0 {
		return nil
	}
	handle := h.active
	ev := &menu.DragEvent{
		Handle:   handle,
		User:     h.user,
		RawSlots: append([]int(nil), raws...),
		Cursor:   h.cursor,
	}
	h.registry.DispatchDrag(ev)
	events.Host.Drag(uint64(handle), ev.RawSlots, ev.Cancelled())
	if !ev.Cancelled() && h.active == handle {
		h.spread(ev.RawSlots)
	}
	return ev
}

// Shutdown force-closes every session.
func (h *Host) Shutdown() {
	if h.registry != nil {
		h.registry.CloseAll()
	}
	h.active = 0
	h.returnCursor()
}

func (h *Host) discard(handle menu.Handle) {
	if _, ok := h.surfaces[handle]; !ok {
		return
	}
	delete(h.surfaces, handle)
	events.Host.Closed(uint64(handle))
	if h.registry != nil {
		h.registry.NotifyClosed(handle)
	}
}

func (h *Host) snapshot() []menu.Content {
	s := h.surfaces[h.active]
	if s == nil {
		return nil
	}
	out := make([]menu.Content, len(s.slots))
	for i, c := range s.slots {
		out[i] = c.Clone()
	}
	return out
}

func (h *Host) slotRef(raw int) *menu.Content {
	s := h.surfaces[h.active]
	size := 0
	if s != nil {
		size = len(s.slots)
	}
	switch {
	case raw >= 0 && raw < size:
		return &s.slots[raw]
	case raw >= size && raw < size+inventorySize:
		return &h.inventory[raw-size]
	default:
		return nil
	}
}

func (h *Host) apply(ev *menu.ClickEvent) {
	switch ev.Action {
	case menu.ActionSimple:
		if slot := h.slotRef(ev.RawSlot); slot != nil {
			h.takeOrPlace(slot)
		}
	case menu.ActionMoveToOther:
		if slot := h.slotRef(ev.RawSlot); slot != nil {
			h.moveToOther(ev.RawSlot, slot)
		}
	case menu.ActionCollectToCursor:
		h.collect()
	}
}

func (h *Host) takeOrPlace(slot *menu.Content) {
	switch {
	case h.cursor.IsEmpty() && slot.IsEmpty():
	case h.cursor.Similar(*slot):
		room := maxStack - slot.Amount
		moved := min(room, h.cursor.Amount)
		slot.Amount += moved
		h.cursor.Amount -= moved
		if h.cursor.Amount <= 0 {
			h.cursor = menu.Nothing
		}
	default:
		h.cursor, *slot = *slot, h.cursor
	}
}

// moveToOther sends a stack to the first free slot of the opposite region.
func (h *Host) moveToOther(raw int, slot *menu.Content) {
	if slot.IsEmpty() {
		return
	}
	size := h.Size()
	lo, hi := size, size+inventorySize
	if h.Region(raw) == menu.RegionOther {
		lo, hi = 0, size
	}
	for i := lo; i < hi; i++ {
		target := h.slotRef(i)
		if target.IsEmpty() {
			*target = *slot
			*slot = menu.Nothing
			return
		}
	}
}

// collect gathers stacks similar to the cursor, surface first.
func (h *Host) collect() {
	if h.cursor.IsEmpty() {
		return
	}
	total := h.Size() + inventorySize
	for i := 0; i < total && h.cursor.Amount < maxStack; i++ {
		slot := h.slotRef(i)
		if !slot.Similar(h.cursor) {
			continue
		}
		moved := min(maxStack-h.cursor.Amount, slot.Amount)
		h.cursor.Amount += moved
		slot.Amount -= moved
		if slot.Amount <= 0 {
			*slot = menu.Nothing
		}
	}
}

// spread splits the cursor evenly over the dragged slots.
func (h *Host) spread(raws []int) {
	if h.cursor.IsEmpty() {
		return
	}
	targets := make([]*menu.Content, 0, len(raws))
	for _, raw := range raws {
		slot := h.slotRef(raw)
		if slot == nil {
			continue
		}
		if slot.IsEmpty() || slot.Similar(h.cursor) {
			targets = append(targets, slot)
		}
	}
	if len(targets) == 0 {
		return
	}
	share := h.cursor.Amount / len(targets)
	if share == 0 {
		share = 1
	}
	for _, slot := range targets {
		if h.cursor.Amount <= 0 {
			break
		}
		if slot.IsEmpty() {
			*slot = h.cursor.Clone()
			slot.Amount = 0
		}
		moved := min(share, h.cursor.Amount, maxStack-slot.Amount)
		slot.Amount += moved
		h.cursor.Amount -= moved
	}
	if h.cursor.Amount <= 0 {
		h.cursor = menu.Nothing
	}
}

// returnCursor puts the held item back into the inventory.
func (h *Host) returnCursor() {
	if h.cursor.IsEmpty() {
		return
	}
	for i := range h.inventory {
		if h.inventory[i].IsEmpty() {
			h.inventory[i] = h.cursor
			h.cursor = menu.Nothing
			return
		}
	}
}
