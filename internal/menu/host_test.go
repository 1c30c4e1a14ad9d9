package menu

import "sync"

// fakeHost keeps surfaces in memory and optionally reports closures back to
// the registry the way a real host would.
type fakeHost struct {
	mu       sync.Mutex
	next     Handle
	titles   map[Handle]string
	slots    map[Handle][]Content
	shown    map[Handle]User
	closed   map[Handle]int
	writes   int
	feedback []int
	registry *Registry
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		titles: make(map[Handle]string),
		slots:  make(map[Handle][]Content),
		shown:  make(map[Handle]User),
		closed: make(map[Handle]int),
	}
}

func (h *fakeHost) CreateSurface(title string, size int) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.titles[h.next] = title
	h.slots[h.next] = make([]Content, size)
	return h.next
}

func (h *fakeHost) SetSlotContent(handle Handle, slot int, c Content) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writes++
	h.slots[handle][slot] = c
}

func (h *fakeHost) Show(handle Handle, user User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shown[handle] = user
}

func (h *fakeHost) CloseSurface(handle Handle) {
	h.mu.Lock()
	h.closed[handle]++
	delete(h.shown, handle)
	r := h.registry
	h.mu.Unlock()
	if r != nil {
		r.NotifyClosed(handle)
	}
}

func (h *fakeHost) Feedback(_ User, slot int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.feedback = append(h.feedback, slot)
}

func (h *fakeHost) snapshot(handle Handle) []Content {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Content, len(h.slots[handle]))
	for i, c := range h.slots[handle] {
		out[i] = c.Clone()
	}
	return out
}

// click builds a session-region click carrying the current surface snapshot.
func (h *fakeHost) click(handle Handle, slot int, action ActionKind) *ClickEvent {
	return &ClickEvent{
		Handle:  handle,
		User:    "alex",
		RawSlot: slot,
		Region:  RegionSession,
		Action:  action,
		Surface: h.snapshot(handle),
	}
}

// recordingSurface is a Surface used by grid tests.
type recordingSurface struct {
	slots []Content
}

func newRecordingSurface(size int) *recordingSurface {
	return &recordingSurface{slots: make([]Content, size)}
}

func (s *recordingSurface) SetSlotContent(slot int, c Content) {
	s.slots[slot] = c
}
