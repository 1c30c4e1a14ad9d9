package menu

import (
	"sync/atomic"

	"github.com/atomicstack/grid-menu/internal/logging/events"
)

// State is the lifecycle state of a session.
type State int32

const (
	StatePending State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "pending"
	}
}

// Session is one open instance of a Menu for one user.
type Session struct {
	menu      *Menu
	registry  *Registry
	host      Host
	user      User
	grid      *Grid
	validator Validator
	handle    Handle
	state     atomic.Int32
}

func newSession(r *Registry, m *Menu, user User) *Session {
	return &Session{
		menu:      m,
		registry:  r,
		host:      r.host,
		user:      user,
		grid:      NewGrid(m.Size, m.Background),
		validator: m.validator(),
	}
}

// Handle returns the surface handle the session is bound to.
func (s *Session) Handle() Handle {
	return s.handle
}

// User returns the viewer of the session.
func (s *Session) User() User {
	return s.user
}

// Title returns the menu title.
func (s *Session) Title() string {
	return s.menu.Title
}

// Size returns the number of slots of the session surface.
func (s *Session) Size() int {
	return s.grid.Size()
}

// Grid exposes the session's button model.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Menu returns the definition the session was opened from.
func (s *Session) Menu() *Menu {
	return s.menu
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Place binds a button to a slot without touching the surface. Call Refresh
// afterwards when the session is already open.
func (s *Session) Place(slot int, button *Button) {
	s.grid.Place(slot, button)
}

// Replace binds a button to a slot and re-renders that slot.
func (s *Session) Replace(slot int, button *Button) {
	s.grid.Place(slot, button)
	s.Refresh(slot)
}

// Resolve returns the button occupying slot.
func (s *Session) Resolve(slot int) *Button {
	return s.grid.Resolve(slot)
}

// Refresh re-renders the given slots, or every slot when none are given.
// It does nothing unless the session is open.
func (s *Session) Refresh(slots ...int) {
	if s.State() != StateOpen {
		return
	}
	w := surfaceWriter{host: s.host, handle: s.handle}
	if len(slots) == 0 {
		s.grid.Render(w)
		return
	}
	for _, slot := range slots {
		s.grid.RenderSlot(w, slot)
	}
}

// OpenOther opens another menu for the same user.
func (s *Session) OpenOther(m *Menu) *Session {
	return s.registry.Open(m, s.user)
}

// Close takes the surface off screen and removes the session from its
// registry. Closing an already closed session does nothing.
func (s *Session) Close() {
	if s.State() != StateOpen {
		return
	}
	s.host.CloseSurface(s.handle)
	s.registry.release(s)
}

// DispatchClick routes a raw click to the session. Clicks arriving after
// close are ignored.
func (s *Session) DispatchClick(ev *ClickEvent) {
	if ev == nil || s.State() != StateOpen {
		return
	}
	switch verdict := s.validator.Classify(*ev, s.grid.Bound); verdict {
	case Illegal, Consumed:
		ev.Cancel()
		events.Click.Rejected(uint64(s.handle), ev.RawSlot, ev.Action.String(), verdict.String())
		return
	}
	if !s.grid.Contains(ev.RawSlot) {
		return
	}
	button := s.grid.Resolve(ev.RawSlot)
	if button == nil {
		return
	}
	if !button.Movable {
		ev.Cancel()
	}
	user := ev.User
	if user == "" {
		user = s.user
	}
	if !button.Silent {
		if fh, ok := s.host.(FeedbackHost); ok {
			fh.Feedback(user, ev.RawSlot)
		}
	}
	events.Click.Dispatch(uint64(s.handle), ev.RawSlot, ev.Action.String())
	button.invoke(ClickContext{User: user, Session: s, Slot: ev.RawSlot, Event: ev})
}

// DispatchDrag routes a raw drag to the session.
func (s *Session) DispatchDrag(ev *DragEvent) {
	if ev == nil || s.State() != StateOpen {
		return
	}
	if s.validator.AllowDrag(*ev, s.grid.Size()) {
		return
	}
	ev.Cancel()
	events.Drag.Cancel(uint64(s.handle), ev.RawSlots)
}

func (s *Session) open() {
	if s.State() != StatePending {
		violate("open", "session for %q is %s", s.menu.Title, s.State())
	}
	if s.menu.Setup != nil {
		s.menu.Setup(s)
	}
	s.handle = s.host.CreateSurface(s.menu.Title, s.grid.Size())
	s.grid.Render(surfaceWriter{host: s.host, handle: s.handle})
	if !s.state.CompareAndSwap(int32(StatePending), int32(StateOpen)) {
		violate("open", "session for %q opened concurrently", s.menu.Title)
	}
	s.registry.register(s)
	events.Session.Open(uint64(s.handle), s.menu.Title, string(s.user), s.grid.Size())
	if s.menu.OnOpen != nil {
		s.menu.OnOpen(s)
	}
	if s.State() == StateOpen {
		s.host.Show(s.handle, s.user)
	}
}

// close transitions to Closed exactly once and runs the close hook. Only
// the registry calls it, after removing the session.
func (s *Session) close() {
	if !s.state.CompareAndSwap(int32(StateOpen), int32(StateClosed)) {
		return
	}
	events.Session.Close(uint64(s.handle), s.menu.Title)
	if s.menu.OnClose != nil {
		s.menu.OnClose(s)
	}
}
