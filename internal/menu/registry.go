package menu

import (
	"maps"
	"slices"
	"sync"

	"github.com/atomicstack/grid-menu/internal/logging/events"
)

// Registry maps live surface handles to their open sessions and is the
// dispatch root for host callbacks.
type Registry struct {
	host Host

	mu     sync.Mutex
	active map[Handle]*Session
}

// NewRegistry creates an empty registry that opens surfaces on host.
func NewRegistry(host Host) *Registry {
	if host == nil {
		violate("registry", "nil host")
	}
	return &Registry{host: host, active: make(map[Handle]*Session)}
}

// Open builds and opens a session of m for user.
func (r *Registry) Open(m *Menu, user User) *Session {
	if m == nil {
		violate("open", "nil menu")
	}
	if m.Size <= 0 {
		violate("open", "menu %q has size %d", m.Title, m.Size)
	}
	s := newSession(r, m, user)
	s.open()
	return s
}

// Lookup returns the open session bound to h.
func (r *Registry) Lookup(h Handle) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.active[h]
	return s, ok
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// Sessions returns the open sessions ordered by handle.
func (r *Registry) Sessions() []*Session {
	r.mu.Lock()
	handles := slices.Sorted(maps.Keys(r.active))
	out := make([]*Session, 0, len(handles))
	for _, h := range handles {
		out = append(out, r.active[h])
	}
	r.mu.Unlock()
	return out
}

// DispatchClick forwards a click to the session owning ev.Handle. Clicks
// on unknown surfaces are ignored.
func (r *Registry) DispatchClick(ev *ClickEvent) {
	if ev == nil {
		return
	}
	s, ok := r.Lookup(ev.Handle)
	if !ok {
		events.Registry.UnknownSurface(uint64(ev.Handle), "click")
		return
	}
	s.DispatchClick(ev)
}

// DispatchDrag forwards a drag to the session owning ev.Handle.
func (r *Registry) DispatchDrag(ev *DragEvent) {
	if ev == nil {
		return
	}
	s, ok := r.Lookup(ev.Handle)
	if !ok {
		events.Registry.UnknownSurface(uint64(ev.Handle), "drag")
		return
	}
	s.DispatchDrag(ev)
}

// NotifyClosed is called when the host reports that surface h closed. The
// owning session is removed and closed exactly once; repeated or unknown
// notifications are ignored.
func (r *Registry) NotifyClosed(h Handle) {
	r.mu.Lock()
	s, ok := r.active[h]
	if ok {
		delete(r.active, h)
	}
	r.mu.Unlock()
	if !ok {
		events.Registry.UnknownSurface(uint64(h), "close")
		return
	}
	s.close()
}

// CloseAll force-closes every open session, for example on host shutdown.
// Sessions opened by close hooks along the way are closed too, so the
// registry is empty on return.
func (r *Registry) CloseAll() {
	total := 0
	for {
		closing := r.Sessions()
		if len(closing) == 0 {
			break
		}
		total += len(closing)
		for _, s := range closing {
			s.Close()
			r.release(s)
		}
	}
	events.Registry.CloseAll(total)
}

// RefreshAll re-renders every open session. Dynamic icons pick up their
// current content.
func (r *Registry) RefreshAll() {
	for _, s := range r.Sessions() {
		s.Refresh()
	}
}

// release drops s if it is still registered and closes it. Hosts that
// report closures back have usually removed it already.
func (r *Registry) release(s *Session) {
	r.mu.Lock()
	if r.active[s.handle] == s {
		delete(r.active, s.handle)
	}
	r.mu.Unlock()
	s.close()
}

func (r *Registry) register(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.active[s.handle]; dup {
		violate("open", "surface %d already bound to a session", s.handle)
	}
	r.active[s.handle] = s
}
