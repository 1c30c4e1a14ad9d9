package menu

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/atomicstack/grid-menu/internal/logging"
)

// traceEvents enables tracing into a temp file and returns a reader for the
// event names written so far.
func traceEvents(t *testing.T) func() []string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})
	return func() []string {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read trace: %v", err)
		}
		var names []string
		for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
			var entry struct {
				Event string `json:"event"`
			}
			if err := json.Unmarshal([]byte(line), &entry); err != nil {
				t.Fatalf("decode trace line %q: %v", line, err)
			}
			names = append(names, entry.Event)
		}
		return names
	}
}

func countEvent(names []string, event string) int {
	n := 0
	for _, name := range names {
		if name == event {
			n++
		}
	}
	return n
}

func TestNotifyClosedIsIdempotent(t *testing.T) {
	r, host := newTestRegistry()
	closes := 0
	clicks := 0
	s := r.Open(&Menu{
		Title:   "Once",
		Size:    9,
		OnClose: func(*Session) { closes++ },
		Setup: func(s *Session) {
			s.Place(0, NewButton(NewIcon("diamond")).Do(func(ClickContext) { clicks++ }))
		},
	}, "alex")
	h := s.Handle()
	r.NotifyClosed(h)
	if _, ok := r.Lookup(h); ok {
		t.Fatalf("expected handle removed after close")
	}
	r.NotifyClosed(h)
	if closes != 1 {
		t.Fatalf("expected close hook once, got %d", closes)
	}
	ev := host.click(h, 0, ActionSimple)
	r.DispatchClick(ev)
	r.DispatchDrag(&DragEvent{Handle: h, RawSlots: []int{0}})
	if clicks != 0 || ev.Cancelled() {
		t.Fatalf("expected dispatch after close to be a no-op")
	}
}

func TestUnknownSurfaceIsIgnored(t *testing.T) {
	r, _ := newTestRegistry()
	ev := &ClickEvent{Handle: 404, RawSlot: 0, Region: RegionSession, Action: ActionSimple}
	r.DispatchClick(ev)
	r.DispatchDrag(&DragEvent{Handle: 404, RawSlots: []int{1}})
	r.NotifyClosed(404)
	r.DispatchClick(nil)
	r.DispatchDrag(nil)
	if ev.Cancelled() {
		t.Fatalf("expected events for unknown surfaces untouched")
	}
}

func TestCloseAllClosesEverySession(t *testing.T) {
	r, host := newTestRegistry()
	closes := map[string]int{}
	sessions := make([]*Session, 0, 3)
	for _, title := range []string{"a", "b", "c"} {
		title := title
		sessions = append(sessions, r.Open(&Menu{
			Title:   title,
			Size:    9,
			OnClose: func(*Session) { closes[title]++ },
		}, "alex"))
	}
	if r.Len() != 3 {
		t.Fatalf("expected three open sessions, got %d", r.Len())
	}
	r.CloseAll()
	for _, s := range sessions {
		if s.State() != StateClosed {
			t.Fatalf("expected %q closed, got %s", s.Title(), s.State())
		}
		if closes[s.Title()] != 1 {
			t.Fatalf("expected close hook for %q once, got %d", s.Title(), closes[s.Title()])
		}
		if host.closed[s.Handle()] != 1 {
			t.Fatalf("expected surface %d closed once, got %d", s.Handle(), host.closed[s.Handle()])
		}
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
	r.CloseAll()
	for title, n := range closes {
		if n != 1 {
			t.Fatalf("expected second CloseAll to be a no-op, %q closed %d times", title, n)
		}
	}
}

func TestCloseAllClosesSessionsOpenedByCloseHooks(t *testing.T) {
	r, host := newTestRegistry()
	followUp := &Menu{Title: "Follow-up", Size: 9}
	var opened *Session
	first := r.Open(&Menu{
		Title: "First",
		Size:  9,
		OnClose: func(s *Session) {
			opened = s.OpenOther(followUp)
		},
	}, "alex")
	r.CloseAll()
	if opened == nil {
		t.Fatalf("expected close hook to open the follow-up menu")
	}
	if first.State() != StateClosed || opened.State() != StateClosed {
		t.Fatalf("expected both sessions closed, got %s and %s", first.State(), opened.State())
	}
	if host.closed[opened.Handle()] != 1 {
		t.Fatalf("expected follow-up surface closed once, got %d", host.closed[opened.Handle()])
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry after CloseAll, got %d", r.Len())
	}
}

func TestCloseAllWithoutHostNotificationEmptiesRegistry(t *testing.T) {
	host := newFakeHost()
	r := NewRegistry(host)
	closes := 0
	for i := 0; i < 3; i++ {
		r.Open(&Menu{Title: "Quiet", Size: 9, OnClose: func(*Session) { closes++ }}, "alex")
	}
	r.CloseAll()
	if r.Len() != 0 || closes != 3 {
		t.Fatalf("expected three closes and empty registry, got %d closes and %d open", closes, r.Len())
	}
}

func TestHostReportedClosesAreNotTracedAsUnknown(t *testing.T) {
	trace := traceEvents(t)
	r, _ := newTestRegistry()
	m := &Menu{Title: "Traced", Size: 9}
	r.Open(m, "alex").Close()
	r.Open(m, "alex")
	r.Open(m, "blair")
	r.CloseAll()

	names := trace()
	if n := countEvent(names, "registry.unknown"); n != 0 {
		t.Fatalf("expected no unknown surface traces, got %d in %v", n, names)
	}
	if n := countEvent(names, "session.close"); n != 3 {
		t.Fatalf("expected three session closes, got %d in %v", n, names)
	}
	r.NotifyClosed(404)
	if n := countEvent(trace(), "registry.unknown"); n != 1 {
		t.Fatalf("expected a genuinely unknown handle to be traced once, got %d", n)
	}
}

func TestRegistryDoesNotGrowAcrossCycles(t *testing.T) {
	r, _ := newTestRegistry()
	m := &Menu{Title: "Cycle", Size: 9, Background: Fill(NewIcon("gray_pane"))}
	for i := 0; i < 100; i++ {
		s := r.Open(m, "alex")
		if r.Len() != 1 {
			t.Fatalf("cycle %d: expected one open session, got %d", i, r.Len())
		}
		if i%2 == 0 {
			r.NotifyClosed(s.Handle())
		} else {
			s.Close()
		}
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}

func TestSessionsAreIndependentPerOpen(t *testing.T) {
	r, host := newTestRegistry()
	m := &Menu{
		Title: "Shared",
		Size:  9,
		Setup: func(s *Session) {
			s.Place(0, NewButton(NewIcon(string(s.User()))))
		},
	}
	a := r.Open(m, "alex")
	b := r.Open(m, "blair")
	if a.Handle() == b.Handle() {
		t.Fatalf("expected distinct surfaces")
	}
	if host.snapshot(a.Handle())[0].Kind != "alex" || host.snapshot(b.Handle())[0].Kind != "blair" {
		t.Fatalf("expected per-user setup")
	}
	r.NotifyClosed(a.Handle())
	if b.State() != StateOpen {
		t.Fatalf("expected closing one session to leave the other open")
	}
}

func TestConcurrentCloseNotificationsCloseOnce(t *testing.T) {
	host := newFakeHost()
	r := NewRegistry(host)
	var mu sync.Mutex
	closes := map[Handle]int{}
	handles := make([]Handle, 0, 20)
	for i := 0; i < 20; i++ {
		s := r.Open(&Menu{
			Title: "Concurrent",
			Size:  9,
			OnClose: func(s *Session) {
				mu.Lock()
				closes[s.Handle()]++
				mu.Unlock()
			},
		}, "alex")
		handles = append(handles, s.Handle())
	}

	var wg sync.WaitGroup
	for _, h := range handles {
		wg.Add(2)
		go func(h Handle) {
			defer wg.Done()
			r.NotifyClosed(h)
		}(h)
		go func(h Handle) {
			defer wg.Done()
			r.NotifyClosed(h)
		}(h)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.CloseAll()
	}()
	wg.Wait()

	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
	for _, h := range handles {
		if closes[h] != 1 {
			t.Fatalf("expected handle %d closed once, got %d", h, closes[h])
		}
	}
}

func TestRefreshAllRendersDynamicIcons(t *testing.T) {
	r, host := newTestRegistry()
	tick := 1
	s := r.Open(&Menu{
		Title: "Clock",
		Size:  9,
		Setup: func(s *Session) {
			s.Place(0, NewButton(Dynamic(func() Content {
				return NewIcon("clock").WithAmount(tick).Content()
			})))
		},
	}, "alex")
	tick = 5
	r.RefreshAll()
	if got := host.snapshot(s.Handle())[0].Amount; got != 5 {
		t.Fatalf("expected refreshed clock amount 5, got %d", got)
	}
}

func TestOpenRejectsInvalidMenus(t *testing.T) {
	r, _ := newTestRegistry()
	expectViolation(t, "open", func() { r.Open(nil, "alex") })
	expectViolation(t, "open", func() { r.Open(&Menu{Title: "zero"}, "alex") })
	expectViolation(t, "registry", func() { NewRegistry(nil) })
}
