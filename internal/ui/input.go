package ui

import (
	"fmt"
	"slices"
	"time"

	"github.com/atomicstack/grid-menu/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// collectWindow is how quickly a second click on the same slot turns into a
// collect.
const collectWindow = 400 * time.Millisecond

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Click   key.Binding
	Shift   key.Binding
	Collect key.Binding
	Mark    key.Binding
	Drag    key.Binding
	Refresh key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Click:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "click")),
		Shift:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shift-click")),
		Collect: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collect")),
		Mark:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "mark drag")),
		Drag:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish drag")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Close:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Shift, k.Collect, k.Mark, k.Drag, k.Close}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Click, k.Shift, k.Collect},
		{k.Mark, k.Drag, k.Refresh},
		{k.Close, k.Quit},
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.errMsg = ""
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		m.shutdown()
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Close):
		if s := m.activeSession(); s != nil {
			s.Close()
		}
	case key.Matches(keyMsg, m.keys.Up):
		m.moveSelection(-menu.Columns)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveSelection(menu.Columns)
	case key.Matches(keyMsg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(keyMsg, m.keys.Click):
		m.click(m.selected, menu.ActionSimple, false)
	case key.Matches(keyMsg, m.keys.Shift):
		m.click(m.selected, menu.ActionMoveToOther, true)
	case key.Matches(keyMsg, m.keys.Collect):
		m.click(m.selected, menu.ActionCollectToCursor, false)
	case key.Matches(keyMsg, m.keys.Mark):
		m.toggleMark(m.selected)
	case key.Matches(keyMsg, m.keys.Drag):
		m.finishDrag(m.marked)
		m.marked = nil
	case key.Matches(keyMsg, m.keys.Refresh):
		m.registry.RefreshAll()
		m.setInfo("refreshed")
	}
	return nil
}

// handleMouseMsg maps terminal mouse input onto clicks and drags. A press
// and release on one slot is a click, a second click on that slot within
// collectWindow is a collect, and a press dragged across slots is a drag.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || (ev.Button != tea.MouseButtonLeft && ev.Action != tea.MouseActionRelease) {
		return nil
	}
	slot := m.slotAt(ev.X, ev.Y)
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Shift {
			m.click(slot, menu.ActionMoveToOther, true)
			return nil
		}
		m.pressing = true
		m.pressSlot = slot
		m.dragSlots = []int{slot}
	case tea.MouseActionMotion:
		if m.pressing && slot != outsideSlot && !slices.Contains(m.dragSlots, slot) {
			m.dragSlots = append(m.dragSlots, slot)
		}
	case tea.MouseActionRelease:
		if !m.pressing {
			return nil
		}
		m.pressing = false
		if len(m.dragSlots) > 1 {
			m.finishDrag(m.dragSlots)
			m.dragSlots = nil
			return nil
		}
		m.dragSlots = nil
		now := m.now()
		kind := menu.ActionSimple
		if m.pressSlot == m.lastClick && now.Sub(m.lastClickAt) < collectWindow {
			kind = menu.ActionCollectToCursor
			m.lastClick = outsideSlot
		} else {
			m.lastClick = m.pressSlot
			m.lastClickAt = now
		}
		m.selected = m.pressSlot
		m.click(m.pressSlot, kind, false)
	}
	return nil
}

func (m *Model) click(slot int, kind menu.ActionKind, shift bool) {
	ev := m.host.Click(slot, kind, shift)
	if ev == nil || !ev.Cancelled() {
		return
	}
	// plain clicks on menu buttons are cancelled as a matter of course
	if ev.Region != menu.RegionSession || kind != menu.ActionSimple {
		m.errMsg = fmt.Sprintf("%s on slot %d blocked", kind, slot)
	}
}

func (m *Model) finishDrag(slots []int) {
	if len(slots) == 0 {
		m.setInfo("no slots marked")
		return
	}
	ev := m.host.Drag(slots)
	if ev != nil && ev.Cancelled() {
		m.errMsg = "drag into the menu blocked"
	}
}

func (m *Model) toggleMark(slot int) {
	if i := slices.Index(m.marked, slot); i >= 0 {
		m.marked = slices.Delete(m.marked, i, i+1)
		return
	}
	m.marked = append(m.marked, slot)
}

func (m *Model) moveSelection(delta int) {
	next := m.selected + delta
	if next < 0 || next >= m.slotCount() {
		return
	}
	m.selected = next
}

func (m *Model) clampSelection() {
	if total := m.slotCount(); m.selected >= total {
		m.selected = total - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.marked = slices.DeleteFunc(m.marked, func(slot int) bool { return slot >= m.slotCount() })
}

func (m *Model) slotCount() int {
	return m.host.Size() + inventorySize
}

func (m *Model) activeSession() *menu.Session {
	s, ok := m.registry.Lookup(m.host.Active())
	if !ok {
		return nil
	}
	return s
}
