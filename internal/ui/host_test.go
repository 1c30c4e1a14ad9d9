package ui

import (
	"testing"

	"github.com/atomicstack/grid-menu/internal/menu"
)

func TestHostMoveToOtherSendsStackToInventory(t *testing.T) {
	h, _ := newTestModel(t, "shop", false)
	host := h.Model().Host()
	ev := host.Click(11, menu.ActionMoveToOther, false)
	if ev.Cancelled() {
		t.Fatalf("expected movable button to let the move through")
	}
	if !host.Slot(11).IsEmpty() {
		t.Fatalf("expected slot 11 emptied, got %+v", host.Slot(11))
	}
	if c := host.Slot(36); c.Kind != "apple" || c.Amount != 3 {
		t.Fatalf("expected apples in the inventory, got %+v", c)
	}
}

func TestHostMergesStacksUpToLimit(t *testing.T) {
	h, _ := newTestModel(t, "main", false)
	host := h.Model().Host()
	host.SetInventory(0, menu.Content{Kind: "stone", Amount: 60})
	host.SetInventory(1, menu.Content{Kind: "stone", Amount: 10})
	host.Click(27, menu.ActionSimple, false)
	host.Click(28, menu.ActionSimple, false)
	if got := host.Slot(28).Amount; got != maxStack {
		t.Fatalf("expected full stack of %d, got %d", maxStack, got)
	}
	if got := host.Cursor().Amount; got != 6 {
		t.Fatalf("expected 6 left on the cursor, got %d", got)
	}
}

func TestHostSkipsFeedbackForSilentButtons(t *testing.T) {
	h, _ := newTestModel(t, "shop", false)
	host := h.Model().Host()
	host.Click(15, menu.ActionSimple, false)
	if host.FeedbackCount() != 0 {
		t.Fatalf("expected no feedback for silent button, got %d", host.FeedbackCount())
	}
	host.Click(13, menu.ActionSimple, false)
	if host.FeedbackCount() != 1 {
		t.Fatalf("expected feedback for emerald, got %d", host.FeedbackCount())
	}
}

func TestHostReportsOutsideClicksAsIllegal(t *testing.T) {
	h, _ := newTestModel(t, "main", false)
	host := h.Model().Host()
	ev := host.Click(-5, menu.ActionSimple, false)
	if ev.Region != menu.RegionNone || ev.RawSlot != outsideSlot {
		t.Fatalf("expected outside click, got region %s slot %d", ev.Region, ev.RawSlot)
	}
	if !ev.Cancelled() {
		t.Fatalf("expected outside click cancelled")
	}
}

func TestHostBackgroundSlotsAreCancelled(t *testing.T) {
	h, _ := newTestModel(t, "main", false)
	host := h.Model().Host()
	ev := host.Click(0, menu.ActionSimple, false)
	if !ev.Cancelled() {
		t.Fatalf("expected background click cancelled")
	}
	if !host.Cursor().IsEmpty() {
		t.Fatalf("expected background pane to stay, cursor holds %+v", host.Cursor())
	}
}

func TestHostIgnoresInputWithoutSurface(t *testing.T) {
	host := NewHost("alex")
	if ev := host.Click(0, menu.ActionSimple, false); ev != nil {
		t.Fatalf("expected no event without a surface")
	}
	if ev := host.Drag([]int{1, 2}); ev != nil {
		t.Fatalf("expected no drag without a surface")
	}
	if host.Region(0) != menu.RegionOther {
		t.Fatalf("expected inventory region when no menu is shown, got %s", host.Region(0))
	}
}
