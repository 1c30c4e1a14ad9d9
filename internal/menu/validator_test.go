package menu

import "testing"

func surfaceOf(size int, fill map[int]Content) []Content {
	out := make([]Content, size)
	for slot, c := range fill {
		out[slot] = c
	}
	return out
}

func noneBound(int) bool { return false }

func TestShiftMoveIsAlwaysIllegal(t *testing.T) {
	v := StaticValidator{}
	cursors := []Content{Nothing, Item("diamond")}
	regions := []Region{RegionSession, RegionOther, RegionNone}
	surface := surfaceOf(9, map[int]Content{4: Item("diamond")})
	for slot := -1; slot < 18; slot++ {
		for _, cursor := range cursors {
			for _, region := range regions {
				ev := ClickEvent{
					RawSlot: slot,
					Region:  region,
					Cursor:  cursor,
					Action:  ActionMoveToOther,
					Shift:   true,
					Surface: surface,
				}
				if got := v.Classify(ev, func(int) bool { return true }); got != Illegal {
					t.Fatalf("slot %d region %s cursor %q: expected illegal, got %s", slot, region, cursor.Kind, got)
				}
			}
		}
	}
}

func TestMoveWithoutShiftIsNotTheShiftRule(t *testing.T) {
	ev := ClickEvent{
		RawSlot: 12,
		Region:  RegionOther,
		Action:  ActionMoveToOther,
		Surface: surfaceOf(9, nil),
	}
	if got := (StaticValidator{}).Classify(ev, noneBound); got != Dispatch {
		t.Fatalf("expected dispatch for unshifted move in other region, got %s", got)
	}
}

func TestCollectMatchingSurfaceIsIllegal(t *testing.T) {
	surface := surfaceOf(9, map[int]Content{
		2: NewIcon("diamond").WithAmount(5).Content(),
	})
	ev := ClickEvent{
		RawSlot: 14,
		Region:  RegionOther,
		Cursor:  NewIcon("diamond").WithAmount(1).Content(),
		Action:  ActionCollectToCursor,
		Surface: surface,
	}
	if got := (StaticValidator{}).Classify(ev, noneBound); got != Illegal {
		t.Fatalf("expected illegal collect, got %s", got)
	}
}

func TestCollectWithoutMatchIsLegal(t *testing.T) {
	surface := surfaceOf(9, map[int]Content{
		2: Item("emerald"),
		3: NewIcon("diamond").WithName("Menu Gem").Content(),
	})
	ev := ClickEvent{
		RawSlot: 14,
		Region:  RegionOther,
		Cursor:  Item("diamond"),
		Action:  ActionCollectToCursor,
		Surface: surface,
	}
	if got := (StaticValidator{}).Classify(ev, noneBound); got != Dispatch {
		t.Fatalf("expected legal collect, got %s", got)
	}
}

func TestCollectWithEmptyCursorIsLegal(t *testing.T) {
	ev := ClickEvent{
		RawSlot: 10,
		Region:  RegionOther,
		Action:  ActionCollectToCursor,
		Surface: surfaceOf(9, map[int]Content{0: Item("diamond")}),
	}
	if IllegalCollect(ev) {
		t.Fatalf("expected empty cursor never to trigger the collect rule")
	}
}

func TestOtherRegionClicksPassThrough(t *testing.T) {
	ev := ClickEvent{
		RawSlot: 20,
		Region:  RegionOther,
		Action:  ActionSimple,
		Surface: surfaceOf(9, nil),
	}
	if got := (StaticValidator{}).Classify(ev, noneBound); got != Dispatch {
		t.Fatalf("expected dispatch for other region, got %s", got)
	}
}

func TestClickOutsideSurfacesIsIllegal(t *testing.T) {
	ev := ClickEvent{
		RawSlot: -999,
		Region:  RegionNone,
		Cursor:  Item("diamond"),
		Action:  ActionOther,
		Surface: surfaceOf(9, nil),
	}
	if got := (StaticValidator{}).Classify(ev, noneBound); got != Illegal {
		t.Fatalf("expected illegal outside click, got %s", got)
	}
}

func TestSessionSlotClassification(t *testing.T) {
	surface := surfaceOf(9, map[int]Content{1: Item("diamond")})
	bound := func(slot int) bool { return slot == 2 }
	cases := []struct {
		slot int
		want Verdict
	}{
		{1, Dispatch},
		{2, Dispatch},
		{3, Consumed},
	}
	for _, tc := range cases {
		ev := ClickEvent{RawSlot: tc.slot, Region: RegionSession, Action: ActionSimple, Surface: surface}
		if got := (StaticValidator{}).Classify(ev, bound); got != tc.want {
			t.Fatalf("slot %d: expected %s, got %s", tc.slot, tc.want, got)
		}
	}
}

func TestBoundSlotDispatchesWithoutSnapshot(t *testing.T) {
	bound := func(slot int) bool { return slot == 4 }
	ev := ClickEvent{RawSlot: 4, Region: RegionSession, Action: ActionSimple}
	if got := (StaticValidator{}).Classify(ev, bound); got != Dispatch {
		t.Fatalf("expected dispatch for bound slot without snapshot, got %s", got)
	}
	ev.Surface = surfaceOf(2, nil)
	if got := (StaticValidator{}).Classify(ev, bound); got != Dispatch {
		t.Fatalf("expected dispatch for bound slot past short snapshot, got %s", got)
	}
	ev.RawSlot = 5
	if got := (StaticValidator{}).Classify(ev, bound); got != Illegal {
		t.Fatalf("expected illegal for unbound slot past snapshot, got %s", got)
	}
}

func TestStaticDragRejectsSurfaceSlots(t *testing.T) {
	v := StaticValidator{}
	if v.AllowDrag(DragEvent{RawSlots: []int{2, 11}}, 9) {
		t.Fatalf("expected drag touching slot 2 to be rejected")
	}
	if !v.AllowDrag(DragEvent{RawSlots: []int{9, 11, 30}}, 9) {
		t.Fatalf("expected drag outside surface to be allowed")
	}
}

func TestParseActionKind(t *testing.T) {
	cases := map[string]ActionKind{
		"simple":       ActionSimple,
		" Move ":       ActionMoveToOther,
		"double-click": ActionCollectToCursor,
		"":             ActionOther,
	}
	for raw, want := range cases {
		got, ok := ParseActionKind(raw)
		if !ok || got != want {
			t.Fatalf("ParseActionKind(%q) = %s, %v; want %s", raw, got, ok, want)
		}
	}
	if _, ok := ParseActionKind("juggle"); ok {
		t.Fatalf("expected unknown kind to be rejected")
	}
}
