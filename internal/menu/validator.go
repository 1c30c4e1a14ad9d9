package menu

// Verdict is the outcome of classifying a click.
type Verdict int

const (
	// Illegal interactions are cancelled outright.
	Illegal Verdict = iota
	// Consumed interactions are legal but handled by policy; no button runs.
	Consumed
	// Dispatch interactions are handed to the button under the click.
	Dispatch
)

func (v Verdict) String() string {
	switch v {
	case Consumed:
		return "consumed"
	case Dispatch:
		return "dispatch"
	default:
		return "illegal"
	}
}

// Validator classifies raw interactions before they reach buttons.
type Validator interface {
	// Classify inspects a click. bound reports whether a surface slot holds
	// a button.
	Classify(ev ClickEvent, bound func(slot int) bool) Verdict
	// AllowDrag reports whether a drag may proceed on a surface of the
	// given size.
	AllowDrag(ev DragEvent, size int) bool
}

// StaticValidator forbids any change to the menu surface. It holds no
// state and is safe for concurrent use.
type StaticValidator struct{}

// Classify implements Validator.
func (StaticValidator) Classify(ev ClickEvent, bound func(int) bool) Verdict {
	if IllegalShiftClick(ev) {
		return Illegal
	}
	if IllegalCollect(ev) {
		return Illegal
	}
	if ev.Region == RegionOther && ev.RawSlot >= 0 {
		return Dispatch
	}
	if ev.Region == RegionNone || ev.RawSlot < 0 {
		return Illegal
	}
	if bound != nil && bound(ev.RawSlot) {
		return Dispatch
	}
	// The snapshot may be missing or shorter than the grid.
	if ev.RawSlot >= len(ev.Surface) {
		return Illegal
	}
	if !ev.Surface[ev.RawSlot].IsEmpty() {
		return Dispatch
	}
	return Consumed
}

// AllowDrag implements Validator. Drags touching the surface are rejected
// as a whole.
func (StaticValidator) AllowDrag(ev DragEvent, size int) bool {
	for _, slot := range ev.RawSlots {
		if slot >= 0 && slot < size {
			return false
		}
	}
	return true
}

// IllegalShiftClick reports a shift-click that would move content from the
// menu into the user's storage.
func IllegalShiftClick(ev ClickEvent) bool {
	return ev.Shift && ev.Action == ActionMoveToOther
}

// IllegalCollect reports a double-click collect that would gather matching
// stacks out of the menu surface into the cursor.
func IllegalCollect(ev ClickEvent) bool {
	if ev.Action != ActionCollectToCursor || ev.Cursor.IsEmpty() {
		return false
	}
	for _, c := range ev.Surface {
		if c.Similar(ev.Cursor) {
			return true
		}
	}
	return false
}
