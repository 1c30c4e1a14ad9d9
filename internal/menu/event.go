package menu

import "strings"

// Handle identifies a host surface.
type Handle uint64

// User identifies the person viewing a surface.
type User string

// Region tells which part of the view a click landed in.
type Region int

const (
	// RegionNone marks a click outside every surface.
	RegionNone Region = iota
	// RegionSession marks the menu surface.
	RegionSession
	// RegionOther marks the user's own storage below the menu.
	RegionOther
)

func (r Region) String() string {
	switch r {
	case RegionSession:
		return "session"
	case RegionOther:
		return "other"
	default:
		return "none"
	}
}

// ActionKind is the host's interpretation of a click.
type ActionKind int

const (
	ActionOther ActionKind = iota
	ActionSimple
	ActionMoveToOther
	ActionCollectToCursor
)

func (k ActionKind) String() string {
	switch k {
	case ActionSimple:
		return "simple"
	case ActionMoveToOther:
		return "move-to-other"
	case ActionCollectToCursor:
		return "collect-to-cursor"
	default:
		return "other"
	}
}

// ParseActionKind normalises a textual action kind.
func ParseActionKind(raw string) (ActionKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "simple", "take", "place":
		return ActionSimple, true
	case "move-to-other", "move", "shift-move":
		return ActionMoveToOther, true
	case "collect-to-cursor", "collect", "double-click":
		return ActionCollectToCursor, true
	case "", "other":
		return ActionOther, true
	default:
		return ActionOther, false
	}
}

// ClickEvent is the raw click record delivered by the host. Surface holds a
// snapshot of the session surface, one entry per slot.
type ClickEvent struct {
	Handle  Handle
	User    User
	RawSlot int
	Region  Region
	Cursor  Content
	Action  ActionKind
	Shift   bool
	Surface []Content

	cancelled bool
}

// Cancel marks the interaction as rejected; the host reverts it.
func (e *ClickEvent) Cancel() {
	e.cancelled = true
}

// Cancelled reports whether the interaction was rejected.
func (e *ClickEvent) Cancelled() bool {
	return e.cancelled
}

// DragEvent is the raw drag record delivered by the host.
type DragEvent struct {
	Handle   Handle
	User     User
	RawSlots []int
	Cursor   Content

	cancelled bool
}

// Cancel marks the drag as rejected.
func (e *DragEvent) Cancel() {
	e.cancelled = true
}

// Cancelled reports whether the drag was rejected.
func (e *DragEvent) Cancelled() bool {
	return e.cancelled
}
