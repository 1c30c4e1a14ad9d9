package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/grid-menu/internal/logging"
	"github.com/atomicstack/grid-menu/internal/logging/events"
	"github.com/atomicstack/grid-menu/internal/menu"
)

// ActionKind enumerates the built-in button actions.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionOpen
	ActionCount
	ActionToggle
	ActionRefresh
)

// DynamicClock names the icon that shows the current time.
const DynamicClock = "clock"

// maxStack caps the counter action.
const maxStack = 64

// Action is a parsed button action.
type Action struct {
	Kind   ActionKind
	Target string
}

// ParseAction parses the action column of a button spec.
func ParseAction(raw string) (Action, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "none":
		return Action{Kind: ActionNone}, nil
	case "close":
		return Action{Kind: ActionClose}, nil
	case "count":
		return Action{Kind: ActionCount}, nil
	case "toggle":
		return Action{Kind: ActionToggle}, nil
	case "refresh":
		return Action{Kind: ActionRefresh}, nil
	}
	if target, ok := strings.CutPrefix(raw, "open:"); ok {
		target = strings.TrimSpace(target)
		if target == "" {
			return Action{}, fmt.Errorf("open action without target")
		}
		return Action{Kind: ActionOpen, Target: target}, nil
	}
	return Action{}, fmt.Errorf("unknown action %q", raw)
}

func (a Action) String() string {
	switch a.Kind {
	case ActionClose:
		return "close"
	case ActionOpen:
		return "open:" + a.Target
	case ActionCount:
		return "count"
	case ActionToggle:
		return "toggle"
	case ActionRefresh:
		return "refresh"
	default:
		return "none"
	}
}

// newButton builds a fresh button for one session. Counter and toggle state
// lives in the closure, so every session starts from the declared values.
func (c *Catalog) newButton(menuName string, spec ButtonSpec) *menu.Button {
	act, _ := ParseAction(spec.Action)
	base := spec.Icon()
	amount := base.Content().Amount
	glint := spec.Glint

	var icon menu.Icon = base
	switch {
	case spec.Dynamic == DynamicClock:
		icon = menu.Dynamic(func() menu.Content {
			return base.WithLore(c.now().Format(time.TimeOnly)).Content()
		})
	case act.Kind == ActionCount || act.Kind == ActionToggle:
		icon = menu.Dynamic(func() menu.Content {
			return base.WithAmount(amount).WithGlint(glint).Content()
		})
	}

	button := menu.NewButton(icon)
	button.Movable = spec.Movable
	button.Silent = spec.Silent
	if act.Kind == ActionNone {
		return button
	}
	return button.Do(func(ctx menu.ClickContext) {
		events.Layout.Action(menuName, ctx.Slot, act.String())
		switch act.Kind {
		case ActionClose:
			ctx.Session.Close()
		case ActionOpen:
			target, ok := c.Menu(act.Target)
			if !ok {
				logging.Errorf("menu %q: open unknown menu %q", menuName, act.Target)
				return
			}
			ctx.Session.OpenOther(target)
		case ActionCount:
			amount = amount%maxStack + 1
			ctx.Session.Refresh(ctx.Slot)
		case ActionToggle:
			glint = !glint
			ctx.Session.Refresh(ctx.Slot)
		case ActionRefresh:
			ctx.Session.Refresh()
		}
	})
}
