package events

import "github.com/atomicstack/grid-menu/internal/logging"

type SessionTracer struct{}

type ClickTracer struct{}

type DragTracer struct{}

type RegistryTracer struct{}

var (
	Session  = SessionTracer{}
	Click    = ClickTracer{}
	Drag     = DragTracer{}
	Registry = RegistryTracer{}
)

func (SessionTracer) Open(handle uint64, title, user string, size int) {
	logging.Trace("session.open", map[string]interface{}{
		"handle": handle,
		"title":  title,
		"user":   user,
		"size":   size,
	})
}

func (SessionTracer) Close(handle uint64, title string) {
	logging.Trace("session.close", map[string]interface{}{"handle": handle, "title": title})
}

func (ClickTracer) Dispatch(handle uint64, slot int, action string) {
	logging.Trace("click.dispatch", map[string]interface{}{"handle": handle, "slot": slot, "action": action})
}

// Rejected records a click cancelled before reaching a button.
func (ClickTracer) Rejected(handle uint64, slot int, action, verdict string) {
	logging.Trace("click.rejected", map[string]interface{}{
		"handle":  handle,
		"slot":    slot,
		"action":  action,
		"verdict": verdict,
	})
}

func (DragTracer) Cancel(handle uint64, slots []int) {
	logging.Trace("drag.cancel", map[string]interface{}{"handle": handle, "slots": slots})
}

func (RegistryTracer) UnknownSurface(handle uint64, kind string) {
	logging.Trace("registry.unknown", map[string]interface{}{"handle": handle, "kind": kind})
}

func (RegistryTracer) CloseAll(count int) {
	logging.Trace("registry.close-all", map[string]interface{}{"count": count})
}
