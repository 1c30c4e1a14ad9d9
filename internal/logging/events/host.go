package events

import "github.com/atomicstack/grid-menu/internal/logging"

type HostTracer struct{}

var Host = HostTracer{}

func (HostTracer) Click(handle uint64, slot int, action string, shift, cancelled bool) {
	logging.Trace("host.click", map[string]interface{}{
		"handle":    handle,
		"slot":      slot,
		"action":    action,
		"shift":     shift,
		"cancelled": cancelled,
	})
}

func (HostTracer) Drag(handle uint64, slots []int, cancelled bool) {
	logging.Trace("host.drag", map[string]interface{}{"handle": handle, "slots": slots, "cancelled": cancelled})
}

func (HostTracer) Surface(handle uint64, title string, size int) {
	logging.Trace("host.surface", map[string]interface{}{"handle": handle, "title": title, "size": size})
}

func (HostTracer) Closed(handle uint64) {
	logging.Trace("host.closed", map[string]interface{}{"handle": handle})
}
