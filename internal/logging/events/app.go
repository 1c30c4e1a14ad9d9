package events

import "github.com/atomicstack/grid-menu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Shutdown(open int) {
	logging.Trace("app.shutdown", map[string]interface{}{"open": open})
}
