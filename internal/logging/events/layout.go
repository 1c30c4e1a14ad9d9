package events

import "github.com/atomicstack/grid-menu/internal/logging"

type LayoutTracer struct{}

var Layout = LayoutTracer{}

func (LayoutTracer) Load(source string, menus int) {
	logging.Trace("layout.load", map[string]interface{}{"source": source, "menus": menus})
}

func (LayoutTracer) Find(query, match string) {
	logging.Trace("layout.find", map[string]interface{}{"query": query, "match": match})
}

func (LayoutTracer) Action(menu string, slot int, action string) {
	logging.Trace("layout.action", map[string]interface{}{"menu": menu, "slot": slot, "action": action})
}
