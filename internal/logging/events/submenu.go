package events

import "github.com/atomicstack/composite-widgets/internal/logging"

type SubmenuTracer struct{}

type FocusTracer struct{}

var (
	Submenu = SubmenuTracer{}
	Focus   = FocusTracer{}
)

func (SubmenuTracer) Transition(menuID, from, to, trigger string) {
	logging.Trace("submenu.transition", map[string]interface{}{
		"menu":    menuID,
		"from":    from,
		"to":      to,
		"trigger": trigger,
	})
}

func (FocusTracer) Classify(itemID string, visible bool) {
	logging.Trace("focus.classify", map[string]interface{}{"item": itemID, "visible": visible})
}

func (FocusTracer) Blur(itemID string) {
	logging.Trace("focus.blur", map[string]interface{}{"item": itemID})
}
