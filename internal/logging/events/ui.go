package events

import "github.com/atomicstack/composite-widgets/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(widgetID, key string, handled bool) {
	logging.Trace("ui.key", map[string]interface{}{
		"widget":  widgetID,
		"key":     key,
		"handled": handled,
	})
}

func (UITracer) Switch(from, to string) {
	logging.Trace("ui.switch", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Pointer(widgetID, level, itemID string, press bool) {
	logging.Trace("ui.pointer", map[string]interface{}{
		"widget": widgetID,
		"level":  level,
		"item":   itemID,
		"press":  press,
	})
}

func (UITracer) Commit(widgetID, level, itemID string) {
	logging.Trace("ui.commit", map[string]interface{}{"widget": widgetID, "level": level, "item": itemID})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
