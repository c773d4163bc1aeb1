package events

import "github.com/atomicstack/composite-widgets/internal/logging"

type GroupTracer struct{}

type AdvisoryTracer struct{}

var (
	Group    = GroupTracer{}
	Advisory = AdvisoryTracer{}
)

func (GroupTracer) Commit(groupID string, value []string, controlled bool) {
	logging.Trace("group.commit", map[string]interface{}{
		"group":      groupID,
		"value":      value,
		"controlled": controlled,
	})
}

func (GroupTracer) Ignored(groupID, itemID, reason string) {
	logging.Trace("group.ignored", map[string]interface{}{"group": groupID, "item": itemID, "reason": reason})
}

// Warn is always written regardless of trace settings.
func (AdvisoryTracer) Warn(widget, code, detail string) {
	logging.Warn("advisory", map[string]interface{}{"widget": widget, "code": code, "detail": detail})
}
