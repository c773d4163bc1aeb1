package events

import "github.com/atomicstack/composite-widgets/internal/logging"

type OverlayTracer struct{}

var Overlay = OverlayTracer{}

func (OverlayTracer) Show(kind, id string) {
	logging.Trace("overlay.show", map[string]interface{}{"kind": kind, "id": id})
}

func (OverlayTracer) Dismiss(kind, id, reason string) {
	logging.Trace("overlay.dismiss", map[string]interface{}{"kind": kind, "id": id, "reason": reason})
}
