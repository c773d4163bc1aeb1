package events

import "github.com/atomicstack/composite-widgets/internal/logging"

type NavTracer struct{}

type TypeaheadTracer struct{}

var (
	Nav       = NavTracer{}
	Typeahead = TypeaheadTracer{}
)

func (NavTracer) Move(collectionID, op string, from, to int) {
	logging.Trace("nav.move", map[string]interface{}{
		"collection": collectionID,
		"op":         op,
		"from":       from,
		"to":         to,
	})
}

func (NavTracer) Stale(collectionID, itemID string) {
	logging.Trace("nav.stale", map[string]interface{}{"collection": collectionID, "item": itemID})
}

func (NavTracer) Set(collectionID, itemID string) {
	logging.Trace("nav.set", map[string]interface{}{"collection": collectionID, "item": itemID})
}

func (TypeaheadTracer) Match(query, itemID string) {
	logging.Trace("typeahead.match", map[string]interface{}{"query": query, "item": itemID})
}

func (TypeaheadTracer) Miss(query string) {
	logging.Trace("typeahead.miss", map[string]interface{}{"query": query})
}

func (TypeaheadTracer) Reset(reason string) {
	logging.Trace("typeahead.reset", map[string]interface{}{"reason": reason})
}

func (NavTracer) Filter(collectionID, query string, matches int) {
	logging.Trace("nav.filter", map[string]interface{}{
		"collection": collectionID,
		"query":      query,
		"matches":    matches,
	})
}
