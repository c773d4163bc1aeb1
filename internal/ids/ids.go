// Package ids allocates element ids for widget instances. Each widget gets
// its allocator at construction; nothing is shared between instances.
package ids

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Allocator hands out ids that are unique within one instance.
type Allocator struct {
	prefix   string
	counters map[string]int
	named    map[string]int
	space    uuid.UUID
}

// New returns an allocator whose ids start with prefix.
func New(prefix string) *Allocator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "cw"
	}
	return &Allocator{
		prefix:   prefix,
		counters: make(map[string]int),
		named:    make(map[string]int),
		space:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("composite-widgets:"+prefix)),
	}
}

// Next returns the next id for kind, e.g. "cw-menu-1".
func (a *Allocator) Next(kind string) string {
	if kind == "" {
		kind = "id"
	}
	a.counters[kind]++
	return fmt.Sprintf("%s-%s-%d", a.prefix, kind, a.counters[kind])
}

// Stable returns an id derived from name alone, so that the same name maps
// to the same id across runs and resets.
func (a *Allocator) Stable(name string) string {
	return a.prefix + "-" + uuid.NewSHA1(a.space, []byte(name)).String()[:8]
}

// Named returns the id of a named instance of kind: the Stable id of
// kind/name on first use, suffixed with a count when the same name is
// issued again. An empty name falls back to Next.
func (a *Allocator) Named(kind, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return a.Next(kind)
	}
	key := kind + "/" + name
	a.named[key]++
	id := a.Stable(key)
	if n := a.named[key]; n > 1 {
		id = fmt.Sprintf("%s-%d", id, n)
	}
	return id
}

// Reset restarts every counter. Tests call it to isolate cases.
func (a *Allocator) Reset() {
	clear(a.counters)
	clear(a.named)
}
