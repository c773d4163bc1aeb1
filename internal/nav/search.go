package nav

import "github.com/atomicstack/composite-widgets/internal/collection"

// Direction is the step applied while scanning a collection.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Filter decides whether an item may become active.
type Filter func(collection.Item) bool

// Available is the default filter: disabled or hidden items are skipped.
func Available(item collection.Item) bool {
	return item.Available()
}

// FindAvailable scans items from start in direction dir, wrapping around,
// and returns the index of the first item accepted by filter. It returns -1
// once every index has been visited without a match, so it performs at most
// len(items) comparisons.
func FindAvailable(items []collection.Item, start int, dir Direction, filter Filter) int {
	n := len(items)
	if n == 0 {
		return -1
	}
	if filter == nil {
		filter = Available
	}
	if dir != Backward {
		dir = Forward
	}
	visited := make([]bool, n)
	idx := wrap(start, n)
	for !visited[idx] {
		visited[idx] = true
		if filter(items[idx]) {
			return idx
		}
		idx = wrap(idx+int(dir), n)
	}
	return -1
}

// FindInitial picks the item a collection should start on. Selected items are
// searched first so that reopening resumes at the previous selection; when
// none of them is available the whole collection is searched.
func FindInitial(items []collection.Item, dir Direction, filter Filter) int {
	if len(items) == 0 {
		return -1
	}
	if filter == nil {
		filter = Available
	}
	selected := make([]int, 0, 1)
	for i, item := range items {
		if item.Selected {
			selected = append(selected, i)
		}
	}
	if len(selected) > 0 {
		subset := make([]collection.Item, len(selected))
		for i, idx := range selected {
			subset[i] = items[idx]
		}
		if hit := FindAvailable(subset, edge(len(subset), dir), dir, filter); hit >= 0 {
			return selected[hit]
		}
	}
	return FindAvailable(items, edge(len(items), dir), dir, filter)
}

func edge(n int, dir Direction) int {
	if dir == Backward {
		return n - 1
	}
	return 0
}

func wrap(idx, n int) int {
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
