package state

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/atomicstack/composite-widgets/internal/collection"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterItems returns items matching the supplied query. Fuzzy matches on
// the item text win; when there are none, a plain substring match on text
// or id is used instead.
func FilterItems(items []collection.Item, query string) []collection.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return collection.Clone(items)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, texts(items))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]collection.Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]collection.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Text), lower) || strings.Contains(strings.ToLower(item.ID), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex returns the index of the best match for query among
// items, or -1. Exact matches beat prefixes, prefixes beat substrings and
// substrings beat the closest fuzzy rank. Items that are not available are
// never returned.
func BestMatchIndex(items []collection.Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return -1
	}
	lower := strings.ToLower(trimmed)
	passes := []func(collection.Item) bool{
		func(it collection.Item) bool {
			return strings.EqualFold(it.Text, trimmed) || strings.EqualFold(it.ID, trimmed)
		},
		func(it collection.Item) bool { return strings.HasPrefix(strings.ToLower(it.Text), lower) },
		func(it collection.Item) bool { return strings.HasPrefix(strings.ToLower(it.ID), lower) },
		func(it collection.Item) bool { return strings.Contains(strings.ToLower(it.Text), lower) },
	}
	for _, pass := range passes {
		for i, item := range items {
			if item.Available() && pass(item) {
				return i
			}
		}
	}
	best := -1
	bestDistance := 0
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, texts(items)) {
		if rank.OriginalIndex < 0 || rank.OriginalIndex >= len(items) || !items[rank.OriginalIndex].Available() {
			continue
		}
		if best < 0 || rank.Distance < bestDistance ||
			(rank.Distance == bestDistance && rank.OriginalIndex < best) {
			best = rank.OriginalIndex
			bestDistance = rank.Distance
		}
	}
	return best
}

// Suggest returns the available item whose text is closest to query by edit
// distance. Candidates further than 40% of the longer string are ignored.
func Suggest(items []collection.Item, query string) (collection.Item, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return collection.Item{}, false
	}
	best := -1
	bestScore := 0.0
	for i, item := range items {
		if !item.Available() {
			continue
		}
		text := strings.ToLower(item.Text)
		longest := max(len(trimmed), len(text))
		score := float64(levenshtein.ComputeDistance(trimmed, text)) / float64(longest)
		if score >= 0.4 {
			continue
		}
		if best < 0 || score < bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		return collection.Item{}, false
	}
	return items[best], true
}

func texts(items []collection.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Text
	}
	return out
}
