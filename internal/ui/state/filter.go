package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"wallpick/internal/catalog"
)

// FilterItems returns the subsequence of items whose display name matches
// the query, preserving source order. The default match is case-insensitive
// substring containment; fuzzy switches to normalized fuzzy matching.
func FilterItems(items []catalog.Item, query string, useFuzzy bool) []catalog.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]catalog.Item(nil), items...)
	}
	filtered := make([]catalog.Item, 0, len(items))
	if useFuzzy {
		for _, it := range items {
			if fuzzy.MatchNormalizedFold(trimmed, it.Name()) {
				filtered = append(filtered, it)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name()), lower) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
