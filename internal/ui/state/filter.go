package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Entry is a searchable row: Key is a stable identifier and Label the text
// shown to the user.
type Entry struct {
	Key   string
	Label string
}

// FilterEntries returns the indices of entries matching query, in their
// original order. An empty query matches everything.
func FilterEntries(entries []Entry, query string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		out := make([]int, len(entries))
		for i := range entries {
			out[i] = i
		}
		return out
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		out := make([]int, 0, len(matches))
		for idx := range entries {
			if _, ok := matches[idx]; ok {
				out = append(out, idx)
			}
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	out := make([]int, 0, len(entries))
	for i, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), lower) || strings.Contains(strings.ToLower(entry.Key), lower) {
			out = append(out, i)
		}
	}
	return out
}

// BestMatchIndex returns the best index for the query among entries, or -1
// when nothing matches. Exact matches beat prefixes, prefixes beat
// substrings, and fuzzy distance breaks the rest.
func BestMatchIndex(entries []Entry, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		if len(entries) == 0 {
			return -1
		}
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.EqualFold(entry.Label, trimmed) || strings.EqualFold(entry.Key, trimmed) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Key), lower) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(entries) {
		return -1
	}
	return best.OriginalIndex
}

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Label
	}
	return out
}
