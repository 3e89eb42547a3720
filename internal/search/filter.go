package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is one filtered name with the positions that matched, for highlighting.
type Match struct {
	Name           string `json:"name"`
	MatchedIndexes []int  `json:"matchedIndexes,omitempty"`
	Score          int    `json:"score"`
}

// nameIndex implements sahilm/fuzzy.Source over pre-lowered names.
type nameIndex struct {
	names []string
	lower []string
}

func newNameIndex(names []string) *nameIndex {
	idx := &nameIndex{names: names, lower: make([]string, len(names))}
	for i, n := range names {
		idx.lower[i] = strings.ToLower(n)
	}
	return idx
}

func (idx *nameIndex) String(i int) string { return idx.lower[i] }

func (idx *nameIndex) Len() int { return len(idx.names) }

// Filter fuzzy-matches query against names, best match first. An empty query
// returns every name in its original order.
func Filter(query string, names []string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Match, len(names))
		for i, n := range names {
			out[i] = Match{Name: n}
		}
		return out
	}

	idx := newNameIndex(names)
	matches := fuzzy.FindFrom(query, idx)

	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = Match{
			Name:           idx.names[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return out
}
