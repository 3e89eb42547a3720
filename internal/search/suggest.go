package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the candidate closest to input, for "did you mean" hints on
// rejected genres. Candidates containing input as a subsequence win first
// ("hip" -> "hiphop"); otherwise the nearest candidate by edit distance is
// returned if it is within typo tolerance ("rok" -> "rock").
func Suggest(input string, candidates []string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || len(candidates) == 0 {
		return "", false
	}

	if ranks := fuzzy.RankFindFold(input, candidates); len(ranks) > 0 {
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
				best = r
			}
		}
		return best.Target, true
	}

	best, bestDist := "", -1
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(input, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > allowedTypos(len([]rune(input))) {
		return "", false
	}
	return best, true
}

// allowedTypos scales edit tolerance with input length.
func allowedTypos(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 7:
		return 2
	default:
		return 3
	}
}
