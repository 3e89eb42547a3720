package pool

import (
	"strings"

	"github.com/mmcdole/tunepool/internal/domain"
)

// Dedupe drops every track whose id, or whose case-insensitive title and first
// artist, was already seen earlier in the slice. First occurrence wins and
// order is preserved.
func Dedupe(tracks []domain.Track) []domain.Track {
	seenIDs := make(map[string]struct{}, len(tracks))
	seenNames := make(map[string]struct{}, len(tracks))
	out := make([]domain.Track, 0, len(tracks))

	for _, t := range tracks {
		nameKey := identityKey(t)
		if _, dup := seenIDs[t.ID]; dup {
			continue
		}
		if _, dup := seenNames[nameKey]; dup {
			continue
		}
		seenIDs[t.ID] = struct{}{}
		seenNames[nameKey] = struct{}{}
		out = append(out, t)
	}

	return out
}

// identityKey is title::firstArtist, lowercased.
func identityKey(t domain.Track) string {
	return strings.ToLower(t.Title) + "::" + strings.ToLower(t.FirstArtist())
}
