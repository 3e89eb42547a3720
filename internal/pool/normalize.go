package pool

import (
	"strings"

	"github.com/mmcdole/tunepool/internal/domain"
)

// Normalize maps a raw upstream record to a Track. It never fails and never
// drops a record: absent optional fields become zero values.
func Normalize(raw domain.RawTrack) domain.Track {
	artists := []string{}
	if name := strings.TrimSpace(raw.ArtistName); name != "" {
		artists = append(artists, name)
	}

	duration := raw.DurationSec * 1000
	if duration < 0 {
		duration = 0
	}

	preview := strings.TrimSpace(raw.PreviewURL)

	return domain.Track{
		ID:          strings.TrimSpace(raw.ID),
		Title:       raw.Title,
		Artists:     artists,
		PreviewURL:  preview,
		DurationMs:  duration,
		ImageURL:    raw.CoverURL,
		ExternalURL: raw.Link,
		IsPlayable:  preview != "",
	}
}

// NormalizeAll maps every record, preserving order.
func NormalizeAll(raws []domain.RawTrack) []domain.Track {
	out := make([]domain.Track, len(raws))
	for i, raw := range raws {
		out[i] = Normalize(raw)
	}
	return out
}

// Previewable returns the tracks that carry a preview clip, preserving order.
func Previewable(tracks []domain.Track) []domain.Track {
	out := make([]domain.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.HasPreview() {
			out = append(out, t)
		}
	}
	return out
}
