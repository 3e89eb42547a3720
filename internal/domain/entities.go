package domain

import (
	"strings"
	"time"
)

// Track is a previewable catalog track as served to clients.
type Track struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artists     []string `json:"artists"`
	PreviewURL  string   `json:"previewUrl,omitempty"`
	DurationMs  int      `json:"durationMs"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ExternalURL string   `json:"externalUrl,omitempty"`
	IsPlayable  bool     `json:"isPlayable"`
}

// FirstArtist returns the primary artist name, or "" when the upstream omitted it.
func (t Track) FirstArtist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0]
}

// HasPreview reports whether the track carries a usable preview clip.
func (t Track) HasPreview() bool {
	return strings.TrimSpace(t.PreviewURL) != ""
}

// RawTrack is a provider-neutral upstream record, before normalization.
// Catalog clients decode their wire format into this shape and nothing more.
type RawTrack struct {
	ID          string
	Title       string
	ArtistName  string
	PreviewURL  string
	DurationSec int
	CoverURL    string
	Link        string
}

// PoolEntry is one cached pool. Entries are replaced wholesale, never mutated.
type PoolEntry struct {
	Key       string
	Items     []Track
	CreatedAt time.Time
	TTL       time.Duration
}

// Size returns the number of tracks in the pool.
func (e PoolEntry) Size() int {
	return len(e.Items)
}

// Age returns how long ago the entry was (re)built, relative to now.
func (e PoolEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.CreatedAt)
}
