package deezer

import (
	"github.com/mmcdole/tunepool/internal/domain"
)

// MapTracks converts a page of Deezer tracks to raw domain records.
// Every input record yields one output record; filtering happens later.
func MapTracks(dtos []TrackDTO) []domain.RawTrack {
	tracks := make([]domain.RawTrack, 0, len(dtos))
	for _, d := range dtos {
		tracks = append(tracks, mapTrack(d))
	}
	return tracks
}

// mapTrack converts a single Deezer track
func mapTrack(d TrackDTO) domain.RawTrack {
	raw := domain.RawTrack{
		ID:          string(d.ID),
		Title:       d.Title,
		PreviewURL:  d.Preview,
		DurationSec: d.Duration,
		Link:        d.Link,
	}

	if raw.Title == "" {
		raw.Title = d.TitleShort
	}

	if d.Artist != nil {
		raw.ArtistName = d.Artist.Name
	}

	raw.CoverURL = coverURL(d)
	return raw
}

// coverURL picks the largest album cover, falling back to the artist picture
func coverURL(d TrackDTO) string {
	if d.Album != nil {
		for _, u := range []string{d.Album.CoverXL, d.Album.CoverBig, d.Album.CoverMedium, d.Album.Cover} {
			if u != "" {
				return u
			}
		}
	}
	if d.Artist != nil {
		for _, u := range []string{d.Artist.PictureBig, d.Artist.PictureMedium, d.Artist.Picture} {
			if u != "" {
				return u
			}
		}
	}
	return ""
}
