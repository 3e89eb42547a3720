package deezer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TrackPage is the envelope returned by paginated track listings
type TrackPage struct {
	Data  []TrackDTO `json:"data"`
	Total int        `json:"total,omitempty"`
	Next  string     `json:"next,omitempty"`
	Error *APIError  `json:"error,omitempty"`
}

// APIError is reported in the body, usually with HTTP 200
type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Type, e.Code, e.Message)
}

// TrackDTO represents a track inside a playlist or chart listing
type TrackDTO struct {
	ID         FlexibleID `json:"id"`
	Readable   bool       `json:"readable"`
	Title      string     `json:"title"`
	TitleShort string     `json:"title_short,omitempty"`
	Link       string     `json:"link,omitempty"`
	Duration   int        `json:"duration,omitempty"` // seconds
	Preview    string     `json:"preview,omitempty"`
	Artist     *ArtistDTO `json:"artist,omitempty"`
	Album      *AlbumDTO  `json:"album,omitempty"`
}

// ArtistDTO is the embedded artist summary
type ArtistDTO struct {
	ID            FlexibleID `json:"id"`
	Name          string     `json:"name"`
	Picture       string     `json:"picture,omitempty"`
	PictureMedium string     `json:"picture_medium,omitempty"`
	PictureBig    string     `json:"picture_big,omitempty"`
}

// AlbumDTO is the embedded album summary
type AlbumDTO struct {
	ID          FlexibleID `json:"id"`
	Title       string     `json:"title"`
	Cover       string     `json:"cover,omitempty"`
	CoverMedium string     `json:"cover_medium,omitempty"`
	CoverBig    string     `json:"cover_big,omitempty"`
	CoverXL     string     `json:"cover_xl,omitempty"`
}

// FlexibleID accepts ids sent either as JSON numbers or as strings
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = FlexibleID(n.String())
	return nil
}
