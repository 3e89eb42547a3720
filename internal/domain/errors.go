package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrUnsupportedGenre indicates the genre is outside the supported set
	ErrUnsupportedGenre = errors.New("unsupported genre")

	// ErrUpstream indicates the catalog API could not be reached or answered badly
	ErrUpstream = errors.New("upstream catalog request failed")
)

// UnsupportedGenreError is returned before any upstream call when a caller asks
// for a genre that is not in the set. It carries the allowed values so the
// caller can list them back to the client.
type UnsupportedGenreError struct {
	Genre   string
	Allowed []string
}

func (e *UnsupportedGenreError) Error() string {
	return fmt.Sprintf("unsupported genre %q (allowed: %s)", e.Genre, strings.Join(e.Allowed, ", "))
}

// Is makes errors.Is(err, ErrUnsupportedGenre) match.
func (e *UnsupportedGenreError) Is(target error) bool {
	return target == ErrUnsupportedGenre
}
