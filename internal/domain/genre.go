package domain

import (
	"slices"
	"strings"
)

// Genre is a member of the fixed set of genres a pool can be built for.
type Genre string

const (
	GenrePop        Genre = "pop"
	GenreRock       Genre = "rock"
	GenreHipHop     Genre = "hiphop"
	GenreRnB        Genre = "rnb"
	GenreElectronic Genre = "electronic"
	GenreDance      Genre = "dance"
	GenreJazz       Genre = "jazz"
	GenreClassical  Genre = "classical"
	GenreCountry    Genre = "country"
	GenreLatin      Genre = "latin"
	GenreMetal      Genre = "metal"
	GenreIndie      Genre = "indie"

	// GenreTop is the global chart. It used to be served by its own pool
	// and is now just another genre.
	GenreTop Genre = "top"
)

// CollectionKind distinguishes the upstream endpoints a collection lives behind.
type CollectionKind int

const (
	CollectionPlaylist CollectionKind = iota
	CollectionChart
)

// String returns the upstream path segment for the kind.
func (k CollectionKind) String() string {
	switch k {
	case CollectionChart:
		return "chart"
	default:
		return "playlist"
	}
}

// Collection identifies one upstream track listing.
type Collection struct {
	Kind CollectionKind
	ID   string
}

// genreCollections maps every genre to exactly one upstream collection.
var genreCollections = map[Genre]Collection{
	GenrePop:        {Kind: CollectionPlaylist, ID: "1282483245"},
	GenreRock:       {Kind: CollectionPlaylist, ID: "1306931615"},
	GenreHipHop:     {Kind: CollectionPlaylist, ID: "1996494362"},
	GenreRnB:        {Kind: CollectionPlaylist, ID: "1314725125"},
	GenreElectronic: {Kind: CollectionPlaylist, ID: "1283499335"},
	GenreDance:      {Kind: CollectionPlaylist, ID: "1273315391"},
	GenreJazz:       {Kind: CollectionPlaylist, ID: "1615514485"},
	GenreClassical:  {Kind: CollectionPlaylist, ID: "1283489745"},
	GenreCountry:    {Kind: CollectionPlaylist, ID: "1130102843"},
	GenreLatin:      {Kind: CollectionPlaylist, ID: "1283510265"},
	GenreMetal:      {Kind: CollectionPlaylist, ID: "1050179021"},
	GenreIndie:      {Kind: CollectionPlaylist, ID: "1476128301"},
	GenreTop:        {Kind: CollectionChart, ID: "0"},
}

// Genres returns every supported genre in sorted order.
func Genres() []Genre {
	out := make([]Genre, 0, len(genreCollections))
	for g := range genreCollections {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

// GenreNames returns Genres as plain strings.
func GenreNames() []string {
	genres := Genres()
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = string(g)
	}
	return names
}

// ParseGenre validates a caller-supplied genre. Matching is case-insensitive and
// ignores surrounding whitespace; anything outside the set yields an
// *UnsupportedGenreError.
func ParseGenre(s string) (Genre, error) {
	g := Genre(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := genreCollections[g]; !ok {
		return "", &UnsupportedGenreError{Genre: s, Allowed: GenreNames()}
	}
	return g, nil
}

// Valid reports whether g is in the supported set.
func (g Genre) Valid() bool {
	_, ok := genreCollections[g]
	return ok
}

// Collection returns the upstream collection the genre is built from.
func (g Genre) Collection() (Collection, bool) {
	c, ok := genreCollections[g]
	return c, ok
}

// CacheKey returns the pool cache key for the genre (pool:{genre}).
func (g Genre) CacheKey() string {
	return PrefixPool + string(g)
}

// PrefixPool is the cache key prefix for genre pools.
const PrefixPool = "pool:"
