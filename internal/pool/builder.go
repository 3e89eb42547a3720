package pool

import (
	"context"
	"log/slog"

	"github.com/mmcdole/tunepool/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	// PageSize is the number of records requested per upstream page
	PageSize = 50

	// PageCount is how many pages one build requests (offsets 0, 50, 100)
	PageCount = 3
)

// Builder turns an upstream collection into a pool: fetch, normalize, drop
// tracks without a preview, dedupe, shuffle. It is the only component that
// talks to the catalog.
type Builder struct {
	client   domain.CatalogClient
	shuffler *Shuffler
	logger   *slog.Logger
}

// NewBuilder creates a Builder. A nil shuffler means crypto/rand.
func NewBuilder(client domain.CatalogClient, shuffler *Shuffler, logger *slog.Logger) *Builder {
	if shuffler == nil {
		shuffler = NewShuffler()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{client: client, shuffler: shuffler, logger: logger}
}

// Build returns a freshly built pool for genre. Unsupported genres fail before
// any network access; upstream errors are returned unchanged.
func (b *Builder) Build(ctx context.Context, genre domain.Genre) ([]domain.Track, domain.BuildStats, error) {
	stats := domain.BuildStats{Genre: genre}

	coll, ok := genre.Collection()
	if !ok {
		return nil, stats, &domain.UnsupportedGenreError{Genre: string(genre), Allowed: domain.GenreNames()}
	}

	raws, err := fetchPages(ctx,
		func(ctx context.Context, offset, limit int) ([]domain.RawTrack, error) {
			return b.client.FetchPage(ctx, coll, offset, limit)
		},
		pageOffsets(),
		PageSize,
	)
	if err != nil {
		return nil, stats, err
	}
	stats.Pages = PageCount
	stats.Fetched = len(raws)

	tracks := Previewable(NormalizeAll(raws))
	stats.Previewable = len(tracks)

	tracks = Dedupe(tracks)
	stats.Unique = len(tracks)

	Shuffle(b.shuffler, tracks)

	b.logger.Debug("built pool",
		"genre", genre,
		"fetched", stats.Fetched,
		"previewable", stats.Previewable,
		"unique", stats.Unique,
	)
	return tracks, stats, nil
}

// pageOffsets returns the offsets of the pages one build covers.
func pageOffsets() []int {
	offsets := make([]int, PageCount)
	for i := range offsets {
		offsets[i] = i * PageSize
	}
	return offsets
}

// fetchPages requests every offset concurrently and concatenates the pages in
// offset order. Short pages are kept as they are; any failure fails the lot.
func fetchPages[T any](
	ctx context.Context,
	fetch func(ctx context.Context, offset, limit int) ([]T, error),
	offsets []int,
	limit int,
) ([]T, error) {
	pages := make([][]T, len(offsets))

	g, gctx := errgroup.WithContext(ctx)
	for i, offset := range offsets {
		g.Go(func() error {
			items, err := fetch(gctx, offset, limit)
			if err != nil {
				return err
			}
			pages[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []T
	for _, page := range pages {
		all = append(all, page...)
	}
	return all, nil
}
