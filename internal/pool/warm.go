package pool

import (
	"context"

	"github.com/mmcdole/tunepool/internal/domain"
	"golang.org/x/sync/errgroup"
)

// warmConcurrency bounds how many genre pools Warm builds at once.
const warmConcurrency = 4

// WarmResult reports the outcome of warming one genre.
type WarmResult struct {
	Genre     domain.Genre
	FromCache bool
	Size      int
	Err       error
}

// WarmFunc receives one WarmResult per genre, possibly from several goroutines.
type WarmFunc func(WarmResult)

// Warm makes sure every listed genre has a fresh pool, building stale or
// missing ones concurrently. A failing genre does not stop the others; the
// number of failures is returned.
func (s *Service) Warm(ctx context.Context, genres []domain.Genre, onResult WarmFunc) int {
	results := make([]WarmResult, len(genres))

	var g errgroup.Group
	g.SetLimit(warmConcurrency)
	for i, genre := range genres {
		g.Go(func() error {
			results[i] = s.warmOne(ctx, genre)
			if onResult != nil {
				onResult(results[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.logger.Info("warmed pools", "genres", len(genres), "failed", failed)
	return failed
}

func (s *Service) warmOne(ctx context.Context, genre domain.Genre) WarmResult {
	res := WarmResult{Genre: genre}
	if !genre.Valid() {
		res.Err = &domain.UnsupportedGenreError{Genre: string(genre), Allowed: domain.GenreNames()}
		return res
	}

	if entry, ok := s.store.Get(genre.CacheKey()); ok && !s.store.IsExpired(entry) {
		res.FromCache = true
		res.Size = entry.Size()
		return res
	}

	entry, err := s.rebuild(ctx, genre)
	if err != nil {
		s.logger.Warn("failed to warm pool", "genre", genre, "error", err)
		res.Err = err
		return res
	}
	res.Size = entry.Size()
	return res
}

// ClearAll drops every cached pool.
func (s *Service) ClearAll() {
	keys := s.store.Keys()
	for _, key := range keys {
		s.store.Clear(key)
	}
	s.logger.Info("cleared all pools", "count", len(keys))
}
