package pool

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/mmcdole/tunepool/internal/domain"
	"golang.org/x/sync/singleflight"
)

// DefaultBuildTimeout bounds one pool build when the caller configures none.
const DefaultBuildTimeout = 45 * time.Second

// Service orchestrates builder + store: cache-first sampling and forced refresh.
type Service struct {
	builder *Builder
	store   domain.PoolStore
	logger  *slog.Logger

	// One in-flight build per cache key, shared by passive and forced callers
	flights      singleflight.Group
	buildTimeout time.Duration
}

// NewService creates a new pool service.
func NewService(builder *Builder, store domain.PoolStore, buildTimeout time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if buildTimeout <= 0 {
		buildTimeout = DefaultBuildTimeout
	}
	return &Service{
		builder:      builder,
		store:        store,
		logger:       logger,
		buildTimeout: buildTimeout,
	}
}

// GetRandom returns up to count tracks from the genre's pool, building it
// first when it is absent or stale. count is clamped with ClampCount.
func (s *Service) GetRandom(ctx context.Context, genre string, count int) ([]domain.Track, error) {
	g, err := domain.ParseGenre(genre)
	if err != nil {
		return nil, err
	}
	count = ClampCount(count)

	entry, err := s.current(ctx, g)
	if err != nil {
		return nil, err
	}

	n := min(count, len(entry.Items))
	return slices.Clone(entry.Items[:n]), nil
}

// GetTopSample is the chart route: a fixed-size sample of the top genre.
func (s *Service) GetTopSample(ctx context.Context) ([]domain.Track, error) {
	return s.GetRandom(ctx, string(domain.GenreTop), LegacySampleSize)
}

// Refresh rebuilds the genre's pool regardless of its age and returns the new
// pool size. The stored entry gets a fresh TTL window.
func (s *Service) Refresh(ctx context.Context, genre string) (int, error) {
	g, err := domain.ParseGenre(genre)
	if err != nil {
		return 0, err
	}

	entry, err := s.rebuild(ctx, g)
	if err != nil {
		return 0, err
	}

	s.logger.Info("refreshed pool", "genre", g, "size", entry.Size())
	return entry.Size(), nil
}

// current returns a usable pool for g. A failed rebuild over a stale entry
// serves the stale entry; with no entry at all the error propagates.
func (s *Service) current(ctx context.Context, g domain.Genre) (domain.PoolEntry, error) {
	key := g.CacheKey()

	entry, ok := s.store.Get(key)
	if ok && !s.store.IsExpired(entry) {
		s.logger.Debug("cache hit", "key", key, "size", entry.Size())
		return entry, nil
	}

	s.logger.Debug("cache stale, building", "key", key, "present", ok)

	fresh, err := s.rebuild(ctx, g)
	if err != nil {
		if ok {
			s.logger.Warn("rebuild failed, serving stale pool", "key", key, "error", err)
			return entry, nil
		}
		return domain.PoolEntry{}, err
	}
	return fresh, nil
}

// rebuild builds and stores g's pool, joining an in-flight build for the same
// key if there is one. The build runs detached from ctx so one impatient
// caller cannot fail it for the others; ctx only bounds this caller's wait.
func (s *Service) rebuild(ctx context.Context, g domain.Genre) (domain.PoolEntry, error) {
	key := g.CacheKey()

	ch := s.flights.DoChan(key, func() (any, error) {
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.buildTimeout)
		defer cancel()

		items, stats, err := s.builder.Build(bctx, g)
		if err != nil {
			s.logger.Error("failed to build pool", "key", key, "error", err)
			return nil, err
		}

		s.store.Set(key, items, true)
		s.logger.Info("stored pool",
			"key", key,
			"fetched", stats.Fetched,
			"previewable", stats.Previewable,
			"size", stats.Unique,
		)

		if entry, ok := s.store.Get(key); ok {
			return entry, nil
		}
		return domain.PoolEntry{Key: key, Items: items}, nil
	})

	select {
	case <-ctx.Done():
		return domain.PoolEntry{}, fmt.Errorf("waiting for %s build: %w", key, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return domain.PoolEntry{}, res.Err
		}
		if res.Shared {
			s.logger.Debug("joined in-flight build", "key", key)
		}
		return res.Val.(domain.PoolEntry), nil
	}
}
