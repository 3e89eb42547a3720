package pool

import (
	"strings"
	"time"

	"github.com/mmcdole/tunepool/internal/domain"
)

// PoolInfo describes one cached pool for administrative listings.
type PoolInfo struct {
	Genre     domain.Genre `json:"genre"`
	Size      int          `json:"size"`
	CreatedAt time.Time    `json:"createdAt"`
	ExpiresAt time.Time    `json:"expiresAt"`
	AgeSecs   int64        `json:"ageSeconds"`
	Stale     bool         `json:"stale"`
}

// Pools lists every cached pool. Cache-only; never touches the network.
func (s *Service) Pools() []PoolInfo {
	now := s.store.Now()

	var out []PoolInfo
	for _, key := range s.store.Keys() {
		entry, ok := s.store.Get(key)
		if !ok {
			continue
		}
		out = append(out, PoolInfo{
			Genre:     domain.Genre(strings.TrimPrefix(key, domain.PrefixPool)),
			Size:      entry.Size(),
			CreatedAt: entry.CreatedAt,
			ExpiresAt: entry.CreatedAt.Add(entry.TTL),
			AgeSecs:   int64(entry.Age(now) / time.Second),
			Stale:     s.store.IsExpired(entry),
		})
	}
	return out
}

// Clear drops the genre's cached pool; the next read rebuilds it.
func (s *Service) Clear(genre string) error {
	g, err := domain.ParseGenre(genre)
	if err != nil {
		return err
	}
	s.store.Clear(g.CacheKey())
	s.logger.Info("cleared pool", "genre", g)
	return nil
}
