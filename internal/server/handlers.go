package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/mmcdole/tunepool/internal/domain"
	"github.com/mmcdole/tunepool/internal/pool"
	"github.com/mmcdole/tunepool/internal/search"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listGenres returns the supported genres, fuzzy-filtered by ?q= when given.
func (s *Server) listGenres(c *gin.Context) {
	matches := search.Filter(c.Query("q"), domain.GenreNames())

	genres := make([]string, len(matches))
	for i, m := range matches {
		genres[i] = m.Name
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

func (s *Server) randomTracks(c *gin.Context) {
	raw := c.Query("genre")
	count := pool.ParseCount(c.Query("count"))

	tracks, err := s.pools.GetRandom(c.Request.Context(), raw, count)
	if err != nil {
		s.writeError(c, err)
		return
	}

	g, _ := domain.ParseGenre(raw)
	c.JSON(http.StatusOK, gin.H{
		"genre":  g,
		"count":  len(tracks),
		"tracks": tracks,
	})
}

func (s *Server) refreshGenre(c *gin.Context) {
	raw := c.Query("genre")

	size, err := s.pools.Refresh(c.Request.Context(), raw)
	if err != nil {
		s.writeError(c, err)
		return
	}

	g, _ := domain.ParseGenre(raw)
	c.JSON(http.StatusOK, gin.H{"genre": g, "size": size})
}

func (s *Server) topTracks(c *gin.Context) {
	tracks, err := s.pools.GetTopSample(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tracks), "tracks": tracks})
}

func (s *Server) refreshTop(c *gin.Context) {
	size, err := s.pools.Refresh(c.Request.Context(), string(domain.GenreTop))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"genre": domain.GenreTop, "size": size})
}

func (s *Server) listPools(c *gin.Context) {
	pools := s.pools.Pools()
	if pools == nil {
		pools = []pool.PoolInfo{}
	}
	c.JSON(http.StatusOK, gin.H{"pools": pools})
}

type warmResult struct {
	Genre     domain.Genre `json:"genre"`
	FromCache bool         `json:"fromCache"`
	Size      int          `json:"size"`
	Error     string       `json:"error,omitempty"`
}

// warmPools builds every stale or missing pool, or only ?genre= values when given.
func (s *Server) warmPools(c *gin.Context) {
	genres := domain.Genres()
	if raw := c.QueryArray("genre"); len(raw) > 0 {
		genres = genres[:0]
		for _, r := range raw {
			g, err := domain.ParseGenre(r)
			if err != nil {
				s.writeError(c, err)
				return
			}
			genres = append(genres, g)
		}
	}

	var mu sync.Mutex
	results := make([]warmResult, 0, len(genres))
	failed := s.pools.Warm(c.Request.Context(), genres, func(r pool.WarmResult) {
		res := warmResult{Genre: r.Genre, FromCache: r.FromCache, Size: r.Size}
		if r.Err != nil {
			res.Error = r.Err.Error()
		}
		mu.Lock()
		results = append(results, res)
		mu.Unlock()
	})

	slices.SortFunc(results, func(a, b warmResult) int { return strings.Compare(string(a.Genre), string(b.Genre)) })
	c.JSON(http.StatusOK, gin.H{"failed": failed, "results": results})
}

func (s *Server) clearAllPools(c *gin.Context) {
	s.pools.ClearAll()
	c.Status(http.StatusNoContent)
}

func (s *Server) clearPool(c *gin.Context) {
	if err := s.pools.Clear(c.Param("genre")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps engine errors onto HTTP responses.
func (s *Server) writeError(c *gin.Context, err error) {
	reqID := c.GetString(ctxKeyRequestID)

	var genreErr *domain.UnsupportedGenreError
	switch {
	case errors.As(err, &genreErr):
		body := gin.H{
			"error":      "unsupported genre",
			"genre":      genreErr.Genre,
			"allowed":    genreErr.Allowed,
			"request_id": reqID,
		}
		if suggestion, ok := search.Suggest(genreErr.Genre, genreErr.Allowed); ok {
			body["suggestion"] = suggestion
		}
		c.JSON(http.StatusBadRequest, body)

	case errors.Is(err, domain.ErrUpstream):
		s.logger.Error("upstream failure", "error", err, "request_id", reqID)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream catalog unavailable", "request_id": reqID})

	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "timed out building pool", "request_id": reqID})

	default:
		s.logger.Error("request failed", "error", err, "request_id", reqID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "request_id": reqID})
	}
}
