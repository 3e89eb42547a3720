package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmcdole/tunepool/internal/domain"
	"github.com/mmcdole/tunepool/internal/pool"
)

// PoolService is the query surface the HTTP layer needs from the pool engine.
type PoolService interface {
	GetRandom(ctx context.Context, genre string, count int) ([]domain.Track, error)
	GetTopSample(ctx context.Context) ([]domain.Track, error)
	Refresh(ctx context.Context, genre string) (int, error)
	Warm(ctx context.Context, genres []domain.Genre, onResult pool.WarmFunc) int
	Pools() []pool.PoolInfo
	Clear(genre string) error
	ClearAll()
}

var _ PoolService = (*pool.Service)(nil)

const shutdownTimeout = 10 * time.Second

// Server exposes the pool engine over HTTP.
type Server struct {
	engine *gin.Engine
	pools  PoolService
	logger *slog.Logger
}

// New creates a Server with every route registered.
func New(pools PoolService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	s := &Server{engine: engine, pools: pools, logger: logger}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.health)

	api := s.engine.Group("/api")
	api.GET("/genres", s.listGenres)

	tracks := api.Group("/tracks")
	tracks.GET("/random", s.randomTracks)
	tracks.POST("/refresh", s.refreshGenre)
	tracks.GET("/top", s.topTracks)
	tracks.POST("/top/refresh", s.refreshTop)

	pools := api.Group("/pools")
	pools.GET("", s.listPools)
	pools.POST("/warm", s.warmPools)
	pools.DELETE("", s.clearAllPools)
	pools.DELETE("/:genre", s.clearPool)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
