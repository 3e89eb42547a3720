package main

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/tunepool/internal/catalog/deezer"
	"github.com/mmcdole/tunepool/internal/config"
	"github.com/mmcdole/tunepool/internal/log"
	"github.com/mmcdole/tunepool/internal/pool"
	"github.com/mmcdole/tunepool/internal/store"
)

// app is the wired engine shared by every subcommand.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	pools  *pool.Service
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	client := deezer.NewClient(cfg.Upstream.BaseURL, deezer.Options{
		Timeout:           cfg.Upstream.Timeout,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Burst:             cfg.Upstream.Burst,
	}, logger)

	st := store.NewPoolStore(cfg.Cache.TTL())
	builder := pool.NewBuilder(client, pool.NewShuffler(), logger)
	svc := pool.NewService(builder, st, cfg.Server.BuildTimeout, logger)

	logger.Debug("engine ready", "upstream", cfg.Upstream.BaseURL, "ttl", st.TTL())
	return &app{cfg: cfg, logger: logger, pools: svc}, nil
}
