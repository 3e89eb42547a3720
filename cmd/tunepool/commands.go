package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mmcdole/tunepool/internal/domain"
	"github.com/mmcdole/tunepool/internal/pool"
	"github.com/mmcdole/tunepool/internal/search"
	"github.com/mmcdole/tunepool/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveWarm bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		addr := a.cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a.logger.Info("starting tunepool", "version", Version, "ttl", a.cfg.Cache.TTL())
		if serveWarm {
			go a.pools.Warm(ctx, domain.Genres(), func(r pool.WarmResult) {
				if r.Err == nil {
					a.logger.Debug("warmed pool", "genre", r.Genre, "size", r.Size, "cached", r.FromCache)
				}
			})
		}
		return server.New(a.pools, a.logger).Run(ctx, addr)
	},
}

var (
	sampleGenre   string
	sampleCount   int
	sampleRefresh bool
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Build one genre pool and print a sample as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if sampleRefresh {
			size, err := a.pools.Refresh(ctx, sampleGenre)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "built %s pool of %d tracks\n", strings.ToLower(sampleGenre), size)
		}

		tracks, err := a.pools.GetRandom(ctx, sampleGenre, sampleCount)
		if err != nil {
			return describe(err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tracks)
	},
}

var genresCmd = &cobra.Command{
	Use:   "genres [query]",
	Short: "List supported genres, optionally fuzzy-filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) == 1 {
			query = args[0]
		}

		matches := search.Filter(query, domain.GenreNames())
		if len(matches) == 0 {
			return fmt.Errorf("no genre matches %q", query)
		}
		for _, m := range matches {
			fmt.Fprintln(cmd.OutOrStdout(), m.Name)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	serveCmd.Flags().BoolVar(&serveWarm, "warm", false, "build every genre pool in the background at startup")

	sampleCmd.Flags().StringVarP(&sampleGenre, "genre", "g", string(domain.GenrePop), "genre to sample")
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", pool.DefaultCount, "number of tracks (1-100)")
	sampleCmd.Flags().BoolVar(&sampleRefresh, "refresh", false, "force a rebuild first")
}

// describe adds a "did you mean" hint to unsupported-genre errors.
func describe(err error) error {
	var ge *domain.UnsupportedGenreError
	if !errors.As(err, &ge) {
		return err
	}
	if s, ok := search.Suggest(ge.Genre, ge.Allowed); ok {
		return fmt.Errorf("%w; did you mean %q?", err, s)
	}
	return err
}
