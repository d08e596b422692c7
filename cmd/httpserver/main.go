package main

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"
	"moviecatalog/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := sentry.Init(cfg.AppEnv, cfg.SentryDSN); err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentry.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		sentry.Fatal(err)
		log.Fatalw("cannot open movie store", "driver", cfg.Store.Driver, "error", err)
	}

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(repo)),
	)
	if err != nil {
		sentry.Fatal(err)
		log.Fatalw("cannot build server", "error", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("server started", "addr", server.Addr, "driver", cfg.Store.Driver)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if cerr := closeStore(shutdownCtx); cerr != nil {
			log.Errorw("cannot close movie store", "error", cerr)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		sentry.Error(err)
		log.Errorw("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Infow("server stopped")
}
