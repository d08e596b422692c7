package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/storage"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		file    string
		workers int
	)
	flag.StringVar(&file, "file", "", "Path to a JSON array of movies")
	flag.IntVar(&workers, "workers", 4, "Number of concurrent inserts")
	flag.Parse()

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

	if file == "" {
		log.Fatalw("missing -file")
	}

	ctx := context.Background()
	repo, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("cannot open movie store", "driver", cfg.Store.Driver, "error", err)
	}

	res, err := importFile(ctx, movie.NewUsecase(repo), file, workers, log)
	if cerr := closeStore(ctx); cerr != nil {
		log.Warnw("cannot close movie store", "error", cerr)
	}
	if err != nil {
		log.Fatalw("import failed", "created", res.created, "skipped", res.skipped, "error", err)
	}

	log.Infow("import completed", "created", res.created, "skipped", res.skipped)
}

// importFile seeds svc from the JSON array stored at path.
func importFile(ctx context.Context, svc movie.Service, path string, workers int, log *zap.SugaredLogger) (result, error) {
	movies, err := readMovies(path)
	if err != nil {
		return result{}, err
	}
	return seed(ctx, svc, movies, workers, log)
}

func readMovies(path string) ([]movie.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var movies []movie.Movie
	if err := json.NewDecoder(f).Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return movies, nil
}

type result struct {
	created int64
	skipped int64
}

// seed creates every movie whose title is not stored yet. Repeated titles in
// the input are only created once.
func seed(ctx context.Context, svc movie.Service, movies []movie.Movie, workers int, log *zap.SugaredLogger) (result, error) {
	var created, skipped atomic.Int64

	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	seen := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		if _, dup := seen[m.Title]; dup {
			skipped.Add(1)
			continue
		}
		seen[m.Title] = struct{}{}

		g.Go(func() error {
			_, err := svc.GetMovieByTitle(gctx, m.Title)
			switch {
			case err == nil:
				skipped.Add(1)
				return nil
			case !errors.Is(err, movie.ErrNotFound):
				return fmt.Errorf("lookup %q: %w", m.Title, err)
			}

			if _, err := svc.CreateMovie(gctx, m); err != nil {
				return fmt.Errorf("create %q: %w", m.Title, err)
			}
			created.Add(1)
			log.Debugw("movie created", "title", m.Title)
			return nil
		})
	}

	err := g.Wait()
	return result{created: created.Load(), skipped: skipped.Load()}, err
}
