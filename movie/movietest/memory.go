package movietest

import (
	"context"
	"moviecatalog/movie"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-process movie.Repository for handler and
// usecase tests that need real store semantics without a container.
type MemoryRepository struct {
	mu     sync.RWMutex
	order  []string
	movies map[string]movie.Movie
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{movies: make(map[string]movie.Movie)}
}

func (r *MemoryRepository) Insert(_ context.Context, m movie.Movie) (movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = uuid.NewString()
	r.movies[m.ID] = clone(m)
	r.order = append(r.order, m.ID)
	return clone(m), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (movie.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.movies[id]
	if !ok {
		return movie.Movie{}, movie.ErrNotFound
	}
	return clone(m), nil
}

func (r *MemoryRepository) ReplaceByID(_ context.Context, id string, m movie.Movie) (movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return movie.Movie{}, movie.ErrNotFound
	}
	m.ID = id
	r.movies[id] = clone(m)
	return clone(m), nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return nil
	}
	delete(r.movies, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]movie.Movie, error) {
	return r.FindByFilter(ctx, movie.SearchFilter{})
}

func (r *MemoryRepository) FindByTitle(_ context.Context, title string) (movie.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if m := r.movies[id]; m.Title == title {
			return clone(m), nil
		}
	}
	return movie.Movie{}, movie.ErrNotFound
}

func (r *MemoryRepository) FindByFilter(_ context.Context, f movie.SearchFilter) ([]movie.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]movie.Movie, 0, len(r.order))
	for _, id := range r.order {
		if m := r.movies[id]; f.Match(m) {
			out = append(out, clone(m))
		}
	}
	return out, nil
}

func clone(m movie.Movie) movie.Movie {
	m.Categories = slices.Clone(m.Categories)
	m.Actors = slices.Clone(m.Actors)
	return m
}
