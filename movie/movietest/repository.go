// Package movietest holds the behaviour every movie.Repository backend must
// show. Backend tests call RunRepositoryTests with a factory returning an
// empty store.
package movietest

import (
	"context"
	"moviecatalog/movie"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewRepository must return a repository over an empty collection.
type NewRepository func(t *testing.T) movie.Repository

func FullMovie() movie.Movie {
	return movie.Movie{
		Title:           "Academy Dinosaur",
		Description:     "A Epic Drama of a Feminist And a Mad Scientist",
		ReleaseYear:     2006,
		RentalRate:      "0.99",
		ReplacementCost: "20.99",
		Rating:          "PG",
		SpecialFeatures: "Deleted Scenes,Behind the Scenes",
		Language:        "English",
		Categories:      []movie.Category{{Name: "Documentary"}, {Name: "Drama"}},
		Actors: []movie.Actor{
			{FirstName: "PENELOPE", LastName: "GUINESS", LastUpdate: "2006-02-15 04:34:33"},
			{FirstName: "CHRISTIAN", LastName: "GABLE", LastUpdate: "2006-02-15 04:34:33"},
		},
	}
}

// nolint: funlen
func RunRepositoryTests(t *testing.T, newRepo NewRepository) {
	ctx := context.Background()

	t.Run("insert assigns id and round trips", func(t *testing.T) {
		repo := newRepo(t)
		in := FullMovie()

		created, err := repo.Insert(ctx, in)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)

		expected := in
		expected.ID = created.ID
		assert.Equal(t, expected, found)
		assert.Equal(t, expected, created)
	})

	t.Run("insert assigns unique ids", func(t *testing.T) {
		repo := newRepo(t)

		a, err := repo.Insert(ctx, movie.Movie{Title: "Test Movie"})
		require.NoError(t, err)
		b, err := repo.Insert(ctx, movie.Movie{Title: "Test Movie"})
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("find by id returns not found for unknown and malformed ids", func(t *testing.T) {
		repo := newRepo(t)

		for _, id := range []string{"does-not-exist", "65f1c0ffee0000000000beef", "%$#", " "} {
			_, err := repo.FindByID(ctx, id)
			assert.ErrorIs(t, err, movie.ErrNotFound, "id %q", id)
		}
	})

	t.Run("replace overwrites the whole document", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Insert(ctx, FullMovie())
		require.NoError(t, err)

		replacement := movie.Movie{ID: created.ID, Title: "Updated Movie", Categories: []movie.Category{{Name: "Comedy"}}}
		replaced, err := repo.ReplaceByID(ctx, created.ID, replacement)
		require.NoError(t, err)
		assert.Equal(t, replacement, replaced)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, replacement, found)
	})

	t.Run("replace of missing id does not insert", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.ReplaceByID(ctx, "does-not-exist", movie.Movie{ID: "does-not-exist", Title: "Ghost"})
		assert.ErrorIs(t, err, movie.ErrNotFound)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Insert(ctx, movie.Movie{Title: "Test Movie"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteByID(ctx, created.ID))
		require.NoError(t, repo.DeleteByID(ctx, created.ID))

		_, err = repo.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, movie.ErrNotFound)
	})

	t.Run("find all on empty collection returns empty slice", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("find by title is exact and case-sensitive", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Insert(ctx, movie.Movie{Title: "Test Movie"})
		require.NoError(t, err)

		found, err := repo.FindByTitle(ctx, "Test Movie")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		_, err = repo.FindByTitle(ctx, "test movie")
		assert.ErrorIs(t, err, movie.ErrNotFound)
		_, err = repo.FindByTitle(ctx, "Test")
		assert.ErrorIs(t, err, movie.ErrNotFound)
	})

	t.Run("search", func(t *testing.T) {
		repo := newRepo(t)
		seed := []movie.Movie{
			{Title: "The Matrix", Rating: "R", Categories: []movie.Category{{Name: "Action"}, {Name: "Sci-Fi"}}},
			{Title: "The Matrix Reloaded", Rating: "R", Categories: []movie.Category{{Name: "Action"}}},
			{Title: "Amelie", Rating: "R", Categories: []movie.Category{{Name: "Drama"}}},
			{Title: "Toy Story", Rating: "G", Categories: []movie.Category{{Name: "Animation"}}},
			{Title: "What? (1.5)", Rating: "PG"},
		}
		for _, m := range seed {
			_, err := repo.Insert(ctx, m)
			require.NoError(t, err)
		}

		tests := []struct {
			name     string
			filter   movie.SearchFilter
			expected []string
		}{
			{
				name:     "empty filter returns all",
				filter:   movie.SearchFilter{},
				expected: []string{"Amelie", "The Matrix", "The Matrix Reloaded", "Toy Story", "What? (1.5)"},
			},
			{
				name:     "nested category",
				filter:   movie.SearchFilter{Category: "Drama"},
				expected: []string{"Amelie"},
			},
			{
				name:     "case-insensitive title substring",
				filter:   movie.SearchFilter{Title: "matrix"},
				expected: []string{"The Matrix", "The Matrix Reloaded"},
			},
			{
				name:     "title metacharacters are literal",
				filter:   movie.SearchFilter{Title: "? (1.5"},
				expected: []string{"What? (1.5)"},
			},
			{
				name:     "wildcard title matches nothing",
				filter:   movie.SearchFilter{Title: ".*"},
				expected: []string{},
			},
			{
				name:     "conjunction",
				filter:   movie.SearchFilter{Title: "the", Rating: "R", Category: "Sci-Fi"},
				expected: []string{"The Matrix"},
			},
			{
				name:     "rating is case-sensitive",
				filter:   movie.SearchFilter{Rating: "g"},
				expected: []string{},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result, err := repo.FindByFilter(ctx, tt.filter)
				require.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.expected, Titles(result))
				for _, m := range result {
					assert.True(t, tt.filter.Match(m), "%q should match %+v", m.Title, tt.filter)
				}
			})
		}
	})
}

// Titles returns the sorted titles of movies, for order-insensitive comparison.
func Titles(movies []movie.Movie) []string {
	titles := make([]string, 0, len(movies))
	for _, m := range movies {
		titles = append(titles, m.Title)
	}
	sort.Strings(titles)
	return titles
}
