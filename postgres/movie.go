package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"moviecatalog/movie"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovieModel keeps each movie as a JSONB document next to its primary key.
// The document mirrors the API representation, id included.
type MovieModel struct {
	ID       string `gorm:"primaryKey"`
	Document string `gorm:"type:jsonb;not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository on top of the movies table.
type MovieRepository struct {
	db    *gorm.DB
	newID func() string
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db, newID: uuid.NewString}
}

func (r *MovieRepository) Insert(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	m.ID = r.newID()
	model, err := toModel(m)
	if err != nil {
		return movie.Movie{}, err
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, fmt.Errorf("postgres: insert movie: %w", err)
	}
	return m, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (movie.Movie, error) {
	return r.take(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *MovieRepository) ReplaceByID(ctx context.Context, id string, m movie.Movie) (movie.Movie, error) {
	m.ID = id
	model, err := toModel(m)
	if err != nil {
		return movie.Movie{}, err
	}

	res := r.db.WithContext(ctx).Model(&MovieModel{}).Where("id = ?", id).Update("document", model.Document)
	if res.Error != nil {
		return movie.Movie{}, fmt.Errorf("postgres: replace movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}
	return m, nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MovieModel{}).Error; err != nil {
		return fmt.Errorf("postgres: delete movie: %w", err)
	}
	return nil
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]movie.Movie, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (movie.Movie, error) {
	return r.take(r.db.WithContext(ctx).Where("document->>'title' = ?", title))
}

func (r *MovieRepository) FindByFilter(ctx context.Context, f movie.SearchFilter) ([]movie.Movie, error) {
	q, err := searchScope(r.db.WithContext(ctx), f)
	if err != nil {
		return nil, err
	}
	return r.find(q)
}

// searchScope adds one WHERE clause per present parameter; gorm joins them
// with AND.
func searchScope(q *gorm.DB, f movie.SearchFilter) (*gorm.DB, error) {
	if f.HasTitle() {
		q = q.Where(`document->>'title' ILIKE ? ESCAPE '\'`, "%"+escapeLike(f.Title)+"%")
	}

	if f.HasRating() {
		q = q.Where("document->>'rating' = ?", f.Rating)
	}

	if f.HasCategory() {
		contains, err := json.Marshal([]movie.Category{{Name: f.Category}})
		if err != nil {
			return nil, fmt.Errorf("postgres: marshal category filter: %w", err)
		}
		q = q.Where("document->'categories' @> ?::jsonb", string(contains))
	}

	return q, nil
}

func (r *MovieRepository) take(q *gorm.DB) (movie.Movie, error) {
	var model MovieModel
	err := q.Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return movie.Movie{}, movie.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, fmt.Errorf("postgres: find movie: %w", err)
	}
	return fromModel(model)
}

func (r *MovieRepository) find(q *gorm.DB) ([]movie.Movie, error) {
	var models []MovieModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("postgres: find movies: %w", err)
	}

	movies := make([]movie.Movie, 0, len(models))
	for _, model := range models {
		m, err := fromModel(model)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toModel(m movie.Movie) (MovieModel, error) {
	doc, err := json.Marshal(m)
	if err != nil {
		return MovieModel{}, fmt.Errorf("postgres: marshal movie: %w", err)
	}
	return MovieModel{ID: m.ID, Document: string(doc)}, nil
}

func fromModel(model MovieModel) (movie.Movie, error) {
	var m movie.Movie
	if err := json.Unmarshal([]byte(model.Document), &m); err != nil {
		return movie.Movie{}, fmt.Errorf("postgres: unmarshal movie %s: %w", model.ID, err)
	}
	m.ID = model.ID
	return m, nil
}
