package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (Movie, error)
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, id string, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
	SearchMovies(ctx context.Context, title, rating, category string) ([]Movie, error)
}

// Repository is implemented by every document store backend. Lookups of
// missing ids return ErrNotFound; DeleteByID of a missing id is not an error.
// Implementations must be safe for concurrent use.
type Repository interface {
	Insert(ctx context.Context, m Movie) (Movie, error)
	FindByID(ctx context.Context, id string) (Movie, error)
	ReplaceByID(ctx context.Context, id string, m Movie) (Movie, error)
	DeleteByID(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]Movie, error)
	FindByTitle(ctx context.Context, title string) (Movie, error)
	FindByFilter(ctx context.Context, f SearchFilter) ([]Movie, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.FindAll(ctx)
}

func (uc *Usecase) GetMovie(ctx context.Context, id string) (Movie, error) {
	return uc.r.FindByID(ctx, id)
}

func (uc *Usecase) GetMovieByTitle(ctx context.Context, title string) (Movie, error) {
	return uc.r.FindByTitle(ctx, title)
}

func (uc *Usecase) CreateMovie(ctx context.Context, m Movie) (Movie, error) {
	m.ID = ""
	return uc.r.Insert(ctx, m)
}

// UpdateMovie replaces the movie stored under id. The read and the write are
// not coupled, so a concurrent update may be overwritten.
func (uc *Usecase) UpdateMovie(ctx context.Context, id string, m Movie) (Movie, error) {
	if _, err := uc.r.FindByID(ctx, id); err != nil {
		return Movie{}, err
	}

	m.ID = id
	return uc.r.ReplaceByID(ctx, id, m)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id string) error {
	return uc.r.DeleteByID(ctx, id)
}

func (uc *Usecase) SearchMovies(ctx context.Context, title, rating, category string) ([]Movie, error) {
	return uc.r.FindByFilter(ctx, NewSearchFilter(title, rating, category))
}
