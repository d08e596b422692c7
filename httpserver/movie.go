package httpserver

import (
	"moviecatalog/errs"
	"moviecatalog/movie"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.POST("", s.handleCreateMovie)
	g.GET("/search", s.handleSearchMovies)
	g.GET("/:id", s.handleGetMovie)
	g.PUT("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Return every movie in the catalog
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Failure 500 {object} map[string]string
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	movies, err := svc.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, movies)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 404
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	m, err := svc.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, m)
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Store a new movie. Any id in the body is ignored.
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie"
// @Success 201 {object} movie.Movie
// @Failure 400 {object} map[string]string
// @Router /api/movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	m, err := bindMovie(c)
	if err != nil {
		return err
	}

	created, err := svc.CreateMovie(c.Request().Context(), m)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusCreated, created)
}

// handleUpdateMovie godoc
// @Summary Replace Movie
// @Description Replace the whole movie document stored under id
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param movie body MovieRequest true "Movie"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} map[string]string
// @Failure 404
// @Router /api/movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	m, err := bindMovie(c)
	if err != nil {
		return err
	}

	updated, err := svc.UpdateMovie(c.Request().Context(), c.Param("id"), m)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, updated)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Deleting an unknown id also succeeds
// @Tags movies
// @Param id path string true "Movie ID"
// @Success 204
// @Router /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	if err := svc.DeleteMovie(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Filter by title substring (case-insensitive), exact rating and category name.
// @Description Omitted parameters do not constrain the result.
// @Tags movies
// @Produce json
// @Param title query string false "Title substring"
// @Param rating query string false "Exact rating"
// @Param category query string false "Category name"
// @Success 200 {array} movie.Movie
// @Router /api/movies/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	svc, err := s.movieService()
	if err != nil {
		return err
	}

	movies, err := svc.SearchMovies(c.Request().Context(),
		c.QueryParam("title"),
		c.QueryParam("rating"),
		c.QueryParam("category"),
	)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, movies)
}

// bindMovie decodes the request body. A missing body, a JSON null or anything
// that does not decode into a movie object is malformed.
func bindMovie(c echo.Context) (movie.Movie, error) {
	if c.Request().ContentLength == 0 {
		return movie.Movie{}, movie.ErrMalformedBody
	}

	var req *MovieRequest
	if err := new(echo.DefaultBinder).BindBody(c, &req); err != nil || req == nil {
		return movie.Movie{}, movie.ErrMalformedBody
	}
	return req.ToMovie(), nil
}

func (s *Server) movieService() (movie.Service, error) {
	if s.MovieService == nil {
		return nil, errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}
	return s.MovieService, nil
}
