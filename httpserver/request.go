package httpserver

import (
	"moviecatalog/movie"
)

// MovieRequest is the body of create and update calls. It has no id field:
// the server assigns ids on create and takes them from the path on update.
type MovieRequest struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	ReleaseYear     int              `json:"releaseYear"`
	RentalRate      string           `json:"rentalRate"`
	ReplacementCost string           `json:"replacementCost"`
	Rating          string           `json:"rating"`
	SpecialFeatures string           `json:"specialFeatures"`
	Language        string           `json:"language"`
	Categories      []movie.Category `json:"categories"`
	Actors          []movie.Actor    `json:"actors"`
}

func (r MovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title:           r.Title,
		Description:     r.Description,
		ReleaseYear:     r.ReleaseYear,
		RentalRate:      r.RentalRate,
		ReplacementCost: r.ReplacementCost,
		Rating:          r.Rating,
		SpecialFeatures: r.SpecialFeatures,
		Language:        r.Language,
		Categories:      r.Categories,
		Actors:          r.Actors,
	}
}
