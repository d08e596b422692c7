package movie

import "moviecatalog/errs"

var (
	ErrNotFound      = errs.Errorf(errs.ENOTFOUND, "movie not found")
	ErrMalformedBody = errs.Errorf(errs.EINVALID, "malformed movie body")
)

// Movie is the root document of the movies collection. Monetary fields are
// kept as the textual decimals clients send.
type Movie struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ReleaseYear     int        `json:"releaseYear"`
	RentalRate      string     `json:"rentalRate"`
	ReplacementCost string     `json:"replacementCost"`
	Rating          string     `json:"rating"`
	SpecialFeatures string     `json:"specialFeatures"`
	Language        string     `json:"language"`
	Categories      []Category `json:"categories"`
	Actors          []Actor    `json:"actors"`
}

type Category struct {
	Name string `json:"name"`
}

type Actor struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	LastUpdate string `json:"lastUpdate"`
}

// HasCategory reports whether one of the movie's categories is named name.
func (m Movie) HasCategory(name string) bool {
	for _, c := range m.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}
