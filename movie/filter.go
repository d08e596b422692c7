package movie

import (
	"regexp"
	"strings"
)

// SearchFilter is the conjunction of the optional search parameters. An empty
// string means the parameter is absent; whitespace is kept as given.
type SearchFilter struct {
	Title    string
	Rating   string
	Category string
}

func NewSearchFilter(title, rating, category string) SearchFilter {
	return SearchFilter{
		Title:    title,
		Rating:   rating,
		Category: category,
	}
}

func (f SearchFilter) HasTitle() bool    { return f.Title != "" }
func (f SearchFilter) HasRating() bool   { return f.Rating != "" }
func (f SearchFilter) HasCategory() bool { return f.Category != "" }

// IsEmpty reports whether the filter matches every movie.
func (f SearchFilter) IsEmpty() bool {
	return !f.HasTitle() && !f.HasRating() && !f.HasCategory()
}

// TitlePattern returns the title as a regular expression source that matches
// it literally. Case folding is left to the caller (regex option "i").
func (f SearchFilter) TitlePattern() string {
	return regexp.QuoteMeta(f.Title)
}

// Match evaluates the filter against m in process.
func (f SearchFilter) Match(m Movie) bool {
	if f.HasTitle() && !containsFold(m.Title, f.Title) {
		return false
	}
	if f.HasRating() && m.Rating != f.Rating {
		return false
	}
	if f.HasCategory() && !m.HasCategory(f.Category) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
