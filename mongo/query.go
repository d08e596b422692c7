package mongo

import (
	"moviecatalog/movie"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// searchQuery compiles f into a conjunctive find filter. Mongo ANDs the top
// level keys, and an empty document matches the whole collection.
func searchQuery(f movie.SearchFilter) bson.D {
	query := bson.D{}

	if f.HasTitle() {
		query = append(query, bson.E{
			Key:   "title",
			Value: bson.Regex{Pattern: f.TitlePattern(), Options: "i"},
		})
	}

	if f.HasRating() {
		query = append(query, bson.E{Key: "rating", Value: f.Rating})
	}

	// Equality on a path through an array matches when any element matches.
	if f.HasCategory() {
		query = append(query, bson.E{Key: "categories.name", Value: f.Category})
	}

	return query
}
