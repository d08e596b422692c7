package mongo

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/movie"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const MoviesCollection = "movies"

// MovieRepository implements movie.Repository on a MongoDB collection.
// Documents are keyed by the hex form of an ObjectID stored as a plain string,
// so any id a client sends is a valid lookup key.
type MovieRepository struct {
	collection *mongo.Collection
}

type movieDocument struct {
	ID              string             `bson:"_id"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	ReleaseYear     int                `bson:"releaseYear"`
	RentalRate      string             `bson:"rentalRate"`
	ReplacementCost string             `bson:"replacementCost"`
	Rating          string             `bson:"rating"`
	SpecialFeatures string             `bson:"specialFeatures"`
	Language        string             `bson:"language"`
	Categories      []categoryDocument `bson:"categories"`
	Actors          []actorDocument    `bson:"actors"`
}

type categoryDocument struct {
	Name string `bson:"name"`
}

type actorDocument struct {
	FirstName  string `bson:"firstName"`
	LastName   string `bson:"lastName"`
	LastUpdate string `bson:"lastUpdate"`
}

func NewMovieRepository(client *mongo.Client, database string) (*MovieRepository, error) {
	if err := validateDatabase(database); err != nil {
		return nil, err
	}
	return &MovieRepository{
		collection: client.Database(database).Collection(MoviesCollection),
	}, nil
}

func (r *MovieRepository) Insert(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	doc := toDocument(m)
	doc.ID = bson.NewObjectID().Hex()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return movie.Movie{}, fmt.Errorf("mongo: insert movie: %w", err)
	}

	return fromDocument(doc), nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (movie.Movie, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *MovieRepository) ReplaceByID(ctx context.Context, id string, m movie.Movie) (movie.Movie, error) {
	doc := toDocument(m)
	doc.ID = id

	res, err := r.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("mongo: replace movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}

	return fromDocument(doc), nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return fmt.Errorf("mongo: delete movie: %w", err)
	}
	return nil
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]movie.Movie, error) {
	return r.find(ctx, bson.D{})
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (movie.Movie, error) {
	return r.findOne(ctx, bson.D{{Key: "title", Value: title}})
}

func (r *MovieRepository) FindByFilter(ctx context.Context, f movie.SearchFilter) ([]movie.Movie, error) {
	return r.find(ctx, searchQuery(f))
}

func (r *MovieRepository) findOne(ctx context.Context, filter bson.D) (movie.Movie, error) {
	var doc movieDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return movie.Movie{}, movie.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, fmt.Errorf("mongo: find movie: %w", err)
	}

	return fromDocument(doc), nil
}

func (r *MovieRepository) find(ctx context.Context, filter bson.D) ([]movie.Movie, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: find movies: %w", err)
	}

	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode movies: %w", err)
	}

	movies := make([]movie.Movie, 0, len(docs))
	for _, doc := range docs {
		movies = append(movies, fromDocument(doc))
	}
	return movies, nil
}

func toDocument(m movie.Movie) movieDocument {
	doc := movieDocument{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		ReleaseYear:     m.ReleaseYear,
		RentalRate:      m.RentalRate,
		ReplacementCost: m.ReplacementCost,
		Rating:          m.Rating,
		SpecialFeatures: m.SpecialFeatures,
		Language:        m.Language,
	}
	if m.Categories != nil {
		doc.Categories = make([]categoryDocument, len(m.Categories))
		for i, c := range m.Categories {
			doc.Categories[i] = categoryDocument{Name: c.Name}
		}
	}
	if m.Actors != nil {
		doc.Actors = make([]actorDocument, len(m.Actors))
		for i, a := range m.Actors {
			doc.Actors[i] = actorDocument{
				FirstName:  a.FirstName,
				LastName:   a.LastName,
				LastUpdate: a.LastUpdate,
			}
		}
	}
	return doc
}

func fromDocument(doc movieDocument) movie.Movie {
	m := movie.Movie{
		ID:              doc.ID,
		Title:           doc.Title,
		Description:     doc.Description,
		ReleaseYear:     doc.ReleaseYear,
		RentalRate:      doc.RentalRate,
		ReplacementCost: doc.ReplacementCost,
		Rating:          doc.Rating,
		SpecialFeatures: doc.SpecialFeatures,
		Language:        doc.Language,
	}
	if doc.Categories != nil {
		m.Categories = make([]movie.Category, len(doc.Categories))
		for i, c := range doc.Categories {
			m.Categories[i] = movie.Category{Name: c.Name}
		}
	}
	if doc.Actors != nil {
		m.Actors = make([]movie.Actor, len(doc.Actors))
		for i, a := range doc.Actors {
			m.Actors[i] = movie.Actor{
				FirstName:  a.FirstName,
				LastName:   a.LastName,
				LastUpdate: a.LastUpdate,
			}
		}
	}
	return m
}
