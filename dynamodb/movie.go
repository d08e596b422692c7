package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/movie"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MovieRepository implements movie.Repository on a table keyed by the string
// attribute "id". Searches are table scans.
type MovieRepository struct {
	client *dynamodb.Client
	table  string
	newID  func() string
}

type movieItem struct {
	ID              string         `dynamodbav:"id"`
	Title           string         `dynamodbav:"title"`
	Description     string         `dynamodbav:"description"`
	ReleaseYear     int            `dynamodbav:"releaseYear"`
	RentalRate      string         `dynamodbav:"rentalRate"`
	ReplacementCost string         `dynamodbav:"replacementCost"`
	Rating          string         `dynamodbav:"rating"`
	SpecialFeatures string         `dynamodbav:"specialFeatures"`
	Language        string         `dynamodbav:"language"`
	Categories      []categoryItem `dynamodbav:"categories"`
	Actors          []actorItem    `dynamodbav:"actors"`
}

type categoryItem struct {
	Name string `dynamodbav:"name"`
}

type actorItem struct {
	FirstName  string `dynamodbav:"firstName"`
	LastName   string `dynamodbav:"lastName"`
	LastUpdate string `dynamodbav:"lastUpdate"`
}

func NewMovieRepository(client *dynamodb.Client, table string) *MovieRepository {
	return &MovieRepository{
		client: client,
		table:  table,
		newID:  uuid.NewString,
	}
}

func (r *MovieRepository) Insert(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	m.ID = r.newID()
	if err := r.put(ctx, m, "attribute_not_exists(id)"); err != nil {
		return movie.Movie{}, err
	}
	return m, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (movie.Movie, error) {
	if err := validateTable(r.table); err != nil {
		return movie.Movie{}, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.table,
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: get movie: %w", err)
	}
	if len(out.Item) == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}

	var item movieItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: unmarshal movie: %w", err)
	}

	return item.toMovie(), nil
}

func (r *MovieRepository) ReplaceByID(ctx context.Context, id string, m movie.Movie) (movie.Movie, error) {
	m.ID = id
	err := r.put(ctx, m, "attribute_exists(id)")
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return movie.Movie{}, movie.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, err
	}
	return m, nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) error {
	if err := validateTable(r.table); err != nil {
		return err
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &r.table,
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("dynamodb: delete movie: %w", err)
	}

	return nil
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]movie.Movie, error) {
	return r.scan(ctx, nil, nil, 0)
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (movie.Movie, error) {
	cond := expression.Name("title").Equal(expression.Value(title))
	movies, err := r.scan(ctx, &cond, nil, 1)
	if err != nil {
		return movie.Movie{}, err
	}
	if len(movies) == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}
	return movies[0], nil
}

// FindByFilter pushes the rating equality down to the scan. DynamoDB has no
// case-insensitive contains and cannot test a field of a list element, so the
// full filter is evaluated on every returned item.
func (r *MovieRepository) FindByFilter(ctx context.Context, f movie.SearchFilter) ([]movie.Movie, error) {
	var cond *expression.ConditionBuilder
	if f.HasRating() {
		c := expression.Name("rating").Equal(expression.Value(f.Rating))
		cond = &c
	}
	return r.scan(ctx, cond, f.Match, 0)
}

func (r *MovieRepository) put(ctx context.Context, m movie.Movie, condition string) error {
	if err := validateTable(r.table); err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(newMovieItem(m))
	if err != nil {
		return fmt.Errorf("dynamodb: marshal movie: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.table,
		Item:                av,
		ConditionExpression: aws.String(condition),
	})
	if err != nil {
		return fmt.Errorf("dynamodb: put movie: %w", err)
	}

	return nil
}

// scan reads the whole table, keeping items that satisfy cond server side and
// keep client side. A positive limit stops the scan once that many movies
// were collected.
func (r *MovieRepository) scan(
	ctx context.Context,
	cond *expression.ConditionBuilder,
	keep func(movie.Movie) bool,
	limit int,
) ([]movie.Movie, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	input := &dynamodb.ScanInput{
		TableName:      &r.table,
		ConsistentRead: aws.Bool(true),
	}
	if cond != nil {
		expr, err := expression.NewBuilder().WithFilter(*cond).Build()
		if err != nil {
			return nil, fmt.Errorf("dynamodb: build filter: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	movies := []movie.Movie{}
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan movies: %w", err)
		}

		var items []movieItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal movies: %w", err)
		}

		for _, item := range items {
			m := item.toMovie()
			if keep != nil && !keep(m) {
				continue
			}
			movies = append(movies, m)
			if limit > 0 && len(movies) >= limit {
				return movies, nil
			}
		}
	}

	return movies, nil
}

func newMovieItem(m movie.Movie) movieItem {
	item := movieItem{
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
		item.Categories = make([]categoryItem, len(m.Categories))
		for i, c := range m.Categories {
			item.Categories[i] = categoryItem{Name: c.Name}
		}
	}
	if m.Actors != nil {
		item.Actors = make([]actorItem, len(m.Actors))
		for i, a := range m.Actors {
			item.Actors[i] = actorItem(a)
		}
	}
	return item
}

func (item movieItem) toMovie() movie.Movie {
	m := movie.Movie{
		ID:              item.ID,
		Title:           item.Title,
		Description:     item.Description,
		ReleaseYear:     item.ReleaseYear,
		RentalRate:      item.RentalRate,
		ReplacementCost: item.ReplacementCost,
		Rating:          item.Rating,
		SpecialFeatures: item.SpecialFeatures,
		Language:        item.Language,
	}
	if item.Categories != nil {
		m.Categories = make([]movie.Category, len(item.Categories))
		for i, c := range item.Categories {
			m.Categories[i] = movie.Category{Name: c.Name}
		}
	}
	if item.Actors != nil {
		m.Actors = make([]movie.Actor, len(item.Actors))
		for i, a := range item.Actors {
			m.Actors[i] = movie.Actor(a)
		}
	}
	return m
}
