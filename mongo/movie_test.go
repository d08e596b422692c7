package mongo_test

import (
	"context"
	"moviecatalog/mongo"
	"moviecatalog/movie"
	"moviecatalog/movie/movietest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	mongocontainer "github.com/testcontainers/testcontainers-go/modules/mongodb"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
)

func TestMovieRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}

	client := CreateClient(t)
	const database = "catalog_test"

	movietest.RunRepositoryTests(t, func(t *testing.T) movie.Repository {
		ctx := context.Background()
		require.NoError(t, client.Database(database).Collection(mongo.MoviesCollection).Drop(ctx))

		repo, err := mongo.NewMovieRepository(client, database)
		require.NoError(t, err)
		return repo
	})
}

func TestNewMovieRepository_RequiresDatabase(t *testing.T) {
	_, err := mongo.NewMovieRepository(nil, " ")
	assert.Error(t, err)
}

func TestNewClient_Error(t *testing.T) {
	_, err := mongo.NewClient(context.Background(), mongo.Options{URI: ""})
	assert.Error(t, err)

	_, err = mongo.NewClient(context.Background(), mongo.Options{URI: "not-a-uri"})
	assert.Error(t, err)
}

func CreateClient(t testing.TB) *mongodriver.Client {
	t.Helper()
	ctx := context.Background()

	cont, err := mongocontainer.RunContainer(ctx, testcontainers.WithImage("mongo:7"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, cont.Terminate(ctx))
	})

	uri, err := cont.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.NewClient(ctx, mongo.Options{URI: uri, Database: "catalog_test"})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, client.Disconnect(ctx))
	})

	return client
}
