// Package storage opens the movie.Repository selected by STORE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"moviecatalog/dynamodb"
	"moviecatalog/mongo"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/postgres"
	"strconv"
)

// Closer releases the connections behind a repository.
type Closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

func Open(ctx context.Context, cfg *config.Config) (movie.Repository, Closer, error) {
	switch cfg.Store.Driver {
	case "", config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverDynamoDB:
		return openDynamoDB(ctx, cfg)
	case config.DriverPostgres:
		return openPostgres(cfg)
	}
	return nil, nil, fmt.Errorf("storage: unknown driver %q", cfg.Store.Driver)
}

func openMongo(ctx context.Context, cfg *config.Config) (movie.Repository, Closer, error) {
	client, err := mongo.NewClient(ctx, mongo.Options{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, nil, err
	}

	repo, err := mongo.NewMovieRepository(client, cfg.Mongo.Database)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}
	return repo, client.Disconnect, nil
}

func openDynamoDB(ctx context.Context, cfg *config.Config) (movie.Repository, Closer, error) {
	repo, err := dynamodb.Open(ctx, dynamodb.Options{
		Region:       cfg.DynamoDB.Region,
		Endpoint:     cfg.DynamoDB.Endpoint,
		AccessKey:    cfg.DynamoDB.AccessKey,
		SecretKey:    cfg.DynamoDB.SecretKey,
		SessionToken: cfg.DynamoDB.SessionToken,
		MoviesTable:  cfg.DynamoDB.MoviesTable,
		CreateTable:  cfg.DynamoDB.CreateTable,
	})
	if err != nil {
		return nil, nil, err
	}
	return repo, noopCloser, nil
}

func openPostgres(cfg *config.Config) (movie.Repository, Closer, error) {
	db, err := postgres.NewConnection(PostgresOptions(cfg))
	if err != nil {
		return nil, nil, err
	}

	closer := func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return postgres.NewMovieRepository(db), closer, nil
}

// PostgresOptions maps the DB_* settings onto connection options. The
// migrate command shares it.
func PostgresOptions(cfg *config.Config) postgres.Options {
	return postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
		Verbose:  cfg.AppEnv == "local",
	}
}
