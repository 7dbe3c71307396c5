package main

import (
	"context"
	"fmt"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/mongodb"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/pkg/database"
)

// stores bundles the repositories of the configured backend with its shutdown hook.
type stores struct {
	jobs         domain.JobRepository
	applications domain.ApplicationRepository
	users        domain.UserRepository
	pinger       domain.Pinger
	close        func(context.Context) error
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, err := database.NewMongoConnection(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store := mongodb.NewStore(client, cfg.MongoDatabase)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			jobs:         mongodb.NewJobRepository(store),
			applications: mongodb.NewApplicationRepository(store),
			users:        mongodb.NewUserRepository(store),
			pinger:       store,
			close:        client.Disconnect,
		}, nil

	case config.StoreDriverPostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		if err := postgres.Bootstrap(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &stores{
			jobs:         postgres.NewJobRepository(pool),
			applications: postgres.NewApplicationRepository(pool),
			users:        postgres.NewUserRepository(pool),
			pinger:       postgres.NewPinger(pool),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
