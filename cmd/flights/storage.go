package main

import (
	"context"
	"fmt"

	"flights/internal/domain/repository"
	"flights/internal/infrastructure/config"
	"flights/internal/infrastructure/persistence"
	repo "flights/internal/interface/repository"
	"flights/pkg/logger"
	"flights/pkg/utils"
)

// openRepository builds the configured backend for the list called filename
func openRepository(ctx context.Context, cfg *config.Config, filename string, log logger.Logger) (repository.FlightRepository, error) {
	switch cfg.Backend {
	case config.BackendJSON, "":
		dataDir, err := cfg.ResolveDataDir()
		if err != nil {
			return nil, err
		}
		path, err := utils.ResolveDataPath(dataDir, filename)
		if err != nil {
			return nil, err
		}
		return repo.NewJSONFlightRepository(path, log), nil

	case config.BackendMongo:
		log.Debug("Connecting to MongoDB", "database", cfg.MongoDB)
		client, db, err := persistence.NewMongoClient(ctx, persistence.MongoOptions{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDB,
			Username: cfg.MongoUser,
			Password: cfg.MongoPassword,
			Timeout:  cfg.StorageTimeout,
		})
		if err != nil {
			return nil, err
		}
		return repo.NewMongoFlightRepository(client, db, filename, log), nil

	case config.BackendPostgres:
		log.Debug("Connecting to PostgreSQL")
		db, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			return nil, err
		}
		r := repo.NewGormFlightRepository(db, filename, log)

		if err := r.Migrate(ctx); err != nil {
			_ = r.Close(ctx)
			return nil, err
		}
		return r, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
