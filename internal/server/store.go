package server

import (
	"fmt"

	"momoapi/internal/config"
	"momoapi/internal/database"
	"momoapi/internal/logger"
	"momoapi/internal/store"
)

// OpenStore builds the transaction store for the configured driver and loads
// it. The returned close function releases any database connection.
func OpenStore(cfg *config.Config) (*store.Store, func() error, error) {
	closeFn := func() error { return nil }

	var persister store.Persister
	switch cfg.StoreDriver {
	case config.DriverSQLite, config.DriverPostgres:
		dbManager, err := database.NewManager(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := dbManager.Migrate(); err != nil {
			_ = dbManager.Close()
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		persister = store.NewGormPersister(dbManager.DB())
		closeFn = dbManager.Close
	default:
		persister = store.NewJSONFilePersister(cfg.DataFile, cfg.SeedFile)
	}

	s := store.New(persister,
		store.WithIndexThreshold(cfg.IndexThreshold),
		store.WithLogger(logger.Named("store")),
	)
	result := s.Load()
	logger.Get().Infow("transaction store ready",
		"backend", persister.Describe(),
		"load_status", result.Status.String(),
		"transactions", result.Count,
	)
	return s, closeFn, nil
}
