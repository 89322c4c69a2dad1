package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
)

// Storages groups the repositories served by one connection pool.
type Storages struct {
	// DriverRepository is the persistence gateway of the drivers table,
	// either the squirrel or the gorm implementation.
	DriverRepository DriverRepository

	db *DB
}

// NewStorages initialises the storage layer from cfg:
//  1. Opens a connection pool for cfg.DB.Dialect.
//  2. Creates the drivers table when cfg.DB.AutoMigrate is set.
//  3. Builds the [DriverRepository] of cfg.DB.Backend.
//
// The pool is closed again if any later step fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dialect", cfg.DB.Dialect).Str("backend", cfg.DB.Backend).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Dialect {
	case config.DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case config.DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, cfg.DB.Dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Dialect, err)
	}

	storages, err := newStoragesFromDB(db, cfg, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return storages, nil
}

func newStoragesFromDB(db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		logger.Info().Msg("drivers table is up to date")
	}

	var (
		repo DriverRepository
		err  error
	)
	switch cfg.DB.Backend {
	case config.BackendSQL:
		repo, err = NewDriverRepository(db, logger)
	case config.BackendORM:
		repo, err = NewGormDriverRepository(db, logger)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.DB.Backend)
	}
	if err != nil {
		return nil, err
	}

	return &Storages{
		DriverRepository: repo,
		db:               db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
