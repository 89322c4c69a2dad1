package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/migrations"
)

// DB is an open connection pool together with the dialect specific error
// classifier.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate creates the drivers table if it does not exist.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.Dialect())
}

// Dialect returns the dialect the pool was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// wrapError wraps err with sentinel and, when the database reports an
// integrity violation, with [ErrConstraintViolation] as well. Retryable
// failures are only logged.
func (db *DB) wrapError(log *logger.Logger, sentinel, err error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	if db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("dialect", db.Dialect()).Msg("retryable database error, not retrying")
	}

	if db.errorClassificator.IsConstraintViolation(err) {
		return fmt.Errorf("%w: %w: %w", sentinel, ErrConstraintViolation, err)
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}
