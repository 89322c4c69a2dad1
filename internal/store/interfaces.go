package store

import (
	"context"

	"github.com/MKhiriev/go-fleet-drivers/models"
)

// DriverRepository is the persistence gateway of the drivers table.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
type DriverRepository interface {
	// CreateDriver inserts a new row and returns it with its DriverID.
	CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error)

	// ListDrivers returns every driver ordered by params.
	ListDrivers(ctx context.Context, params models.ListParams) ([]models.Driver, error)

	// UpdateDriver overwrites all mutable columns of driverID and returns
	// the stored row, or [ErrDriverNotFound].
	UpdateDriver(ctx context.Context, driverID int64, in models.DriverInput) (models.Driver, error)

	// DeleteDriver removes driverID and reports whether a row was removed.
	DeleteDriver(ctx context.Context, driverID int64) (bool, error)

	// FindDriverByID returns a single driver, or [ErrDriverNotFound].
	FindDriverByID(ctx context.Context, driverID int64) (models.Driver, error)
}

// ErrorClassificator inspects driver errors of a specific database.
type ErrorClassificator interface {
	// Classify reports whether the failed operation could succeed if retried.
	Classify(err error) ErrorClassification

	// IsConstraintViolation reports whether err is an integrity constraint
	// violation.
	IsConstraintViolation(err error) bool
}
