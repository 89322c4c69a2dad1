package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

// driverRepository is the database/sql implementation of [DriverRepository].
// Statements are built with squirrel in the placeholder format of the
// connection's dialect. List statements are compiled once at construction.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with the
// request's trace_id.
type driverRepository struct {
	*DB
	builder     sq.StatementBuilderType
	listQueries map[listKey]string
	logger      *logger.Logger
}

// NewDriverRepository constructs a [DriverRepository] over db.
func NewDriverRepository(db *DB, logger *logger.Logger) (DriverRepository, error) {
	builder, err := statementBuilder(db.Dialect())
	if err != nil {
		return nil, err
	}

	listQueries, err := buildListDriversQueries(builder)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("dialect", db.Dialect()).Msg("creating driver repository")
	return &driverRepository{
		DB:          db,
		builder:     builder,
		listQueries: listQueries,
		logger:      logger,
	}, nil
}

// CreateDriver inserts in and returns the stored row including the
// generated driver_id.
func (r *driverRepository) CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDriverQuery(r.builder, in)
	if err != nil {
		log.Err(err).Str("func", "driverRepository.CreateDriver").Msg("failed to create query")
		return models.Driver{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "driverRepository.CreateDriver").Msg("failed to insert driver")
		return models.Driver{}, r.wrapError(log, ErrExecutingStatement, err)
	}

	driver, err := scanDriver(row)
	if err != nil {
		log.Err(err).Str("func", "driverRepository.CreateDriver").Msg("failed to scan inserted driver")
		return models.Driver{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return driver, nil
}

// ListDrivers returns all drivers in the order selected by params. An
// unknown ordering falls back to [models.DefaultListParams].
func (r *driverRepository) ListDrivers(ctx context.Context, params models.ListParams) ([]models.Driver, error) {
	log := logger.FromContext(ctx)

	query, ok := r.listQueries[listKey{column: params.SortBy, order: params.SortOrder}]
	if !ok {
		def := models.DefaultListParams()
		query = r.listQueries[listKey{column: def.SortBy, order: def.SortOrder}]
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", "driverRepository.ListDrivers").
			Str("sort_by", string(params.SortBy)).
			Str("sort_order", string(params.SortOrder)).
			Msg("failed to execute query for listing drivers")
		return nil, r.wrapError(log, ErrExecutingQuery, err)
	}
	defer rows.Close()

	drivers := make([]models.Driver, 0, 50)

	for rows.Next() {
		driver, scanErr := scanDriver(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "driverRepository.ListDrivers").Msg("failed to scan driver row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		drivers = append(drivers, driver)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "driverRepository.ListDrivers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return drivers, nil
}

// UpdateDriver overwrites every mutable column of driverID with in.
//
// Error handling:
//   - no row with driverID -> [ErrDriverNotFound];
//   - constraint violation -> [ErrExecutingStatement] and [ErrConstraintViolation].
func (r *driverRepository) UpdateDriver(ctx context.Context, driverID int64, in models.DriverInput) (models.Driver, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDriverQuery(r.builder, driverID, in)
	if err != nil {
		log.Err(err).Str("func", "driverRepository.UpdateDriver").Int64("driver_id", driverID).Msg("failed to create query")
		return models.Driver{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "driverRepository.UpdateDriver").Int64("driver_id", driverID).Msg("failed to update driver")
		return models.Driver{}, r.wrapError(log, ErrExecutingStatement, err)
	}

	driver, err := scanDriver(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "driverRepository.UpdateDriver").Int64("driver_id", driverID).Msg("driver not found")
		return models.Driver{}, ErrDriverNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "driverRepository.UpdateDriver").Int64("driver_id", driverID).Msg("failed to scan updated driver")
		return models.Driver{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return driver, nil
}

// DeleteDriver removes driverID. It returns false without error when no row
// matched.
func (r *driverRepository) DeleteDriver(ctx context.Context, driverID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDriverQuery(r.builder, driverID)
	if err != nil {
		log.Err(err).Str("func", "driverRepository.DeleteDriver").Int64("driver_id", driverID).Msg("failed to create query")
		return false, err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "driverRepository.DeleteDriver").Int64("driver_id", driverID).Msg("failed to delete driver")
		return false, r.wrapError(log, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "driverRepository.DeleteDriver").Int64("driver_id", driverID).Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// FindDriverByID returns driverID or [ErrDriverNotFound].
func (r *driverRepository) FindDriverByID(ctx context.Context, driverID int64) (models.Driver, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindDriverByIDQuery(r.builder, driverID)
	if err != nil {
		log.Err(err).Str("func", "driverRepository.FindDriverByID").Int64("driver_id", driverID).Msg("failed to create query")
		return models.Driver{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "driverRepository.FindDriverByID").Int64("driver_id", driverID).Msg("failed to find driver")
		return models.Driver{}, r.wrapError(log, ErrExecutingQuery, err)
	}

	driver, err := scanDriver(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, ErrDriverNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "driverRepository.FindDriverByID").Int64("driver_id", driverID).Msg("failed to scan driver")
		return models.Driver{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return driver, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanDriver reads one row in driverColumns order.
func scanDriver(row rowScanner) (models.Driver, error) {
	var driver models.Driver

	err := row.Scan(
		&driver.DriverID,
		&driver.DriverName,
		&driver.FleetID,
		&driver.Location,
		&driver.VehicleGroups,
	)
	if err != nil {
		return models.Driver{}, err
	}

	return driver, nil
}
