package store

import (
	"context"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

// gormDriverRepository implements [DriverRepository] with gorm over the
// connection pool of an existing [DB].
type gormDriverRepository struct {
	dbPool *DB
	db     *gorm.DB
	orders map[listKey]clause.OrderBy
	logger *logger.Logger
}

// NewGormDriverRepository opens gorm on top of db. Only the postgres dialect
// is supported.
func NewGormDriverRepository(db *DB, log *logger.Logger) (DriverRepository, error) {
	if db.Dialect() != config.DialectPostgres {
		return nil, ErrUnsupportedBackend
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 newGormLogger(log),
	})
	if err != nil {
		log.Err(err).Str("func", "NewGormDriverRepository").Msg("error opening gorm session")
		return nil, err
	}

	log.Debug().Msg("creating gorm driver repository")
	return &gormDriverRepository{
		dbPool: db,
		db:     gormDB,
		orders: buildListDriversOrders(),
		logger: log,
	}, nil
}

// buildListDriversOrders is the gorm counterpart of buildListDriversQueries.
func buildListDriversOrders() map[listKey]clause.OrderBy {
	orders := make(map[listKey]clause.OrderBy, len(models.SortColumns)*len(models.SortOrders))

	for _, column := range models.SortColumns {
		for _, order := range models.SortOrders {
			orders[listKey{column: column, order: order}] = clause.OrderBy{
				Columns: []clause.OrderByColumn{
					{Column: clause.Column{Name: string(column)}, Desc: order == models.SortDesc},
					{Column: clause.Column{Name: "driver_id"}},
				},
			}
		}
	}

	return orders
}

func (r *gormDriverRepository) CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error) {
	log := logger.FromContext(ctx)

	driver := in.ToDriver()
	if err := r.db.WithContext(ctx).Create(&driver).Error; err != nil {
		log.Err(err).Str("func", "gormDriverRepository.CreateDriver").Msg("failed to insert driver")
		return models.Driver{}, r.dbPool.wrapError(log, ErrExecutingStatement, err)
	}

	return driver, nil
}

func (r *gormDriverRepository) ListDrivers(ctx context.Context, params models.ListParams) ([]models.Driver, error) {
	log := logger.FromContext(ctx)

	order, ok := r.orders[listKey{column: params.SortBy, order: params.SortOrder}]
	if !ok {
		def := models.DefaultListParams()
		order = r.orders[listKey{column: def.SortBy, order: def.SortOrder}]
	}

	drivers := make([]models.Driver, 0, 50)
	if err := r.db.WithContext(ctx).Clauses(order).Find(&drivers).Error; err != nil {
		log.Err(err).Str("func", "gormDriverRepository.ListDrivers").Msg("failed to list drivers")
		return nil, r.dbPool.wrapError(log, ErrExecutingQuery, err)
	}

	return drivers, nil
}

func (r *gormDriverRepository) UpdateDriver(ctx context.Context, driverID int64, in models.DriverInput) (models.Driver, error) {
	log := logger.FromContext(ctx)

	var driver models.Driver
	result := r.db.WithContext(ctx).
		Model(&driver).
		Clauses(clause.Returning{}).
		Where("driver_id = ?", driverID).
		Updates(map[string]any{
			"driver_name":    in.DriverName,
			"fleet_id":       in.FleetID,
			"location":       locationArg(in.Location),
			"vehicle_groups": in.VehicleGroups,
		})
	if result.Error != nil {
		log.Err(result.Error).Str("func", "gormDriverRepository.UpdateDriver").Int64("driver_id", driverID).Msg("failed to update driver")
		return models.Driver{}, r.dbPool.wrapError(log, ErrExecutingStatement, result.Error)
	}
	if result.RowsAffected == 0 {
		return models.Driver{}, ErrDriverNotFound
	}

	return driver, nil
}

func (r *gormDriverRepository) DeleteDriver(ctx context.Context, driverID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result := r.db.WithContext(ctx).Delete(&models.Driver{}, driverID)
	if result.Error != nil {
		log.Err(result.Error).Str("func", "gormDriverRepository.DeleteDriver").Int64("driver_id", driverID).Msg("failed to delete driver")
		return false, r.dbPool.wrapError(log, ErrExecutingStatement, result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *gormDriverRepository) FindDriverByID(ctx context.Context, driverID int64) (models.Driver, error) {
	log := logger.FromContext(ctx)

	var driver models.Driver
	err := r.db.WithContext(ctx).First(&driver, driverID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Driver{}, ErrDriverNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "gormDriverRepository.FindDriverByID").Int64("driver_id", driverID).Msg("failed to find driver")
		return models.Driver{}, r.dbPool.wrapError(log, ErrExecutingQuery, err)
	}

	return driver, nil
}
