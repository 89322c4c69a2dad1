package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/internal/store"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

type driverService struct {
	driverRepository store.DriverRepository

	logger *logger.Logger
}

func NewDriverService(driverRepository store.DriverRepository, logger *logger.Logger) DriverService {
	return &driverService{
		driverRepository: driverRepository,
		logger:           logger,
	}
}

func (d *driverService) CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error) {
	driver, err := d.driverRepository.CreateDriver(ctx, in)
	if err != nil {
		return models.Driver{}, fmt.Errorf("driver creation ended with error: %w", err)
	}

	return driver, nil
}

// ListDrivers never returns a nil slice so that an empty table is encoded as [].
func (d *driverService) ListDrivers(ctx context.Context, params models.ListParams) ([]models.Driver, error) {
	drivers, err := d.driverRepository.ListDrivers(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("listing drivers ended with error: %w", err)
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}

	return drivers, nil
}

func (d *driverService) UpdateDriver(ctx context.Context, driverID int64, in models.DriverInput) (models.Driver, error) {
	driver, err := d.driverRepository.UpdateDriver(ctx, driverID, in)
	if err != nil {
		return models.Driver{}, fmt.Errorf("driver update ended with error: %w", err)
	}

	return driver, nil
}

func (d *driverService) DeleteDriver(ctx context.Context, driverID int64) error {
	log := logger.FromContext(ctx)

	deleted, err := d.driverRepository.DeleteDriver(ctx, driverID)
	if err != nil {
		return fmt.Errorf("driver deletion ended with error: %w", err)
	}
	if !deleted {
		log.Debug().Int64("driver_id", driverID).Msg("nothing to delete")
		return store.ErrDriverNotFound
	}

	return nil
}

func (d *driverService) GetDriver(ctx context.Context, driverID int64) (models.Driver, error) {
	driver, err := d.driverRepository.FindDriverByID(ctx, driverID)
	if err != nil {
		return models.Driver{}, fmt.Errorf("driver search by id failed: %w", err)
	}

	return driver, nil
}
