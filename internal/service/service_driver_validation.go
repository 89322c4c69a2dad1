package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fleet-drivers/internal/validators"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

// DriverValidationService rejects invalid input before the wrapped
// DriverService (and therefore the database) is reached.
type DriverValidationService struct {
	inner     DriverService
	validator validators.Validator
}

func NewDriverValidationService() DriverServiceWrapper {
	return &DriverValidationService{
		validator: validators.NewDriverValidator(),
	}
}

func (v *DriverValidationService) CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Driver{}, fmt.Errorf("error during driver validation before saving: %w", err)
	}

	return v.inner.CreateDriver(ctx, in)
}

func (v *DriverValidationService) ListDrivers(ctx context.Context, params models.ListParams) ([]models.Driver, error) {
	if err := v.validator.Validate(ctx, params); err != nil {
		return nil, fmt.Errorf("error during list params validation: %w", err)
	}

	return v.inner.ListDrivers(ctx, params)
}

func (v *DriverValidationService) UpdateDriver(ctx context.Context, driverID int64, in models.DriverInput) (models.Driver, error) {
	if err := v.validator.Validate(ctx, driverID); err != nil {
		return models.Driver{}, fmt.Errorf("error during driver id validation before update: %w", err)
	}
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Driver{}, fmt.Errorf("error during driver validation before update: %w", err)
	}

	return v.inner.UpdateDriver(ctx, driverID, in)
}

func (v *DriverValidationService) DeleteDriver(ctx context.Context, driverID int64) error {
	if err := v.validator.Validate(ctx, driverID); err != nil {
		return fmt.Errorf("error during driver id validation before deletion: %w", err)
	}

	return v.inner.DeleteDriver(ctx, driverID)
}

func (v *DriverValidationService) GetDriver(ctx context.Context, driverID int64) (models.Driver, error) {
	if err := v.validator.Validate(ctx, driverID); err != nil {
		return models.Driver{}, fmt.Errorf("error during driver id validation: %w", err)
	}

	return v.inner.GetDriver(ctx, driverID)
}

func (v *DriverValidationService) Wrap(wrapper DriverService) DriverService {
	v.inner = wrapper
	return v
}
