package service

import (
	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/internal/store"
)

type Services struct {
	DriverService  DriverService
	AuthService    AuthService
	APIKeyService  APIKeyService
	AppInfoService AppInfoService
}

// NewServices builds every service over storages. The driver service is
// always wrapped by the validation decorator, and token issuance looks
// drivers up through it.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	driverService := NewDriverValidationService().Wrap(
		NewDriverService(storages.DriverRepository, logger),
	)

	return &Services{
		DriverService:  driverService,
		AuthService:    NewAuthService(driverService, cfg.App, logger),
		APIKeyService:  NewAPIKeyService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
