// Package service holds the business operations of the fleet drivers API:
// driver CRUD over the persistence gateway, request authentication and
// application metadata.
package service

import (
	"context"

	"github.com/MKhiriev/go-fleet-drivers/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=DriverServiceWrapper

// DriverService exposes the driver operations served by the HTTP handlers.
type DriverService interface {
	CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error)
	ListDrivers(ctx context.Context, params models.ListParams) ([]models.Driver, error)
	UpdateDriver(ctx context.Context, driverID int64, in models.DriverInput) (models.Driver, error)
	DeleteDriver(ctx context.Context, driverID int64) error
	GetDriver(ctx context.Context, driverID int64) (models.Driver, error)
}

// DriverServiceWrapper defines middleware composition for DriverService.
// Implementations wrap an existing DriverService to add behavior such as
// logging or validating.
type DriverServiceWrapper interface {
	Wrap(DriverService) DriverService // returns a decorated DriverService applying additional behavior
}

// AuthService issues and verifies signed bearer tokens.
type AuthService interface {
	// IssueToken signs a token for an existing driver.
	IssueToken(ctx context.Context, driverID int64) (models.Token, error)
	// ParseToken verifies signature, issuer and expiry of tokenString.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// APIKeyService checks static API keys.
type APIKeyService interface {
	VerifyAPIKey(ctx context.Context, key string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
