package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/internal/utils"
	"github.com/MKhiriev/go-fleet-drivers/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It signs HS256 tokens for existing drivers and verifies incoming
// bearer tokens.
type authService struct {
	// driverService makes sure a token is only issued for a valid id of a
	// driver that exists.
	driverService DriverService

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService that looks drivers up through
// driverService and takes token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(driverService DriverService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		driverService: driverService,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueToken signs a JWT for the driver with driverID.
//
// The only application claim is the driver id, carried in "sub". The token is
// signed with the configured tokenSignKey, carries tokenIssuer as "iss" and
// expires after tokenDuration.
//
// Returns:
//   - validators.ErrValidation (wrapped) for an id that is not positive.
//   - store.ErrDriverNotFound (wrapped) if the driver does not exist.
//   - ErrTokenCreationFailed (wrapped) if signing fails.
func (a *authService) IssueToken(ctx context.Context, driverID int64) (models.Token, error) {
	log := logger.FromContext(ctx)

	driver, err := a.driverService.GetDriver(ctx, driverID)
	if err != nil {
		log.Err(err).Int64("driver_id", driverID).Msg("driver search by id failed")
		return models.Token{}, fmt.Errorf("driver search by id failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, driver.DriverID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. An expired token yields ErrTokenIsExpired, every other
// validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
