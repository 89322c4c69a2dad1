package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-fleet-drivers/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errInvalidTokenParams = errors.New("invalid params for generating JWT Token")
	errUnexpectedClaims   = errors.New("unexpected token claims type")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for a driver.
//
// The token carries only registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the driver ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// issuer, tokenDuration and signKey are required. A negative tokenDuration
// yields an already expired token.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("fleet-drivers", 42, time.Hour, "secret")
func GenerateJWTToken(issuer string, driverID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(driverID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, DriverID: driverID}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts the driver id.
//
// Validation includes the HS256 signature, the issuer, the expiration and a
// numeric subject. Errors wrap the jwt/v5 sentinels, so callers can test for
// jwt.ErrTokenExpired with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errUnexpectedClaims
	}

	driverID, err := claims.GetDriverID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, SignedString: tokenString, DriverID: driverID}, nil
}
