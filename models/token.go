package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed credential whose only application claim is the driver
// id, carried in the registered "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	DriverID int64 `json:"-"`
}

// ErrEmptySubject is returned by [Token.GetDriverID] for a token without "sub".
var ErrEmptySubject = errors.New("empty subject error")

// GetDriverID parses the driver id out of the "sub" claim.
func (t *Token) GetDriverID() (int64, error) {
	driverIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting DriverID from token: %w", err)
	}
	if driverIDString == "" {
		return 0, ErrEmptySubject
	}

	driverID, err := strconv.ParseInt(driverIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting DriverID from token to int64: %w", err)
	}

	return driverID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
