package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"

	token, err := GenerateJWTToken(issuer, 123, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.DriverID != 123 {
		t.Errorf("expected driverID 123, got %d", token.DriverID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Error("expected exp and iat claims")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if !errors.Is(err, errInvalidTokenParams) {
				t.Errorf("expected errInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", 456, 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.DriverID != 456 {
		t.Errorf("expected driverID 456, got %d", parsed.DriverID)
	}
}

func TestValidateAndParseJWTToken_Rejected(t *testing.T) {
	valid, _ := GenerateJWTToken("iss", 1, time.Hour, "key")
	expired, _ := GenerateJWTToken("iss", 1, -time.Second, "key")
	noneSigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  "iss",
		Subject: "1",
	}).SignedString([]byte("key"))
	badSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "driver-one",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("key"))

	tests := []struct {
		name    string
		token   string
		key     string
		issuer  string
		wantErr error
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "iss", wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "fake", wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: expired.SignedString, key: "key", issuer: "iss", wantErr: jwt.ErrTokenExpired},
		{name: "alg none", token: noneSigned, key: "key", issuer: "iss", wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "no expiry", token: noExpiry, key: "key", issuer: "iss", wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "non numeric subject", token: badSubject, key: "key", issuer: "iss"},
		{name: "malformed", token: "not.a.token", key: "key", issuer: "iss", wantErr: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
