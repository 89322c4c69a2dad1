package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/internal/mock"
	"github.com/MKhiriev/go-fleet-drivers/internal/store"
	"github.com/MKhiriev/go-fleet-drivers/internal/utils"
	"github.com/MKhiriev/go-fleet-drivers/internal/validators"
	"github.com/MKhiriev/go-fleet-drivers/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "fleet-drivers-test",
	TokenDuration: time.Minute,
	APIKeys:       []string{"key-one", "", "key-two"},
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockDriverService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	drivers := mock.NewMockDriverService(ctrl)

	return NewAuthService(drivers, testAppConfig, logger.Nop()), drivers
}

func TestAuthService_IssueAndParseToken(t *testing.T) {
	svc, drivers := newTestAuthSvc(t)
	ctx := context.Background()
	drivers.EXPECT().GetDriver(ctx, int64(42)).Return(models.Driver{DriverID: 42}, nil)

	token, err := svc.IssueToken(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.DriverID)
}

func TestAuthService_IssueToken_DriverNotFound(t *testing.T) {
	svc, drivers := newTestAuthSvc(t)
	drivers.EXPECT().GetDriver(gomock.Any(), int64(7)).Return(models.Driver{}, store.ErrDriverNotFound)

	_, err := svc.IssueToken(context.Background(), 7)

	assert.ErrorIs(t, err, store.ErrDriverNotFound)
}

func TestAuthService_IssueToken_InvalidIDNeverReachesRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDriverRepository(ctrl)
	drivers := NewDriverValidationService().Wrap(NewDriverService(repo, logger.Nop()))
	svc := NewAuthService(drivers, testAppConfig, logger.Nop())

	_, err := svc.IssueToken(context.Background(), 0)

	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestAuthService_IssueToken_SigningFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	drivers := mock.NewMockDriverService(ctrl)
	svc := NewAuthService(drivers, config.App{TokenIssuer: "x", TokenDuration: time.Minute}, logger.Nop())
	drivers.EXPECT().GetDriver(gomock.Any(), int64(1)).Return(models.Driver{DriverID: 1}, nil)

	_, err := svc.IssueToken(context.Background(), 1)

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	expired, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, 1, -time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	wrongIssuer, err := utils.GenerateJWTToken("someone-else", 1, time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, 1, time.Minute, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired.SignedString, wantErr: ErrTokenIsExpired},
		{name: "wrong issuer", token: wrongIssuer.SignedString, wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "wrong signature", token: wrongKey.SignedString, wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "garbage", token: "not.a.token", wantErr: ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAPIKeyService_VerifyAPIKey(t *testing.T) {
	svc := NewAPIKeyService(testAppConfig, logger.Nop())

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "first key", key: "key-one"},
		{name: "second key", key: "key-two"},
		{name: "empty key", key: "", wantErr: true},
		{name: "unknown key", key: "key-three", wantErr: true},
		{name: "prefix of a key", key: "key", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.VerifyAPIKey(context.Background(), tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAPIKey)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{DriverRepository: mock.NewMockDriverRepository(ctrl)}

	services, err := NewServices(storages, config.StructuredConfig{App: config.App{Version: "1.2.3"}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.DriverService)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.APIKeyService)
	assert.Equal(t, "1.2.3", services.AppInfoService.GetAppVersion(context.Background()))

	_, err = NewServices(storages, config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
