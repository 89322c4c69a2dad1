package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	for _, version := range []string{"1.0.0", "v1.2.3-beta+build.42", "dev"} {
		t.Run(version, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			// ctx is not consulted
			assert.Equal(t, version, svc.GetAppVersion(ctx))
		})
	}
}
