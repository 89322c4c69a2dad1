package http

import (
	"time"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/internal/service"
)

type Handler struct {
	services *service.Services

	// authMode is one of config.AuthModeAPIKey or config.AuthModeToken.
	authMode     string
	apiKeyHeader string

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Str("auth_mode", cfg.App.AuthMode).Msg("http handler created")
	return &Handler{
		services:       services,
		authMode:       cfg.App.AuthMode,
		apiKeyHeader:   cfg.App.APIKeyHeader,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
