// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
)

type apiKeyService struct {
	apiKeys [][]byte

	logger *logger.Logger
}

// NewAPIKeyService builds a checker over the allow-list cfg.APIKeys.
// Empty entries are ignored.
func NewAPIKeyService(cfg config.App, logger *logger.Logger) APIKeyService {
	keys := make([][]byte, 0, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		if key == "" {
			continue
		}
		keys = append(keys, []byte(key))
	}

	return &apiKeyService{
		apiKeys: keys,
		logger:  logger,
	}
}

// VerifyAPIKey returns ErrInvalidAPIKey unless key exactly matches one of the
// configured keys. Every configured key is compared in constant time.
func (s *apiKeyService) VerifyAPIKey(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidAPIKey
	}

	candidate := []byte(key)
	matched := 0
	for _, apiKey := range s.apiKeys {
		matched |= subtle.ConstantTimeCompare(candidate, apiKey)
	}
	if matched != 1 {
		logger.FromContext(ctx).Debug().Msg("unknown API key")
		return ErrInvalidAPIKey
	}

	return nil
}
