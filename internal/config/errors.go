package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid authentication settings
	// (unknown mode, no API keys, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (empty DSN, unknown dialect or backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listen address could be
	// resolved.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
