// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] is usable at
// startup: a known auth mode with its credentials, a supported
// dialect/backend pair and a DSN.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.AuthMode {
	case AuthModeAPIKey:
		if len(cfg.App.APIKeys) == 0 || cfg.App.APIKeyHeader == "" {
			return fmt.Errorf("%w: api_key mode needs at least one key and a header name", ErrInvalidAppConfigs)
		}
	case AuthModeToken:
		if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
			return fmt.Errorf("%w: token mode needs sign key, issuer and a positive duration", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrInvalidAppConfigs, cfg.App.AuthMode)
	}

	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch db.Dialect {
	case DialectPostgres, DialectSQLite:
	default:
		return fmt.Errorf("%w: unknown dialect %q", ErrInvalidStorageConfigs, db.Dialect)
	}

	switch db.Backend {
	case BackendSQL:
	case BackendORM:
		if db.Dialect != DialectPostgres {
			return fmt.Errorf("%w: orm backend supports only %s", ErrInvalidStorageConfigs, DialectPostgres)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, db.Backend)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
