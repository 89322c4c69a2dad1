package config

import "time"

const (
	defaultPort           = "3000"
	defaultAPIKeyHeader   = "api-key"
	defaultTokenIssuer    = "fleet-drivers"
	defaultTokenDuration  = time.Hour
	defaultVersion        = "dev"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxOpenConns   = 10
	defaultLogLevel       = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AuthMode:      AuthModeAPIKey,
			APIKeyHeader:  defaultAPIKeyHeader,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Dialect:      DialectPostgres,
				Backend:      BackendSQL,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
		Port: defaultPort,
	}
}
