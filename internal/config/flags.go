package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-port port used when no address is given
//	-d database DSN
//	-dialect database dialect (postgres, sqlite)
//	-backend persistence backend (sql, orm)
//	-auto-migrate create the drivers table on startup
//	-max-open-conns connection pool size
//	-c/-config json file path with configs
//	-auth-mode authentication mode (api_key, token)
//	-api-keys comma separated static API keys
//	-api-key-header header carrying the static API key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-version application version
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level
//	-log-file rotated log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("fleet-drivers", flag.ContinueOnError)

	var serverAddress NetAddress
	var port string
	var databaseDSN, dialect, backend string
	var autoMigrate bool
	var maxOpenConns int
	var jsonConfigPath string
	var authMode, apiKeys, apiKeyHeader string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var version string
	var requestTimeout time.Duration
	var logLevel, logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&port, "port", "", "Port used when no address is given")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&dialect, "dialect", "", "Database dialect (postgres, sqlite)")
	fs.StringVar(&backend, "backend", "", "Persistence backend (sql, orm)")
	fs.BoolVar(&autoMigrate, "auto-migrate", false, "Create the drivers table on startup")
	fs.IntVar(&maxOpenConns, "max-open-conns", 0, "Connection pool size")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&authMode, "auth-mode", "", "Authentication mode (api_key, token)")
	fs.StringVar(&apiKeys, "api-keys", "", "Comma separated API keys")
	fs.StringVar(&apiKeyHeader, "api-key-header", "", "Header carrying the API key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Rotated log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			AuthMode:      authMode,
			APIKeys:       splitList(apiKeys),
			APIKeyHeader:  apiKeyHeader,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			Version:       version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				Dialect:      dialect,
				Backend:      backend,
				AutoMigrate:  autoMigrate,
				MaxOpenConns: maxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Port:         port,
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}

	return list
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Hosts other than "localhost"
// must be valid IP addresses.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
