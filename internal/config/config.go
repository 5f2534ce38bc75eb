// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// limdberator server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the SQLite persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen-endpoint and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum zerolog level emitted by the server
	// (e.g. "debug", "info", "warn"). Empty means the zerolog default.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Logged at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings for the SQLite database backend.
type DB struct {
	// Path is the filesystem path of the SQLite database file. The file is
	// created on first start when it does not exist yet.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Server holds listen-endpoint and timeout settings for the inbound
// transport layer.
type Server struct {
	// Listen is the list of explicit listen specifications. Each entry is
	// either "host:port", "[v6addr]:port", or a filesystem socket path
	// (recognised by a "/" in the value).
	// Env: SERVER_LISTEN (comma-separated)
	Listen []string `env:"LISTEN" envSeparator:","`

	// Address is the module-style listen address used together with Port
	// when Listen is empty. A value containing "/" is a socket path, a value
	// containing ":" is an IPv6 address. When empty, the server listens on
	// both loopback addresses.
	// Env: SERVER_BIND_ADDRESS
	Address string `env:"BIND_ADDRESS"`

	// Port is the TCP port used together with Address.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// Systemd enables socket activation: listening sockets are received
	// from the service manager instead of being opened by the server.
	// Mutually exclusive with Listen and Address/Port.
	// Env: SERVER_SYSTEMD
	Systemd bool `env:"SYSTEMD"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MaintenanceInterval is the pause between SQLite housekeeping runs
	// (WAL checkpoint and query-planner statistics refresh). Zero disables
	// the maintenance worker.
	// Env: WORKERS_MAINTENANCE_INTERVAL
	MaintenanceInterval time.Duration `env:"MAINTENANCE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
