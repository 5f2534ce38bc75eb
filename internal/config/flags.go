// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// listenList collects repeatable -l/-listen flag values.
// It implements the flag.Value interface.
type listenList []string

// String returns the comma-joined representation of the collected values.
// Implements the fmt.Stringer part of flag.Value.
func (l *listenList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one listen specification. The value is validated lazily by the
// server when the listeners are opened, so any non-empty string is accepted.
func (l *listenList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-d/-database path to the SQLite database file
//	-l/-listen listening address (repeatable): host:port, [v6]:port, or socket path
//	-systemd receive listening sockets from systemd
//	-address module-style bind address (used with -port when -l is absent)
//	-port module-style TCP port
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-maintenance-interval pause between SQLite housekeeping runs
//	-log-level minimum log level (debug, info, warn, ...)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("limdberator", flag.ExitOnError)

	var listen listenList
	var databasePath string
	var systemd bool
	var address string
	var port int
	var requestTimeout time.Duration
	var maintenanceInterval time.Duration
	var logLevel string
	var jsonConfigPath string

	fs.StringVar(&databasePath, "d", "", "Path to the SQLite database file")
	fs.StringVar(&databasePath, "database", "", "Path to the SQLite database file (alias)")
	fs.Var(&listen, "l", "Listening address: host:port, [v6]:port, or socket path (repeatable)")
	fs.Var(&listen, "listen", "Listening address (alias)")
	fs.BoolVar(&systemd, "systemd", false, "Receive listening sockets from systemd")
	fs.StringVar(&address, "address", "", "Module-style bind address")
	fs.IntVar(&port, "port", 0, "Module-style TCP port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&maintenanceInterval, "maintenance-interval", 0, "Pause between SQLite housekeeping runs")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	fs.Parse(args)

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Path: databasePath,
			},
		},
		Server: Server{
			Listen:         listen,
			Address:        address,
			Port:           port,
			Systemd:        systemd,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			MaintenanceInterval: maintenanceInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
