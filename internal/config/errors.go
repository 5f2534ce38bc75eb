// SPDX-License-Identifier: GPL-2.0-or-later

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or contradictory.
var (
	// ErrNoDatabasePath indicates that no SQLite database file path was
	// provided by any configuration source.
	ErrNoDatabasePath = errors.New("no database path configured")

	// ErrNoListenConfigured indicates that the server has no way to accept
	// connections: systemd socket activation is off and neither explicit
	// listen specifications nor an address/port pair were provided.
	ErrNoListenConfigured = errors.New("no listen endpoint configured: provide -l, -port, or -systemd")

	// ErrConflictingListenConfigs indicates that systemd socket activation
	// was combined with explicit listen settings; the two are mutually
	// exclusive.
	ErrConflictingListenConfigs = errors.New("systemd socket activation conflicts with explicit listen settings")

	// ErrInvalidListenAddress is returned by [ParseListenAddress] when a
	// listen specification matches none of the accepted endpoint shapes.
	ErrInvalidListenAddress = errors.New("invalid listen address")
)
