// SPDX-License-Identifier: GPL-2.0-or-later

// Package server wires and runs the application's HTTP transport.
//
// It resolves listening sockets either from the service manager (systemd
// socket activation) or from the configured listen specifications, and
// orchestrates startup, signal handling, and graceful shutdown.
package server
