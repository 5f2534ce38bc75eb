// SPDX-License-Identifier: GPL-2.0-or-later

package server

import "errors"

var (
	// ErrNoActivatedSockets is returned when socket activation is enabled but
	// the service manager passed no listening sockets to the process.
	ErrNoActivatedSockets = errors.New("socket activation enabled but no sockets were passed")

	// ErrNotStreamSocket is returned when the service manager passed a socket
	// that is not a stream socket, e.g. a datagram socket from a misconfigured
	// socket unit.
	ErrNotStreamSocket = errors.New("activated socket must be a stream socket")

	// ErrNoListeners is returned when no listening socket could be resolved
	// from the configuration.
	ErrNoListeners = errors.New("no listeners are configured")
)
