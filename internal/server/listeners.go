// SPDX-License-Identifier: GPL-2.0-or-later

package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"

	"github.com/coreos/go-systemd/v22/activation"

	"github.com/schnusch/limdberator/internal/config"
	"github.com/schnusch/limdberator/internal/logger"
)

// buildListeners resolves the server's listening sockets.
//
// With socket activation enabled the sockets are inherited from the service
// manager and the configuration's listen specifications are ignored.
// Otherwise one listener is opened per specification; Unix socket paths have
// stale socket files from a previous run removed before binding.
func buildListeners(cfg config.Server, log *logger.Logger) ([]net.Listener, error) {
	if cfg.Systemd {
		listeners, err := activation.Listeners()
		if err != nil {
			return nil, fmt.Errorf("error receiving activated sockets: %w", err)
		}
		return checkActivated(listeners, log)
	}

	specs := cfg.ListenSpecs()
	if len(specs) == 0 {
		return nil, ErrNoListeners
	}

	listeners := make([]net.Listener, 0, len(specs))
	for _, spec := range specs {
		addr, err := config.ParseListenAddress(spec)
		if err != nil {
			closeListeners(listeners, log)
			return nil, err
		}

		ln, err := listen(addr)
		if err != nil {
			closeListeners(listeners, log)
			return nil, fmt.Errorf("error listening on %q: %w", spec, err)
		}

		log.Info().Str("address", ln.Addr().String()).Msg("listening")
		listeners = append(listeners, ln)
	}

	return listeners, nil
}

// checkActivated validates the sockets inherited from the service manager.
// The activation package leaves a nil gap in its result for every inherited
// fd that is not a stream socket, so a nil entry means the socket unit is
// misconfigured.
func checkActivated(listeners []net.Listener, log *logger.Logger) ([]net.Listener, error) {
	if len(listeners) == 0 {
		return nil, ErrNoActivatedSockets
	}

	for i, ln := range listeners {
		if ln == nil {
			closeListeners(listeners, log)
			// activated fds start at 3
			return nil, fmt.Errorf("%w: fd %d", ErrNotStreamSocket, 3+i)
		}
		log.Info().Str("address", ln.Addr().String()).Msg("inherited activated socket")
	}

	return listeners, nil
}

func listen(addr config.ListenAddress) (net.Listener, error) {
	if addr.IsUnix() {
		if err := os.Remove(addr.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error removing stale socket: %w", err)
		}
		return net.Listen("unix", addr.Path)
	}
	return net.Listen("tcp", addr.String())
}

func closeListeners(listeners []net.Listener, log *logger.Logger) {
	for _, ln := range listeners {
		if ln == nil {
			continue
		}
		if err := ln.Close(); err != nil {
			log.Err(err).Msg("error closing listener")
		}
	}
}
