// SPDX-License-Identifier: GPL-2.0-or-later

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/schnusch/limdberator/internal/config"
	"github.com/schnusch/limdberator/internal/logger"
)

type httpServer struct {
	server    *http.Server
	listeners []net.Listener
	logger    *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, listeners []net.Listener, logger *logger.Logger) *httpServer {
	if cfg.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, cfg.RequestTimeout, "request timed out")
	}

	return &httpServer{
		server:    &http.Server{Handler: handler},
		listeners: listeners,
		logger:    logger,
	}
}

// serve runs Serve on every listener. It returns on the first listener
// failure, or nil once all listeners have stopped cleanly. A regular
// Shutdown makes Serve return [http.ErrServerClosed], which is not a
// failure.
func (h *httpServer) serve() error {
	errCh := make(chan error, len(h.listeners))
	var wg sync.WaitGroup
	for _, ln := range h.listeners {
		wg.Add(1)
		go func(ln net.Listener) {
			defer wg.Done()
			err := h.server.Serve(ln)
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			} else if err != nil {
				h.logger.Err(err).Str("address", ln.Addr().String()).Msg("HTTP listener failed")
			}
			errCh <- err
		}(ln)
	}

	go func() {
		wg.Wait()
		close(errCh)
	}()

	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}

// Shutdown stops accepting new connections and waits for in-flight requests
// to finish. Closing a Unix listener also removes its socket file.
func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
