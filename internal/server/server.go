// SPDX-License-Identifier: GPL-2.0-or-later

package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/schnusch/limdberator/internal/config"
	"github.com/schnusch/limdberator/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer resolves the listening sockets and prepares the HTTP server.
//
// The reverse-proxy target derived from the listen specifications is logged
// at startup so a fronting proxy can be pointed at the right upstream.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	listeners, err := buildListeners(cfg, logger)
	if err != nil {
		return nil, err
	}

	if !cfg.Systemd {
		logger.Info().
			Str("reverse_proxy_target", config.ReverseProxyTarget(cfg.ListenSpecs())).
			Msg("upstream target for a fronting reverse proxy")
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, listeners, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case <-ctx.Done():
		// stop signal received
		s.Shutdown()
		<-serveErr
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil

	case err := <-serveErr:
		// a listener died on its own; stop the remaining ones
		s.Shutdown()
		return err
	}
}
