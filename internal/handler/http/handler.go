// SPDX-License-Identifier: GPL-2.0-or-later

package http

import (
	"context"

	"github.com/schnusch/limdberator/internal/logger"
	"github.com/schnusch/limdberator/internal/service"
	"github.com/schnusch/limdberator/internal/telemetry"
	"github.com/schnusch/limdberator/internal/validators"
)

// Pinger is the database liveness probe used by the health endpoint.
// *sql.DB satisfies it directly.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services  *service.Services
	validator validators.ScrapeValidator
	pinger    Pinger
	metrics   *telemetry.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.ScrapeValidator, pinger Pinger, metrics *telemetry.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		pinger:    pinger,
		metrics:   metrics,
		logger:    logger,
	}
}
