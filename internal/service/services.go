// SPDX-License-Identifier: GPL-2.0-or-later

// Package service holds the business layer between the HTTP handlers and the
// repositories. It decides where a scrape result goes and keeps the ingest
// counters up to date.
package service

import (
	"github.com/schnusch/limdberator/internal/logger"
	"github.com/schnusch/limdberator/internal/store"
	"github.com/schnusch/limdberator/internal/telemetry"
)

// Services bundles every service the HTTP layer depends on.
type Services struct {
	Ingest  IngestService
	Catalog CatalogService
}

// NewServices wires the services on top of the given repositories.
func NewServices(repos *store.Repositories, metrics *telemetry.Metrics, log *logger.Logger) *Services {
	return &Services{
		Ingest:  NewIngestService(repos.Scrapes, metrics, log),
		Catalog: NewCatalogService(repos.Catalog, log),
	}
}
