// SPDX-License-Identifier: GPL-2.0-or-later

package service

import (
	"context"
	"fmt"

	"github.com/schnusch/limdberator/internal/logger"
	"github.com/schnusch/limdberator/internal/store"
	"github.com/schnusch/limdberator/internal/telemetry"
	"github.com/schnusch/limdberator/models"
)

type ingestService struct {
	scrapes store.ScrapeRepository
	metrics *telemetry.Metrics
	logger  *logger.Logger
}

// NewIngestService returns an [IngestService] persisting scrape results
// through the given repository.
func NewIngestService(scrapes store.ScrapeRepository, metrics *telemetry.Metrics, log *logger.Logger) IngestService {
	return &ingestService{
		scrapes: scrapes,
		metrics: metrics,
		logger:  log,
	}
}

// StoreScrapeResult routes the scrape result to the matching repository
// operation based on its payload kind.
func (s *ingestService) StoreScrapeResult(ctx context.Context, result models.ScrapeResult) error {
	log := logger.FromContext(ctx)

	kind, err := result.Kind()
	if err != nil {
		log.Err(err).Msg("refusing to store empty scrape result")
		return fmt.Errorf("%w: %w", ErrInvalidScrapePayload, err)
	}

	switch kind {
	case models.ScrapeKindTitle:
		err = s.scrapes.StoreTitle(ctx, *result.Title)
	case models.ScrapeKindPerson:
		err = s.scrapes.StorePerson(ctx, *result.Person)
	}

	if err != nil {
		s.metrics.ScrapeStoreErrors.Inc()
		log.Err(err).Str("kind", kind).Msg("storing scrape result failed")
		return err
	}

	s.metrics.ScrapesStored.WithLabelValues(kind).Inc()
	log.Debug().Str("kind", kind).Msg("scrape result stored")
	return nil
}
