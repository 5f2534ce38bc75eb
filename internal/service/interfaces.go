// SPDX-License-Identifier: GPL-2.0-or-later

package service

import (
	"context"

	"github.com/schnusch/limdberator/models"
)

// IngestService routes validated scrape results into persistent storage.
type IngestService interface {
	StoreScrapeResult(ctx context.Context, result models.ScrapeResult) error
}

// CatalogService serves aggregated read models of the stored scrapes.
type CatalogService interface {
	GetTitle(ctx context.Context, titleID string) (models.TitleRecord, error)
	GetPerson(ctx context.Context, personID string) (models.PersonRecord, error)
}
