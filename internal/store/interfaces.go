// SPDX-License-Identifier: GPL-2.0-or-later

package store

import (
	"context"

	"github.com/schnusch/limdberator/models"
)

// ScrapeRepository persists incoming scrape results into the append-only
// change-tracked tables.
type ScrapeRepository interface {
	StoreTitle(ctx context.Context, scrape models.ScrapedTitle) error
	StorePerson(ctx context.Context, scrape models.ScrapedPerson) error
}

// CatalogRepository assembles read models from the accumulated scrapes.
type CatalogRepository interface {
	GetTitle(ctx context.Context, titleID string) (models.TitleRecord, error)
	GetPerson(ctx context.Context, personID string) (models.PersonRecord, error)
}
