// SPDX-License-Identifier: GPL-2.0-or-later

package service

import (
	"context"

	"github.com/schnusch/limdberator/internal/logger"
	"github.com/schnusch/limdberator/internal/store"
	"github.com/schnusch/limdberator/models"
)

type catalogService struct {
	catalog store.CatalogRepository
	logger  *logger.Logger
}

// NewCatalogService returns a [CatalogService] reading from the given
// repository.
func NewCatalogService(catalog store.CatalogRepository, log *logger.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  log,
	}
}

func (s *catalogService) GetTitle(ctx context.Context, titleID string) (models.TitleRecord, error) {
	return s.catalog.GetTitle(ctx, titleID)
}

func (s *catalogService) GetPerson(ctx context.Context, personID string) (models.PersonRecord, error) {
	return s.catalog.GetPerson(ctx, personID)
}
