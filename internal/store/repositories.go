// SPDX-License-Identifier: GPL-2.0-or-later

package store

import (
	"context"

	"github.com/schnusch/limdberator/internal/config"
	"github.com/schnusch/limdberator/internal/logger"
)

type Repositories struct {
	DB      *DB
	Scrapes ScrapeRepository
	Catalog CatalogRepository
}

// NewRepositories opens the SQLite database, applies pending migrations, and
// wires up all repositories on top of the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Repositories{
		DB:      db,
		Scrapes: NewScrapeRepository(db, log),
		Catalog: NewCatalogRepository(db, log),
	}, nil
}
