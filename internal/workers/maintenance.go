// SPDX-License-Identifier: GPL-2.0-or-later

package workers

import (
	"context"
	"time"

	"github.com/schnusch/limdberator/internal/logger"
)

// MaintenanceWorker periodically runs SQLite housekeeping (WAL checkpoint
// and query-planner statistics refresh) against the database.
type MaintenanceWorker struct {
	db       Maintainer
	interval time.Duration
	logger   *logger.Logger
}

// NewMaintenanceWorker returns a worker that calls db.Maintain every
// interval. A non-positive interval disables the worker.
func NewMaintenanceWorker(db Maintainer, interval time.Duration, log *logger.Logger) *MaintenanceWorker {
	return &MaintenanceWorker{
		db:       db,
		interval: interval,
		logger:   log,
	}
}

// Run blocks until ctx is cancelled, running one maintenance pass per tick.
func (w *MaintenanceWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("maintenance worker disabled")
		return
	}

	w.logger.Info().Dur("interval", w.interval).Msg("maintenance worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("maintenance worker stopped")
			return
		case <-ticker.C:
			if err := w.db.Maintain(ctx); err != nil {
				w.logger.Err(err).Msg("database maintenance failed")
			}
		}
	}
}
