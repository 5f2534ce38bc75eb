// SPDX-License-Identifier: GPL-2.0-or-later

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block until ctx is cancelled and return
// once their work is wound down.
type Worker interface {
	Run(ctx context.Context)
}

// Maintainer is the storage-side housekeeping hook run by the maintenance
// worker. It is implemented by the store's database handle.
type Maintainer interface {
	Maintain(ctx context.Context) error
}
