// SPDX-License-Identifier: GPL-2.0-or-later

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnusch/limdberator/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int64
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int64(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

type mockMaintainer struct {
	calls atomic.Int64
	err   error
}

func (m *mockMaintainer) Maintain(context.Context) error {
	m.calls.Add(1)
	return m.err
}

func TestMaintenanceWorker_RunsUntilCancelled(t *testing.T) {
	db := &mockMaintainer{}
	w := NewMaintenanceWorker(db, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return db.calls.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestMaintenanceWorker_DisabledWithoutInterval(t *testing.T) {
	db := &mockMaintainer{}
	w := NewMaintenanceWorker(db, 0, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled worker did not return immediately")
	}
	assert.Equal(t, int64(0), db.calls.Load())
}

func TestMaintenanceWorker_KeepsRunningAfterError(t *testing.T) {
	db := &mockMaintainer{err: assert.AnError}
	w := NewMaintenanceWorker(db, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool {
		return db.calls.Load() >= 2
	}, time.Second, time.Millisecond)
}
