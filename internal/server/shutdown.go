package server

import (
	"context"
	"time"
)

// ShutdownCoordinator manages graceful shutdown of the HTTP server.
// Metric reads can trigger a live wearable backfill, so in-flight
// requests get a bounded drain window before the listener closes.
type ShutdownCoordinator struct {
	baseCtx     context.Context
	cancel      context.CancelFunc
	gracePeriod time.Duration
}

// NewShutdownCoordinator creates a shutdown coordinator. The grace
// period determines how long active requests get to finish before
// server.Shutdown() is called.
func NewShutdownCoordinator(gracePeriod time.Duration) *ShutdownCoordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &ShutdownCoordinator{
		baseCtx:     ctx,
		cancel:      cancel,
		gracePeriod: gracePeriod,
	}
}

// BaseContext returns the base context for all HTTP requests. It is
// cancelled when shutdown is initiated, so long-running work inside
// handlers can detect shutdown and stop early.
func (sc *ShutdownCoordinator) BaseContext() context.Context {
	return sc.baseCtx
}

// InitiateShutdown cancels the base context and waits for the grace
// period. This function blocks for the duration of the grace period.
func (sc *ShutdownCoordinator) InitiateShutdown() {
	sc.cancel()
	time.Sleep(sc.gracePeriod)
}
