package tui

import (
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/recovery"
)

const splashDuration = 1500 * time.Millisecond

type SplashTickMsg struct{}

// DashboardDataMsg is one snapshot of the local store.
type DashboardDataMsg struct {
	Metrics  *aggregate.Metrics
	Recovery *recovery.Result
	Plan     *plan.Record
	Err      error
}
