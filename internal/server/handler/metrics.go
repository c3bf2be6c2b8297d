package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/xerrors"
	"github.com/nutrisync/nutrisync/internal/xhttp"
	"github.com/nutrisync/nutrisync/internal/xsync"
)

type Metrics struct {
	fetcher xsync.MetricsFetcher
}

func NewMetrics(fetcher xsync.MetricsFetcher) *Metrics {
	return &Metrics{fetcher: fetcher}
}

// HandleGet handles GET /api/v1/users/{id}/metrics requests.
// Query params: days (int, default 7).
func (h *Metrics) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("id")

	days, err := queryDays(r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	m, err := h.fetcher.Metrics(ctx, userID, aggregate.LastNDays(time.Now().UTC(), days))
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to load metrics"), xerrors.WithCause(err)))
		return
	}

	xhttp.WriteOK(w, m)
}

// queryDays parses the days query param, defaulting to the standard
// aggregation window.
func queryDays(r *http.Request) (int, error) {
	s := r.URL.Query().Get("days")
	if s == "" {
		return aggregate.DefaultDays, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || days <= 0 || days > 365 {
		return 0, xerrors.BadRequest(xerrors.WithMessage("invalid days parameter (must be 1-365)"))
	}
	return days, nil
}
