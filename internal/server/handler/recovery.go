package handler

import (
	"net/http"
	"time"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/recovery"
	"github.com/nutrisync/nutrisync/internal/repository"
	"github.com/nutrisync/nutrisync/internal/xerrors"
	"github.com/nutrisync/nutrisync/internal/xhttp"
	"github.com/nutrisync/nutrisync/internal/xslog"
)

type Recovery struct {
	samples repository.SampleRepository
	service *plan.Service
}

func NewRecovery(samples repository.SampleRepository, service *plan.Service) *Recovery {
	return &Recovery{
		samples: samples,
		service: service,
	}
}

// HandleStatus handles GET /api/v1/users/{id}/recovery requests.
// Query params: days (int, default 7).
//
// The newest sleep reading in the window is the current observation;
// the readings before it average into the baseline.
func (h *Recovery) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	userID := r.PathValue("id")

	days, err := queryDays(r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	rng := aggregate.LastNDays(time.Now().UTC(), days)
	readings, err := h.loadReadings(r, userID, rng)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to load sleep samples"), xerrors.WithCause(err)))
		return
	}
	if len(readings) == 0 {
		xerrors.WriteError(ctx, w, xerrors.NotFound(xerrors.WithMessage("no sleep data in window")))
		return
	}

	current := readings[len(readings)-1]
	baseline := recovery.BaselineFrom(readings[:len(readings)-1])

	result := h.service.ScoreRecovery(current, baseline)

	logger.DebugContext(ctx, "scored recovery",
		xslog.UserID(userID),
		xslog.Days(days),
		xslog.Count(len(readings)),
	)

	xhttp.WriteOK(w, result)
}

// loadReadings pages through the window's sleep samples in timestamp
// order. The range end names a calendar day, so the query window
// extends past it to cover that day's samples.
func (h *Recovery) loadReadings(r *http.Request, userID string, rng aggregate.DateRange) ([]recovery.Readings, error) {
	ctx := r.Context()
	end := rng.End.Add(24 * time.Hour)

	var readings []recovery.Readings
	params := &repository.CursorParams{Limit: repository.DefaultPageSize}
	for {
		page, err := h.samples.SleepByDateRange(ctx, userID, rng.Start, end, params)
		if err != nil {
			return nil, err
		}
		for _, s := range page.Records {
			readings = append(readings, recovery.Readings{
				SleepScore: s.Score,
				HRVScore:   s.HRVMillis,
			})
		}
		if page.NextCursor == nil {
			break
		}
		params.Cursor = page.NextCursor
	}
	return readings, nil
}
