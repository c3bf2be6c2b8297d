package handler

import (
	"net/http"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/mealplan"
	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/profile"
	"github.com/nutrisync/nutrisync/internal/xerrors"
	"github.com/nutrisync/nutrisync/internal/xhttp"
	"github.com/nutrisync/nutrisync/internal/xslog"
	"github.com/nutrisync/nutrisync/internal/xsync"
)

type Plan struct {
	profiles profile.Store
	fetcher  xsync.MetricsFetcher
	service  *plan.Service
}

func NewPlan(profiles profile.Store, fetcher xsync.MetricsFetcher, service *plan.Service) *Plan {
	return &Plan{
		profiles: profiles,
		fetcher:  fetcher,
		service:  service,
	}
}

// HandleGenerate handles POST /api/v1/users/{id}/plan requests.
// The body is an optional preferences document; fields left unset fall
// back to the stored profile.
func (h *Plan) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	userID := r.PathValue("id")

	var prefs mealplan.Preferences
	if err := xhttp.ReadJSON(r, &prefs); err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("invalid request body"), xerrors.WithCause(err)))
		return
	}

	p, err := h.profiles.Get(ctx, userID)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to load profile"), xerrors.WithCause(err)))
		return
	}
	if p == nil {
		xerrors.WriteError(ctx, w, xerrors.NotFound(xerrors.WithMessage("profile not found")))
		return
	}

	m, err := h.fetcher.Metrics(ctx, userID, aggregate.DateRange{})
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to load metrics"), xerrors.WithCause(err)))
		return
	}

	res, err := h.service.Generate(*p, *m, prefs)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	rec, err := h.service.Save(ctx, userID, res)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to save plan"), xerrors.WithCause(err)))
		return
	}

	logger.InfoContext(ctx, "generated plan",
		xslog.UserID(userID),
		xslog.PlanID(rec.ID),
	)

	xhttp.WriteJSON(w, http.StatusCreated, rec)
}

// HandleLatest handles GET /api/v1/users/{id}/plan requests.
func (h *Plan) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("id")

	rec, err := h.service.Latest(ctx, userID)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to load plan"), xerrors.WithCause(err)))
		return
	}
	if rec == nil {
		xerrors.WriteError(ctx, w, xerrors.NotFound(xerrors.WithMessage("no plan generated yet")))
		return
	}

	xhttp.WriteOK(w, rec)
}
