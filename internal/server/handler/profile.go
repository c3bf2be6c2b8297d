package handler

import (
	"net/http"

	"github.com/nutrisync/nutrisync/internal/profile"
	"github.com/nutrisync/nutrisync/internal/xerrors"
	"github.com/nutrisync/nutrisync/internal/xhttp"
	"github.com/nutrisync/nutrisync/internal/xslog"
)

type Profile struct {
	store profile.Store
}

func NewProfile(store profile.Store) *Profile {
	return &Profile{store: store}
}

// HandleGet handles GET /api/v1/users/{id}/profile requests.
func (h *Profile) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("id")

	p, err := h.store.Get(ctx, userID)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to load profile"), xerrors.WithCause(err)))
		return
	}
	if p == nil {
		xerrors.WriteError(ctx, w, xerrors.NotFound(xerrors.WithMessage("profile not found")))
		return
	}

	xhttp.WriteOK(w, p)
}

// HandlePut handles PUT /api/v1/users/{id}/profile requests. The user
// ID in the path wins over any ID in the body.
func (h *Profile) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	userID := r.PathValue("id")

	var p profile.Profile
	if err := xhttp.ReadJSON(r, &p); err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("invalid request body"), xerrors.WithCause(err)))
		return
	}
	p.UserID = userID

	// The store validates before writing; validation failures already
	// carry their status code.
	if err := h.store.Upsert(ctx, &p); err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	logger.InfoContext(ctx, "saved profile", xslog.UserID(userID))

	xhttp.WriteOK(w, p)
}
