package handler

import (
	"net/http"

	"github.com/nutrisync/nutrisync/internal/storage"
	"github.com/nutrisync/nutrisync/internal/xerrors"
	"github.com/nutrisync/nutrisync/internal/xhttp"
)

type Health struct {
	backend storage.Backend
}

func NewHealth(backend storage.Backend) *Health {
	return &Health{backend: backend}
}

// HandleCheck handles GET /healthz requests.
func (h *Health) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.backend.Ping(ctx); err != nil {
		xerrors.WriteError(ctx, w, xerrors.ServiceUnavailable(xerrors.WithMessage("storage backend unavailable"), xerrors.WithCause(err)))
		return
	}

	xhttp.WriteOK(w, map[string]string{"status": "ok"})
}
