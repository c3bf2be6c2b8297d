package middleware

import (
	"net/http"

	"github.com/nutrisync/nutrisync/internal/xcontext"
	"github.com/nutrisync/nutrisync/internal/xslog"
)

// UserContext lifts the {id} path value into the request context and
// tags the context logger with it, so downstream log lines carry the
// user without each handler passing it. Wraps individual routes rather
// than the mux: path values only exist after routing.
func UserContext(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id := r.PathValue("id"); id != "" {
			ctx := xcontext.SetUserID(r.Context(), id)
			ctx = xslog.WithAttrs(ctx, xslog.UserID(id))
			r = r.WithContext(ctx)
		}
		next(w, r)
	}
}
