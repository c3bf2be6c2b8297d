package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nutrisync/nutrisync/internal/xcontext"
)

func TestUserContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pathValue  string
		wantUserID string
		wantSet    bool
	}{
		{
			name:       "lifts path value into context",
			pathValue:  "user-123",
			wantUserID: "user-123",
			wantSet:    true,
		},
		{
			name:      "no path value leaves context untouched",
			pathValue: "",
			wantSet:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotUserID string
			var gotSet bool
			handler := UserContext(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, gotSet = xcontext.GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+tt.pathValue+"/plan", nil)
			if tt.pathValue != "" {
				req.SetPathValue("id", tt.pathValue)
			}

			rec := httptest.NewRecorder()
			handler(rec, req)

			if gotSet != tt.wantSet {
				t.Fatalf("GetUserID set = %v, want %v", gotSet, tt.wantSet)
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("GetUserID = %q, want %q", gotUserID, tt.wantUserID)
			}
		})
	}
}
