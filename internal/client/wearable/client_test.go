package wearable

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	return New(source, WithBaseURL(srv.URL))
}

func TestClientAuthorization(t *testing.T) {
	t.Parallel()

	var gotAuth, gotAccept string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":"u_1","email":"a@b.c","name":"Alex","platforms":["fitbit"]}`))
	})

	profile, err := client.Profile.Get(t.Context())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-token")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want %q", gotAccept, "application/json")
	}
	if profile.UserID != "u_1" {
		t.Errorf("UserID = %q, want %q", profile.UserID, "u_1")
	}
}

func TestActivityList(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/activity" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/v1/activity")
		}
		gotQuery = map[string]string{
			"limit":      r.URL.Query().Get("limit"),
			"next_token": r.URL.Query().Get("next_token"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"records": [
				{"date":"2025-06-01T00:00:00Z","platform":"fitbit","steps":8000,"calories_burned":650.5,"is_complete":true},
				{"date":"2025-06-02T00:00:00Z","platform":"fitbit","steps":12000,"calories_burned":820,"is_complete":true}
			],
			"next_token": "tok_next"
		}`))
	})

	token := "tok_prev"
	resp, err := client.Activity.List(t.Context(), &ListParams{Limit: 25, NextToken: &token})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if gotQuery["limit"] != "25" {
		t.Errorf("limit query = %q, want %q", gotQuery["limit"], "25")
	}
	if gotQuery["next_token"] != "tok_prev" {
		t.Errorf("next_token query = %q, want %q", gotQuery["next_token"], "tok_prev")
	}
	if len(resp.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(resp.Records))
	}
	if resp.Records[0].Steps != 8000 {
		t.Errorf("Steps = %d, want 8000", resp.Records[0].Steps)
	}
	if !resp.HasMore() {
		t.Error("HasMore() = false, want true")
	}
	if *resp.NextToken != "tok_next" {
		t.Errorf("NextToken = %q, want %q", *resp.NextToken, "tok_next")
	}
}

func TestSleepList(t *testing.T) {
	t.Parallel()

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/sleep" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/v1/sleep")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"records": [
				{"date":"2025-06-01T00:00:00Z","platform":"oura","sleep_duration":7.5,"efficiency":0.92,"hrv_rmssd_milli":48.2,"is_complete":true}
			]
		}`))
	})

	resp, err := client.Sleep.List(t.Context(), nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(resp.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(resp.Records))
	}
	if resp.Records[0].DurationHours != 7.5 {
		t.Errorf("DurationHours = %v, want 7.5", resp.Records[0].DurationHours)
	}
	if resp.HasMore() {
		t.Error("HasMore() = true, want false")
	}
}

func TestClientAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "structured message",
			status:      http.StatusTooManyRequests,
			body:        `{"message":"rate limit exceeded"}`,
			wantMessage: "rate limit exceeded",
		},
		{
			name:        "error field fallback",
			status:      http.StatusBadRequest,
			body:        `{"error":"invalid date range"}`,
			wantMessage: "invalid date range",
		},
		{
			name:        "plain body",
			status:      http.StatusInternalServerError,
			body:        "upstream unavailable",
			wantMessage: "upstream unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Profile.Get(t.Context())
			if err == nil {
				t.Fatal("Get() error = nil, want *APIError")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestListParamsValues(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	token := "tok_1"

	tests := []struct {
		name   string
		params *ListParams
		want   map[string]string
	}{
		{
			name:   "nil params",
			params: nil,
			want:   nil,
		},
		{
			name:   "empty params",
			params: &ListParams{},
			want:   map[string]string{},
		},
		{
			name:   "all fields",
			params: &ListParams{Limit: 10, Start: &start, End: &end, NextToken: &token},
			want: map[string]string{
				"limit":      "10",
				"start":      "2025-06-01T00:00:00Z",
				"end":        "2025-06-08T00:00:00Z",
				"next_token": "tok_1",
			},
		},
		{
			name:   "zero limit omitted",
			params: &ListParams{Start: &start},
			want:   map[string]string{"start": "2025-06-01T00:00:00Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.params.values()
			if len(got) != len(tt.want) {
				t.Fatalf("len(values()) = %d, want %d", len(got), len(tt.want))
			}
			for k, want := range tt.want {
				if gotV := got.Get(k); gotV != want {
					t.Errorf("values()[%q] = %q, want %q", k, gotV, want)
				}
			}
		})
	}
}
