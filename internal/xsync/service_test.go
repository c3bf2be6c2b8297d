package xsync

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/oauth2"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/client/wearable"
	"github.com/nutrisync/nutrisync/internal/profile"
	"github.com/nutrisync/nutrisync/internal/repository"
	"github.com/nutrisync/nutrisync/internal/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memSamples struct {
	mu       sync.Mutex
	activity map[string][]aggregate.ActivitySample
	sleep    map[string][]aggregate.SleepSample
}

func newMemSamples() *memSamples {
	return &memSamples{
		activity: make(map[string][]aggregate.ActivitySample),
		sleep:    make(map[string][]aggregate.SleepSample),
	}
}

func (m *memSamples) UpsertActivity(_ context.Context, userID string, samples []aggregate.ActivitySample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activity[userID] = append(m.activity[userID], samples...)
	return nil
}

func (m *memSamples) UpsertSleep(_ context.Context, userID string, samples []aggregate.SleepSample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleep[userID] = append(m.sleep[userID], samples...)
	return nil
}

func (m *memSamples) ActivityByDateRange(_ context.Context, userID string, _, _ time.Time, _ *repository.CursorParams) (*repository.CursorResult[aggregate.ActivitySample], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &repository.CursorResult[aggregate.ActivitySample]{Records: m.activity[userID]}, nil
}

func (m *memSamples) SleepByDateRange(_ context.Context, userID string, _, _ time.Time, _ *repository.CursorParams) (*repository.CursorResult[aggregate.SleepSample], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &repository.CursorResult[aggregate.SleepSample]{Records: m.sleep[userID]}, nil
}

type memMetrics struct {
	mu          sync.Mutex
	byUser      map[string]*aggregate.Metrics
	latestCalls int
}

func newMemMetrics() *memMetrics {
	return &memMetrics{byUser: make(map[string]*aggregate.Metrics)}
}

func (m *memMetrics) Upsert(_ context.Context, userID string, metrics aggregate.Metrics) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[userID] = &metrics
	return nil
}

func (m *memMetrics) Latest(_ context.Context, userID string) (*aggregate.Metrics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latestCalls++
	return m.byUser[userID], nil
}

type memProfiles struct {
	p *profile.Profile
}

func (m *memProfiles) Get(context.Context, string) (*profile.Profile, error) { return m.p, nil }
func (m *memProfiles) Upsert(_ context.Context, p *profile.Profile) error    { m.p = p; return nil }
func (m *memProfiles) Delete(context.Context, string) error                  { m.p = nil; return nil }

func testProfile() *profile.Profile {
	return &profile.Profile{
		UserID:               "u_1",
		Name:                 "Alex",
		Age:                  30,
		WeightKg:             80,
		HeightCm:             180,
		Gender:               "male",
		ActivityLevel:        "moderate",
		Goal:                 "maintenance",
		WeeklyActivityTarget: 150,
	}
}

func wearableClient(t *testing.T, handler http.HandlerFunc) *wearable.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	return wearable.New(source, wearable.WithBaseURL(srv.URL))
}

func TestBackfill(t *testing.T) {
	t.Parallel()

	client := wearableClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/activity":
			if r.URL.Query().Get("next_token") == "" {
				_, _ = w.Write([]byte(`{
					"records": [
						{"date":"2025-06-01T00:00:00Z","platform":"fitbit","steps":8000,"calories_burned":600,
						 "active_minutes":{"fairly_active":20,"very_active":10},"heart_rate":{"resting":58}},
						{"date":"2025-06-02T00:00:00Z","platform":"fitbit","steps":9000,"calories_burned":700,
						 "active_minutes":{"fairly_active":25,"very_active":15},"heart_rate":{"resting":57}}
					],
					"next_token": "p2"
				}`))
				return
			}
			_, _ = w.Write([]byte(`{
				"records": [
					{"date":"2025-06-03T00:00:00Z","platform":"garmin","steps":12000,"calories_burned":850,
					 "active_minutes":{"fairly_active":30,"very_active":25},"heart_rate":{"resting":56}}
				]
			}`))
		case "/v1/sleep":
			_, _ = w.Write([]byte(`{
				"records": [
					{"date":"2025-06-01T00:00:00Z","platform":"fitbit","sleep_duration":7.5,"time_in_bed":8,
					 "efficiency":0.94,"sleep_stages":{"deep":1.5},"score":82,"hrv_rmssd_milli":45},
					{"date":"2025-06-02T00:00:00Z","platform":"fitbit","sleep_duration":6,"time_in_bed":7,
					 "efficiency":0.86,"sleep_stages":{"deep":1},"score":70,"hrv_rmssd_milli":40}
				]
			}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	samples := newMemSamples()
	svc := NewService(client, Repos{
		Profiles: &memProfiles{},
		Samples:  samples,
		Metrics:  newMemMetrics(),
	}, nil, discardLogger())

	if err := svc.Backfill(t.Context(), "u_1", 7); err != nil {
		t.Fatalf("Backfill() error = %v", err)
	}

	if len(samples.activity["u_1"]) != 3 {
		t.Errorf("activity samples = %d, want 3", len(samples.activity["u_1"]))
	}
	if len(samples.sleep["u_1"]) != 2 {
		t.Errorf("sleep samples = %d, want 2", len(samples.sleep["u_1"]))
	}

	first := samples.activity["u_1"][0]
	if first.Steps != 8000 || first.FairlyActiveMinutes != 20 || first.VeryActiveMinutes != 10 {
		t.Errorf("mapped activity = %+v", first)
	}
	if first.RestingHeartRate != 58 {
		t.Errorf("RestingHeartRate = %v, want 58", first.RestingHeartRate)
	}

	night := samples.sleep["u_1"][0]
	if night.Duration != 7*time.Hour+30*time.Minute {
		t.Errorf("Duration = %v, want 7h30m", night.Duration)
	}
	if night.DeepSleep != 90*time.Minute {
		t.Errorf("DeepSleep = %v, want 1h30m", night.DeepSleep)
	}
	if night.HRVMillis != 45 {
		t.Errorf("HRVMillis = %v, want 45", night.HRVMillis)
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	samples := newMemSamples()
	metrics := newMemMetrics()
	cache := storage.NewMemoryBackend(100, 100)
	t.Cleanup(func() { _ = cache.Close() })

	svc := NewService(nil, Repos{
		Profiles: &memProfiles{p: testProfile()},
		Samples:  samples,
		Metrics:  metrics,
	}, cache, discardLogger())

	ctx := t.Context()
	day1 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	_ = samples.UpsertActivity(ctx, "u_1", []aggregate.ActivitySample{
		{Timestamp: day1, Platform: aggregate.PlatformFitbit, Steps: 8000, CaloriesBurned: 600},
		{Timestamp: day2, Platform: aggregate.PlatformFitbit, Steps: 12000, CaloriesBurned: 800},
	})
	_ = samples.UpsertSleep(ctx, "u_1", []aggregate.SleepSample{
		{Timestamp: day1, Platform: aggregate.PlatformFitbit, Duration: 7 * time.Hour},
		{Timestamp: day2, Platform: aggregate.PlatformFitbit, Duration: 8 * time.Hour},
	})

	rng := aggregate.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
	}

	got, err := svc.Aggregate(ctx, "u_1", rng)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if got.AvgDailySteps != 10000 {
		t.Errorf("AvgDailySteps = %v, want 10000", got.AvgDailySteps)
	}
	if got.AvgSleepDuration != 7.5 {
		t.Errorf("AvgSleepDuration = %v, want 7.5", got.AvgSleepDuration)
	}
	if got.EstimatedBMR != 1780 {
		t.Errorf("EstimatedBMR = %d, want 1780", got.EstimatedBMR)
	}
	if got.RecommendedCalories != 2759 {
		t.Errorf("RecommendedCalories = %d, want 2759", got.RecommendedCalories)
	}
	wantMacros := aggregate.MacroGrams{Protein: 207, Carbs: 276, Fat: 92}
	if got.RecommendedMacros != wantMacros {
		t.Errorf("RecommendedMacros = %+v, want %+v", got.RecommendedMacros, wantMacros)
	}

	stored, err := metrics.Latest(ctx, "u_1")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if stored == nil {
		t.Fatal("metrics were not stored")
	}

	cached, err := cache.Get(ctx, "u_1")
	if err != nil {
		t.Fatalf("cache.Get() error = %v", err)
	}
	if diff := cmp.Diff(*got, cached); diff != "" {
		t.Errorf("cached metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateWithoutProfile(t *testing.T) {
	t.Parallel()

	samples := newMemSamples()
	svc := NewService(nil, Repos{
		Profiles: &memProfiles{},
		Samples:  samples,
		Metrics:  newMemMetrics(),
	}, nil, discardLogger())

	ctx := t.Context()
	_ = samples.UpsertActivity(ctx, "u_1", []aggregate.ActivitySample{
		{Timestamp: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), Platform: aggregate.PlatformFitbit, Steps: 8000},
	})

	rng := aggregate.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
	}

	got, err := svc.Aggregate(ctx, "u_1", rng)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if got.EstimatedBMR != 0 || got.RecommendedCalories != 0 {
		t.Errorf("enrichment = %d/%d, want zero without a profile", got.EstimatedBMR, got.RecommendedCalories)
	}
}

func TestFetcherCacheFirst(t *testing.T) {
	t.Parallel()

	cache := storage.NewMemoryBackend(100, 100)
	t.Cleanup(func() { _ = cache.Close() })

	metrics := newMemMetrics()
	svc := NewService(nil, Repos{
		Profiles: &memProfiles{},
		Samples:  newMemSamples(),
		Metrics:  metrics,
	}, cache, discardLogger())
	fetcher := NewFetcher(svc, discardLogger())

	ctx := t.Context()
	want := aggregate.Metrics{AvgDailySteps: 4321, ActivityLevel: aggregate.ActivityLabelSedentary}
	if err := cache.Set(ctx, "u_1", want, time.Minute); err != nil {
		t.Fatalf("cache.Set() error = %v", err)
	}

	got, err := fetcher.Metrics(ctx, "u_1", aggregate.DateRange{})
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("Metrics() mismatch (-want +got):\n%s", diff)
	}
	if metrics.latestCalls != 0 {
		t.Errorf("repository Latest calls = %d, want 0 on cache hit", metrics.latestCalls)
	}
}

func TestFetcherRepositoryFallback(t *testing.T) {
	t.Parallel()

	cache := storage.NewMemoryBackend(100, 100)
	t.Cleanup(func() { _ = cache.Close() })

	metrics := newMemMetrics()
	svc := NewService(nil, Repos{
		Profiles: &memProfiles{},
		Samples:  newMemSamples(),
		Metrics:  metrics,
	}, cache, discardLogger())
	fetcher := NewFetcher(svc, discardLogger())

	ctx := t.Context()
	stored := aggregate.Metrics{AvgDailySteps: 6500}
	if err := metrics.Upsert(ctx, "u_1", stored); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := fetcher.Metrics(ctx, "u_1", aggregate.DateRange{})
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if got.AvgDailySteps != 6500 {
		t.Errorf("AvgDailySteps = %v, want 6500", got.AvgDailySteps)
	}

	// The read-through should have refilled the cache.
	cached, err := cache.Get(ctx, "u_1")
	if err != nil {
		t.Fatalf("cache.Get() error = %v", err)
	}
	if cached.AvgDailySteps != 6500 {
		t.Errorf("cached AvgDailySteps = %v, want 6500", cached.AvgDailySteps)
	}
}

func TestFetcherLiveFetch(t *testing.T) {
	t.Parallel()

	var apiCalls int
	var mu sync.Mutex
	client := wearableClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		apiCalls++
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records": []}`))
	})

	svc := NewService(client, Repos{
		Profiles: &memProfiles{},
		Samples:  newMemSamples(),
		Metrics:  newMemMetrics(),
	}, nil, discardLogger())
	fetcher := NewFetcher(svc, discardLogger())

	got, err := fetcher.Metrics(t.Context(), "u_1", aggregate.DateRange{})
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}

	mu.Lock()
	calls := apiCalls
	mu.Unlock()
	if calls == 0 {
		t.Error("live fetch did not reach the API")
	}
	if !got.NoData {
		t.Error("NoData = false, want true for empty window")
	}
}
