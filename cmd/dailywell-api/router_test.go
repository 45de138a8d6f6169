package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailywell/backend/internal/config"
	"github.com/dailywell/backend/internal/handlers"
	"github.com/dailywell/backend/internal/logger"
	"github.com/dailywell/backend/internal/models"
)

var refNow = time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := handlers.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testApp struct {
	router http.Handler
	svc    services
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		Server:    config.ServerConfig{Port: "0", Env: "test"},
		Database:  config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "dailywell.db")},
		Analytics: config.AnalyticsConfig{WindowDays: 30, Timezone: "UTC"},
	}

	store, err := openStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	opts, err := serviceOptions(cfg)
	require.NoError(t, err)
	opts.Now = func() time.Time { return refNow }

	log := logger.NewSlogLogger(logger.Config{Level: logger.LevelError, Output: io.Discard})
	svc := newServices(store, opts)
	return &testApp{router: newRouter(cfg, log, store, svc, opts), svc: svc}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestRouter_MoodFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/moods", `{"mood": 4}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = app.do(t, http.MethodPost, "/api/v1/moods", `{"mood": 2, "note": "tired"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/moods/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"average_mood": 3, "window_days": 30, "current_streak": 1, "best_streak": 1}`, w.Body.String())

	w = app.do(t, http.MethodGet, "/api/v1/moods/analytics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"most_frequent_value": 2, "best_day": "Thursday", "worst_day": "Thursday", "total_entries": 2}`, w.Body.String())

	w = app.do(t, http.MethodGet, "/api/v1/entries/mood", "")
	require.Equal(t, http.StatusOK, w.Code)
	var entries models.EntriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries.Entries, 2)
}

func TestRouter_FoodFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/v1/food/2024-03-14", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPut, "/api/v1/food/2024-03-14", `{"breakfast": true, "water_intake": 2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(t, http.MethodPut, "/api/v1/food/2024-03-14", `{"dinner": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var intake models.FoodIntake
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &intake))
	assert.True(t, intake.Breakfast)
	assert.True(t, intake.Dinner)
	assert.Equal(t, 2, intake.WaterIntake)

	w = app.do(t, http.MethodPut, "/api/v1/food/2024-03-14", `{"water_intake": 9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/entries/water?start_date=2024-03-01&end_date=2024-03-14", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"value":2`)
}

func TestRouter_SleepStats(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/sleep", `{"sleep_time": "2024-03-13T23:00:00Z", "wake_time": "2024-03-14T06:30:00Z", "quality": 4}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = app.do(t, http.MethodPost, "/api/v1/screen-time", `{"date": "2024-03-13T21:10:00Z", "minutes": 90, "category": "entertainment"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = app.do(t, http.MethodGet, "/api/v1/sleep/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.SleepStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 7.5, stats.AverageSleepHours)
	assert.Equal(t, 4.0, stats.SleepQuality)
	assert.Equal(t, 1.5, stats.AverageScreenTimeHours)
	assert.Equal(t, "9pm-10pm", stats.PeakScreenTime)
}

func TestRouter_ErrorsAndOps(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/v1/entries/steps", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	w = app.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dailywell_http_requests_total")
}

func TestWriteStats(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	_, err := app.svc.moods.AddMood(ctx, &models.CreateMoodRequest{Mood: 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeStats(ctx, &buf, app.svc))

	var report map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Contains(t, report, "mood")
	assert.Contains(t, report, "mood_by_day")
	assert.Contains(t, report, "sleep")
	assert.Contains(t, string(report["mood"]), `"average_mood": 5`)
}
