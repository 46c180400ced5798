package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golunar/lunardate"
	"github.com/golunar/lunardate/calendar"
)

func newTestServer(t *testing.T, cfg Config, opts ...Option) *Server {
	t.Helper()
	return New(lunardate.New(), cfg, opts...)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestSolarRoute(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	rec := get(t, s, "/api/v1/korean/solar/2023-03-22")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"calendar": "korean",
		"solar": "2023-03-22",
		"lunar": {"year": 2023, "month": 2, "day": 1, "leap": true},
		"display": "2023-02-01L"
	}`, rec.Body.String())

	rec = get(t, s, "/api/v1/cn/solar/2023-01-22")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "chinese", resp["calendar"])
	assert.Equal(t, "2024-01-01", resp["display"])
}

func TestLunarRoute(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/korean/lunar/2023-01-01", "2023-01-22"},
		{"/api/v1/korean/lunar/2023-02-01L", "2023-03-22"},
		{"/api/v1/korean/lunar/2020-04-01?leap=true", "2020-05-23"},
		{"/api/v1/korean/lunar/2020-04-01?leap=false", "2020-04-23"},
		{"/api/v1/chinese/lunar/2050-01-01", "2049-02-02"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s, tt.path)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var resp ConversionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Solar.String())
		})
	}
}

func TestErrorStatus(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/korean/solar/1900-01-30", http.StatusUnprocessableEntity},
		{"/api/v1/chinese/solar/2050-01-23", http.StatusUnprocessableEntity},
		{"/api/v1/korean/lunar/2050-01-01", http.StatusUnprocessableEntity},
		{"/api/v1/korean/lunar/2023-13-01", http.StatusBadRequest},
		{"/api/v1/korean/lunar/2023-01-30", http.StatusBadRequest},
		{"/api/v1/korean/lunar/2023-03-01L", http.StatusBadRequest},
		{"/api/v1/korean/lunar/2023-03-01?leap=maybe", http.StatusBadRequest},
		{"/api/v1/korean/lunar/garbage", http.StatusBadRequest},
		{"/api/v1/korean/solar/2023-02-30", http.StatusBadRequest},
		{"/api/v1/korean/solar/not-a-date", http.StatusBadRequest},
		{"/api/v1/japanese/solar/2023-01-22", http.StatusNotFound},
		{"/api/v1/korean/years/2050", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s, tt.path)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, rec.Header().Get(RequestIDHeader), resp.RequestID)
		})
	}
}

func TestClassify(t *testing.T) {
	corrupt := &calendar.ConversionError{
		Err:     errors.WithAssertionFailure(errors.Wrap(calendar.ErrInvalidMonthTypeCode, "code 9")),
		Variant: calendar.Korean,
		Input:   "2000-01-01",
	}
	status, class := classify(corrupt)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "table_corruption", class)

	status, class = classify(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal", class)
}

func TestYearAndRangeRoutes(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	rec := get(t, s, "/api/v1/korean/years/2023")
	require.Equal(t, http.StatusOK, rec.Code)
	var info struct {
		Calendar  string `json:"calendar"`
		Days      int    `json:"days"`
		LeapMonth int    `json:"leap_month"`
		Months    []any  `json:"months"`
		NewYear   string `json:"new_year"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "korean", info.Calendar)
	assert.Equal(t, 384, info.Days)
	assert.Equal(t, 2, info.LeapMonth)
	assert.Len(t, info.Months, 13)
	assert.Equal(t, "2023-01-22", info.NewYear)

	rec = get(t, s, "/api/v1/chinese/range")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"calendar": "chinese",
		"first_year": 1901,
		"last_year": 2050,
		"first": "1900-01-31",
		"last": "2050-01-22"
	}`, rec.Body.String())

	rec = get(t, s, "/api/v1/korean/years/abc")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, DefaultConfig())
	rec := get(t, s, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok", "table_version": 1}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, DefaultConfig())

	rec := get(t, s, "/health")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not a uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.NotEqual(t, "not a uuid", rec.Header().Get(RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = 0.001
	cfg.Burst = 2
	s := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		rec := get(t, s, "/api/v1/korean/solar/2023-01-22")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := get(t, s, "/api/v1/korean/solar/2023-01-22")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().RateLimited))

	// Health checks bypass the limiter.
	rec = get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := newTestServer(t, DefaultConfig(), WithRegistry(reg))

	get(t, s, "/api/v1/korean/solar/2023-01-22")
	get(t, s, "/api/v1/korean/solar/1800-01-01")
	get(t, s, "/api/v1/korean/lunar/2023-01-01")

	m := s.Metrics()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("korean", "to_lunar", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("korean", "to_lunar", "out_of_range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("korean", "to_solar", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.RequestsTotal.WithLabelValues("/api/v1/{calendar}/solar/{date}", http.MethodGet, "422")))

	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lunardate_conversions_total")
	assert.Contains(t, rec.Body.String(), "lunardate_http_request_duration_seconds")
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newTestServer(t, DefaultConfig(), WithLogger(logger))

	rec := get(t, s, "/api/v1/korean/solar/1900-01-01")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	out := buf.String()
	assert.Contains(t, out, "request_id="+rec.Header().Get(RequestIDHeader))
	assert.Contains(t, out, "class=out_of_range")
	assert.Contains(t, out, "status=422")
}

func TestListenAndServeShutdown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second
	s := newTestServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Addr = "bad:address:here"
	s := newTestServer(t, cfg)

	err := s.ListenAndServe(context.Background())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "listen"), err.Error())
}
