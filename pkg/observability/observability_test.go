package observability

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/grokify/filesig/pkg/filesig"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func sumOf(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func TestDetectionObserver(t *testing.T) {
	m, reader := newTestMetrics(t)
	obs := NewDetectionObserver(m)
	ctx := context.Background()

	png := filesig.DetectBytes([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	require.False(t, png.IsNone())

	obs.ObserveDetection(ctx, png, nil, time.Millisecond)
	obs.ObserveDetection(ctx, filesig.Result{Signature: filesig.None, Available: 5}, nil, time.Millisecond)
	obs.ObserveDetection(ctx, filesig.Result{Signature: filesig.None}, errors.New("boom"), 0)
	obs.ObserveDetection(ctx, filesig.Result{Signature: filesig.None}, context.Canceled, 0)

	assert.Equal(t, int64(3), sumOf(t, reader, "filesig.detections.total"))
}

func TestBackendMetrics(t *testing.T) {
	m, reader := newTestMetrics(t)
	b := NewBackendMetrics(m)
	b.IncStoreSuccess(4)
	b.IncStoreError()
	b.ObserveStoreDuration(time.Millisecond)

	assert.Equal(t, int64(4), sumOf(t, reader, "filesig.store.records"))
	assert.Equal(t, int64(1), sumOf(t, reader, "filesig.store.errors"))
}

func TestMiddleware(t *testing.T) {
	m, reader := newTestMetrics(t)
	h := m.Middleware(func(*http.Request) string { return "/v1/detect" })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/detect", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, int64(1), sumOf(t, reader, "filesig.requests.total"))
}

func TestProviderPrometheusHandler(t *testing.T) {
	p, err := NewProvider(&Config{ServiceName: "test", EnablePrometheus: true})
	require.NoError(t, err)
	defer p.Shutdown(context.Background())

	p.Metrics.RecordDetection(context.Background(), OutcomeMatch, []string{"PNG"}, false, time.Millisecond, 19)

	rec := httptest.NewRecorder()
	p.PrometheusHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(string(body), "filesig_detections_total"), "metrics output: %s", body)
}

func TestHealthChecker(t *testing.T) {
	h := NewHealthChecker()

	rec := httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	h.SetReady(true)
	h.RegisterCheck("store", func(context.Context) error { return nil })
	rec = httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	h.RegisterCheck("nats", func(context.Context) error { return errors.New("disconnected") })
	rec = httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "disconnected")

	h.SetDetail("signatures", "42")
	rec = httptest.NewRecorder()
	h.LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "42", status.Details["signatures"])
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- ListenAndServe(ctx, "127.0.0.1:0", NewHealthMux(NewHealthChecker(), nil)) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
