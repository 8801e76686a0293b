// Package observability provides OpenTelemetry instrumentation for filesig.
package observability

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/grokify/filesig"
)

// Detection outcomes recorded on filesig.detections.total.
const (
	OutcomeMatch   = "match"
	OutcomeUnknown = "unknown"
	OutcomeError   = "error"
)

// Metrics holds all filesig metrics.
type Metrics struct {
	// Detection metrics
	DetectionsTotal   metric.Int64Counter
	DetectionDuration metric.Float64Histogram
	DetectionWindow   metric.Int64Histogram

	// Store metrics
	StoreRecords    metric.Int64Counter
	StoreErrors     metric.Int64Counter
	StoreDuration   metric.Float64Histogram
	StoreQueueDepth metric.Int64ObservableGauge

	// HTTP metrics
	RequestsTotal   metric.Int64Counter
	RequestDuration metric.Float64Histogram
	ActiveRequests  metric.Int64UpDownCounter

	queueDepthFunc func() int64
}

// NewMetrics creates a new Metrics instance with all instruments registered.
func NewMetrics(meterProvider metric.MeterProvider) (*Metrics, error) {
	if meterProvider == nil {
		meterProvider = otel.GetMeterProvider()
	}

	meter := meterProvider.Meter(instrumentationName)
	m := &Metrics{}

	var err error

	m.DetectionsTotal, err = meter.Int64Counter(
		"filesig.detections.total",
		metric.WithDescription("Total number of signature detections"),
		metric.WithUnit("{detection}"),
	)
	if err != nil {
		return nil, err
	}

	m.DetectionDuration, err = meter.Float64Histogram(
		"filesig.detection.duration",
		metric.WithDescription("Detection duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000),
	)
	if err != nil {
		return nil, err
	}

	m.DetectionWindow, err = meter.Int64Histogram(
		"filesig.detection.window",
		metric.WithDescription("Leading bytes available to the matcher"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(0, 4, 8, 19, 64, 128, 256, 545),
	)
	if err != nil {
		return nil, err
	}

	m.StoreRecords, err = meter.Int64Counter(
		"filesig.store.records",
		metric.WithDescription("Total number of detection records stored"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	m.StoreErrors, err = meter.Int64Counter(
		"filesig.store.errors",
		metric.WithDescription("Total number of detection store errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	m.StoreDuration, err = meter.Float64Histogram(
		"filesig.store.duration",
		metric.WithDescription("Store operation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	m.RequestsTotal, err = meter.Int64Counter(
		"filesig.requests.total",
		metric.WithDescription("Total number of HTTP requests processed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	m.RequestDuration, err = meter.Float64Histogram(
		"filesig.request.duration",
		metric.WithDescription("Request duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000),
	)
	if err != nil {
		return nil, err
	}

	m.ActiveRequests, err = meter.Int64UpDownCounter(
		"filesig.requests.active",
		metric.WithDescription("Number of requests currently being processed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RegisterQueueDepthCallback registers a callback to observe the async store queue.
func (m *Metrics) RegisterQueueDepthCallback(meterProvider metric.MeterProvider, fn func() int64) error {
	if meterProvider == nil {
		meterProvider = otel.GetMeterProvider()
	}

	meter := meterProvider.Meter(instrumentationName)
	m.queueDepthFunc = fn

	var err error
	m.StoreQueueDepth, err = meter.Int64ObservableGauge(
		"filesig.store.queue.depth",
		metric.WithDescription("Current number of records waiting in the store queue"),
		metric.WithUnit("{record}"),
		metric.WithInt64Callback(func(ctx context.Context, o metric.Int64Observer) error {
			if m.queueDepthFunc != nil {
				o.Observe(m.queueDepthFunc())
			}
			return nil
		}),
	)
	return err
}

// RecordDetection records one matcher outcome.
func (m *Metrics) RecordDetection(ctx context.Context, outcome string, extensions []string, disputed bool, duration time.Duration, available int) {
	ext := strings.Join(extensions, "|")
	if ext == "" {
		ext = OutcomeUnknown
	}
	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("extension", ext),
		attribute.Bool("disputed", disputed),
	)

	m.DetectionsTotal.Add(ctx, 1, attrs)
	m.DetectionDuration.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
	if outcome != OutcomeError {
		m.DetectionWindow.Record(ctx, int64(available))
	}
}

// RecordRequest records metrics for a completed request.
func (m *Metrics) RecordRequest(ctx context.Context, method, route string, statusCode int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status_code", statusCode),
		attribute.String("status_class", statusClass(statusCode)),
	)

	m.RequestsTotal.Add(ctx, 1, attrs)
	m.RequestDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// RecordStored records a successful store of n records.
func (m *Metrics) RecordStored(ctx context.Context, n int) {
	m.StoreRecords.Add(ctx, int64(n))
}

// RecordStoreError records a store error.
func (m *Metrics) RecordStoreError(ctx context.Context) {
	m.StoreErrors.Add(ctx, 1)
}

// RecordStoreDuration records how long a store operation took.
func (m *Metrics) RecordStoreDuration(ctx context.Context, d time.Duration) {
	m.StoreDuration.Record(ctx, float64(d.Microseconds())/1000)
}

// statusClass returns the status class (1xx, 2xx, etc.)
func statusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500 && code < 600:
		return "5xx"
	default:
		return "unknown"
	}
}

// RouteFunc names the route of a request for the route attribute.
type RouteFunc func(*http.Request) string

// Middleware wraps an http.Handler with request metrics. route may be nil, in
// which case the URL path is used.
func (m *Metrics) Middleware(route RouteFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			m.ActiveRequests.Add(ctx, 1)
			defer m.ActiveRequests.Add(ctx, -1)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			name := r.URL.Path
			if route != nil {
				name = route(r)
			}
			m.RecordRequest(ctx, r.Method, name, wrapped.statusCode, time.Since(start))
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
