package observability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/grokify/filesig/pkg/filesig"
)

// Provider holds the OpenTelemetry providers and exporters.
type Provider struct {
	MeterProvider *sdkmetric.MeterProvider
	Metrics       *Metrics
	registry      *prometheus.Registry
}

// Config configures the observability provider.
type Config struct {
	// ServiceName is the name of the service for telemetry.
	ServiceName string

	// ServiceVersion is the version of the service.
	ServiceVersion string

	// EnablePrometheus enables the Prometheus metrics exporter.
	EnablePrometheus bool

	// SetGlobal installs the meter provider as the otel global.
	SetGlobal bool
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		ServiceName:      "filesig",
		ServiceVersion:   "dev",
		EnablePrometheus: true,
		SetGlobal:        true,
	}
}

// NewProvider creates a new observability provider. Each provider exports
// through its own Prometheus registry.
func NewProvider(cfg *Config) (*Provider, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	p := &Provider{}

	if cfg.EnablePrometheus {
		p.registry = prometheus.NewRegistry()
		exporter, err := otelprom.New(otelprom.WithRegisterer(p.registry))
		if err != nil {
			return nil, err
		}
		p.MeterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(exporter),
		)
	} else {
		p.MeterProvider = sdkmetric.NewMeterProvider()
	}

	if cfg.SetGlobal {
		otel.SetMeterProvider(p.MeterProvider)
	}

	metrics, err := NewMetrics(p.MeterProvider)
	if err != nil {
		return nil, err
	}
	p.Metrics = metrics

	return p, nil
}

// PrometheusHandler returns an http.Handler for the /metrics endpoint.
func (p *Provider) PrometheusHandler() http.Handler {
	if p.registry == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "prometheus exporter disabled", http.StatusNotFound)
		})
	}
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.MeterProvider != nil {
		return p.MeterProvider.Shutdown(ctx)
	}
	return nil
}

// DetectionObserver adapts Metrics to filesig.Observer.
type DetectionObserver struct {
	m *Metrics
}

// NewDetectionObserver creates a filesig.Observer backed by m.
func NewDetectionObserver(m *Metrics) *DetectionObserver {
	return &DetectionObserver{m: m}
}

// ObserveDetection records the outcome of one match.
func (o *DetectionObserver) ObserveDetection(ctx context.Context, res filesig.Result, err error, elapsed time.Duration) {
	outcome := OutcomeMatch
	switch {
	case err != nil && !errors.Is(err, context.Canceled):
		outcome = OutcomeError
	case err != nil:
		return
	case res.IsNone():
		outcome = OutcomeUnknown
	}
	o.m.RecordDetection(ctx, outcome, res.Extensions(), res.IsDisputed(), elapsed, res.Available)
}

// BackendMetrics adapts the observability.Metrics to the backend.Metrics interface.
type BackendMetrics struct {
	m   *Metrics
	ctx context.Context
}

// NewBackendMetrics creates a backend.Metrics adapter.
func NewBackendMetrics(m *Metrics) *BackendMetrics {
	return &BackendMetrics{
		m:   m,
		ctx: context.Background(),
	}
}

// IncStoreSuccess increments the stored records counter.
func (b *BackendMetrics) IncStoreSuccess(n int) {
	b.m.RecordStored(b.ctx, n)
}

// IncStoreError increments the store error counter.
func (b *BackendMetrics) IncStoreError() {
	b.m.RecordStoreError(b.ctx)
}

// ObserveStoreDuration records store operation duration.
func (b *BackendMetrics) ObserveStoreDuration(d time.Duration) {
	b.m.RecordStoreDuration(b.ctx, d)
}
