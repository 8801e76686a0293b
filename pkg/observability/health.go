package observability

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"sort"
	"sync"
	"time"
)

// HealthChecker manages health check state and endpoints.
type HealthChecker struct {
	mu        sync.RWMutex
	ready     bool
	checks    map[string]HealthCheck
	details   map[string]string
	startedAt time.Time
	timeout   time.Duration
}

// HealthCheck returns nil if the dependency is healthy.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents the health status response.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// NewHealthChecker creates a new health checker.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks:    make(map[string]HealthCheck),
		details:   make(map[string]string),
		startedAt: time.Now(),
		timeout:   5 * time.Second,
	}
}

// RegisterCheck registers a named readiness check.
func (h *HealthChecker) RegisterCheck(name string, check HealthCheck) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// SetDetail attaches static information, such as the registry size, to the
// liveness response.
func (h *HealthChecker) SetDetail(key, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.details[key] = value
}

// SetReady marks the service as ready to receive traffic.
func (h *HealthChecker) SetReady(ready bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ready = ready
}

// IsReady returns whether the service is ready.
func (h *HealthChecker) IsReady() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ready
}

// LivenessHandler returns an http.Handler for the /healthz endpoint.
func (h *HealthChecker) LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.RLock()
		details := maps.Clone(h.details)
		h.mu.RUnlock()
		writeStatus(w, http.StatusOK, HealthStatus{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
			Details:   details,
		})
	})
}

// ReadinessHandler returns an http.Handler for the /readyz endpoint.
// Returns 200 if ready and every check passes, 503 otherwise.
func (h *HealthChecker) ReadinessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.RLock()
		ready := h.ready
		names := make([]string, 0, len(h.checks))
		checks := make(map[string]HealthCheck, len(h.checks))
		for k, v := range h.checks {
			names = append(names, k)
			checks[k] = v
		}
		h.mu.RUnlock()
		sort.Strings(names)

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		status := HealthStatus{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    make(map[string]string),
		}

		allHealthy := ready
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				status.Checks[name] = err.Error()
				allHealthy = false
			} else {
				status.Checks[name] = "ok"
			}
		}
		if !ready {
			status.Checks["ready"] = "not ready"
		}

		code := http.StatusOK
		status.Status = "ok"
		if !allHealthy {
			code = http.StatusServiceUnavailable
			status.Status = "unhealthy"
		}
		writeStatus(w, code, status)
	})
}

func writeStatus(w http.ResponseWriter, code int, status HealthStatus) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}

// NewHealthMux creates an http.ServeMux with health and metrics endpoints,
// used when metrics are served on their own port.
func NewHealthMux(health *HealthChecker, provider *Provider) *http.ServeMux {
	mux := http.NewServeMux()

	if health != nil {
		mux.Handle("/healthz", health.LivenessHandler())
		mux.Handle("/readyz", health.ReadinessHandler())
	}

	if provider != nil {
		mux.Handle("/metrics", provider.PrometheusHandler())
	}

	return mux
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- server.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
