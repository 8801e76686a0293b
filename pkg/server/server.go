// Package server exposes signature detection and detection history over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/grokify/mogo/log/slogutil"

	"github.com/grokify/filesig/pkg/backend"
	"github.com/grokify/filesig/pkg/filesig"
	"github.com/grokify/filesig/pkg/observability"
)

// DefaultMaxUploadSize bounds a request body when Config.MaxUploadSize is unset.
const DefaultMaxUploadSize int64 = 32 << 20

// Config configures a Server.
type Config struct {
	// Registry defaults to filesig.Default().
	Registry *filesig.Registry

	// Store receives one record per detection. Nil disables history.
	Store backend.Store

	// Metrics enables request and detection instruments.
	Metrics *observability.Metrics

	// Provider serves /metrics when set.
	Provider *observability.Provider

	// Health serves /healthz and /readyz when set.
	Health *observability.HealthChecker

	// HeaderOnly makes the offset-0 fast path the default for /v1/detect.
	HeaderOnly bool

	MaxUploadSize int64
	Logger        *slog.Logger
}

// Server is the detection HTTP API.
type Server struct {
	full    *filesig.Matcher
	header  *filesig.Matcher
	store   backend.Store
	querier backend.Querier
	cfg     Config
	logger  *slog.Logger
	router  *mux.Router
}

// New builds a Server and its routes.
func New(cfg Config) *Server {
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = DefaultMaxUploadSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slogutil.Null()
	}

	opts := []filesig.Option{filesig.WithLogger(logger)}
	if cfg.Metrics != nil {
		opts = append(opts, filesig.WithObserver(observability.NewDetectionObserver(cfg.Metrics)))
	}

	s := &Server{
		full:   filesig.NewMatcher(cfg.Registry, opts...),
		header: filesig.NewMatcher(cfg.Registry, append(opts, filesig.WithHeaderOnly())...),
		store:  cfg.Store,
		cfg:    cfg,
		logger: logger,
	}
	if cfg.Store != nil {
		s.querier, _ = backend.AsQuerier(cfg.Store)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/detect", s.handleDetect).Methods(http.MethodPost)
	api.HandleFunc("/signatures", s.handleSignatures).Methods(http.MethodGet)
	api.HandleFunc("/detections", s.handleDetections).Methods(http.MethodGet)
	api.HandleFunc("/detections/{id}", s.handleDetection).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	if s.cfg.Health != nil {
		r.Handle("/healthz", s.cfg.Health.LivenessHandler())
		r.Handle("/readyz", s.cfg.Health.ReadinessHandler())
	}
	if s.cfg.Provider != nil {
		r.Handle("/metrics", s.cfg.Provider.PrometheusHandler())
	}

	if s.cfg.Metrics != nil {
		r.Use(mux.MiddlewareFunc(s.cfg.Metrics.Middleware(routeTemplate)))
	}
	return r
}

// routeTemplate names a request by its mux path template so that IDs do not
// explode metric cardinality.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Registry returns the signatures the full matcher scans.
func (s *Server) Registry() *filesig.Registry { return s.full.Registry() }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type detectResponse struct {
	filesig.Summary
	ID     string `json:"id,omitempty"`
	Source string `json:"source,omitempty"`
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)
	defer body.Close()

	headerOnly := s.cfg.HeaderOnly
	if v := r.URL.Query().Get("header"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid header parameter", http.StatusBadRequest)
			return
		}
		headerOnly = b
	}
	m := s.full
	if headerOnly {
		m = s.header
	}

	source := r.URL.Query().Get("source")
	if source == "" {
		source = "http:" + r.RemoteAddr
	}

	start := time.Now()
	res, err := m.Match(ctx, body)
	elapsed := time.Since(start)

	rec := backend.NewRecord(source, res, err, elapsed)
	s.record(ctx, rec)

	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, filesig.ErrSourceUnreadable):
			http.Error(w, "failed to read request body", http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	resp := detectResponse{Summary: res.Summary(), Source: source}
	if s.store != nil {
		resp.ID = rec.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) record(ctx context.Context, rec *backend.Record) {
	if s.store == nil {
		return
	}
	if err := s.store.Store(ctx, rec); err != nil {
		s.logger.Warn("failed to store detection", "source", rec.Source, "error", err)
	}
}

type signatureView struct {
	Pattern     string   `json:"pattern"`
	Offset      int      `json:"offset"`
	Description string   `json:"description"`
	Extensions  []string `json:"extensions"`
	Disputed    bool     `json:"disputed"`
}

func newSignatureView(sig filesig.Signature) signatureView {
	return signatureView{
		Pattern:     sig.Pattern(),
		Offset:      sig.Offset(),
		Description: sig.Description(),
		Extensions:  sig.Extensions(),
		Disputed:    sig.IsDisputed(),
	}
}

func (s *Server) handleSignatures(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reg := s.full.Registry()

	if v := q.Get("offset"); v != "" {
		off, err := strconv.Atoi(v)
		if err != nil || off < 0 {
			http.Error(w, "invalid offset parameter", http.StatusBadRequest)
			return
		}
		reg = reg.AtOffset(off)
	}

	sigs := reg.Signatures()
	if ext := q.Get("ext"); ext != "" {
		sigs = reg.WithExtension(ext)
	}

	views := make([]signatureView, 0, len(sigs))
	for _, sig := range sigs {
		views = append(views, newSignatureView(sig))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleDetections(w http.ResponseWriter, r *http.Request) {
	if s.querier == nil {
		http.Error(w, "detection history is not available", http.StatusNotFound)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recs, err := s.querier.Query(r.Context(), filter)
	if err != nil {
		s.logger.Error("failed to query detections", "error", err)
		http.Error(w, "failed to query detections", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []*backend.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleDetection(w http.ResponseWriter, r *http.Request) {
	if s.querier == nil {
		http.Error(w, "detection history is not available", http.StatusNotFound)
		return
	}

	id := mux.Vars(r)["id"]
	rec, err := s.querier.Get(r.Context(), id)
	if errors.Is(err, backend.ErrNotFound) {
		http.Error(w, "detection not found", http.StatusNotFound)
		return
	} else if err != nil {
		s.logger.Error("failed to get detection", "id", id, "error", err)
		http.Error(w, "failed to get detection", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.querier == nil {
		http.Error(w, "detection history is not available", http.StatusNotFound)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := s.querier.Stats(r.Context(), filter)
	if err != nil {
		s.logger.Error("failed to compute stats", "error", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// parseFilter reads ext, source (comma separated wildcards), unknown,
// disputed, failed, since, until, limit and offset.
func parseFilter(r *http.Request) (*backend.Filter, error) {
	q := r.URL.Query()
	f := &backend.Filter{
		Extension: strings.TrimPrefix(q.Get("ext"), "."),
		Desc:      true,
	}

	if v := q.Get("source"); v != "" {
		f.Sources = strings.Split(v, ",")
	}

	for name, dst := range map[string]**bool{
		"unknown":  &f.Unknown,
		"disputed": &f.Disputed,
		"failed":   &f.Failed,
	} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("invalid %s parameter", name)
			}
			*dst = backend.Bool(b)
		}
	}

	for name, dst := range map[string]*time.Time{
		"since": &f.StartTime,
		"until": &f.EndTime,
	} {
		if v := q.Get(name); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return nil, fmt.Errorf("invalid %s parameter", name)
			}
			*dst = t
		}
	}

	for name, dst := range map[string]*int{
		"limit":  &f.Limit,
		"offset": &f.Offset,
	} {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid %s parameter", name)
			}
			*dst = n
		}
	}

	if q.Get("order") == "asc" {
		f.Desc = false
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
