// Package proxy provides a forward HTTP proxy that tags every response with
// the file type sniffed from its first bytes.
package proxy

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/elazarl/goproxy"
	"github.com/grokify/mogo/log/slogutil"

	"github.com/grokify/filesig/pkg/backend"
	"github.com/grokify/filesig/pkg/contenttype"
	"github.com/grokify/filesig/pkg/filesig"
)

// Response headers added to sniffed responses. HeaderMismatch is only set
// when the declared Content-Type could be checked, and HeaderClass only when
// no signature matched.
const (
	HeaderType     = "X-Filesig-Type"
	HeaderDisputed = "X-Filesig-Disputed"
	HeaderMismatch = "X-Filesig-Mismatch"
	HeaderClass    = "X-Filesig-Class"
)

// DefaultSniffTimeout bounds how long a response is held back while its
// leading bytes arrive.
const DefaultSniffTimeout = 500 * time.Millisecond

// Proxy is a sniffing forward proxy.
type Proxy struct {
	server     *goproxy.ProxyHttpServer
	matcher    *filesig.Matcher
	store      backend.Store
	filter     *HostFilter
	config     *Config
	logger     *slog.Logger
	sniffLimit int
	timeout    time.Duration
}

// Config holds proxy configuration options.
type Config struct {
	// Matcher defaults to the built-in registry.
	Matcher *filesig.Matcher
	// Store receives one record per sniffed response (optional).
	Store backend.Store
	// TagHeaders adds X-Filesig-* headers to the response sent to the client.
	TagHeaders bool
	// IncludeHosts and ExcludeHosts select the hosts to sniff (supports wildcards).
	IncludeHosts []string
	ExcludeHosts []string
	// Upstream is the upstream proxy URL (e.g., http://proxy:8080)
	Upstream string
	// SniffTimeout bounds the wait for leading bytes; a slower stream is
	// matched against what has arrived (default: DefaultSniffTimeout).
	SniffTimeout time.Duration
	// Verbose enables goproxy's own request logging.
	Verbose bool
	Logger  *slog.Logger
}

// DefaultConfig returns default proxy configuration.
func DefaultConfig() *Config {
	return &Config{TagHeaders: true, SniffTimeout: DefaultSniffTimeout}
}

// New creates a new proxy with the given configuration.
func New(cfg *Config) (*Proxy, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slogutil.Null()
	}

	filter := &HostFilter{Include: cfg.IncludeHosts, Exclude: cfg.ExcludeHosts}
	if err := filter.Compile(); err != nil {
		return nil, fmt.Errorf("invalid host filter: %w", err)
	}

	matcher := cfg.Matcher
	if matcher == nil {
		matcher = filesig.NewMatcher(nil, filesig.WithLogger(logger))
	}

	server := goproxy.NewProxyHttpServer()
	server.Verbose = cfg.Verbose

	timeout := cfg.SniffTimeout
	if timeout <= 0 {
		timeout = DefaultSniffTimeout
	}

	p := &Proxy{
		server:     server,
		matcher:    matcher,
		store:      cfg.Store,
		filter:     filter,
		config:     cfg,
		logger:     logger,
		sniffLimit: sniffLimit(matcher.Registry()),
		timeout:    timeout,
	}

	if cfg.Upstream != "" {
		if err := p.setupUpstream(cfg.Upstream); err != nil {
			return nil, err
		}
	}

	p.server.OnResponse().DoFunc(p.sniff)
	return p, nil
}

// setupUpstream configures upstream proxy chaining.
func (p *Proxy) setupUpstream(upstreamURL string) error {
	upstream, err := url.Parse(upstreamURL)
	if err != nil {
		return err
	}
	if upstream.Scheme == "" || upstream.Host == "" {
		return fmt.Errorf("invalid upstream proxy URL: %q", upstreamURL)
	}

	p.server.Tr = &http.Transport{
		Proxy: http.ProxyURL(upstream),
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	// For CONNECT requests, use the upstream proxy
	p.server.ConnectDial = p.server.NewConnectDialToProxy(upstreamURL)

	return nil
}

// sniffLimit is the longest prefix any signature or the text/binary
// classifier looks at.
func sniffLimit(reg *filesig.Registry) int {
	limit := contenttype.SampleSize
	for _, s := range reg.Signatures() {
		limit = max(limit, s.Offset()+filesig.MaxPatternBytes)
	}
	return limit
}

// sniff replaces the response body with a prefetching window over it, so the
// bytes used for detection are replayed to the client unchanged.
func (p *Proxy) sniff(resp *http.Response, ctx *goproxy.ProxyCtx) *http.Response {
	if resp == nil || ctx.Req == nil || !hasBody(resp, ctx.Req) {
		return resp
	}
	keepChunked(resp)
	if isStream(resp.Header.Get("Content-Type")) {
		return resp
	}
	if !p.filter.Match(ctx.Req.URL.Host) {
		return resp
	}

	reqCtx := ctx.Req.Context()
	window := newPrefetchBody(resp.Body, p.sniffLimit, p.timeout)
	resp.Body = window

	start := time.Now()
	res, err := p.matcher.MatchWindow(reqCtx, window)
	elapsed := time.Since(start)

	source := ctx.Req.URL.String()
	if err != nil {
		p.logger.Warn("failed to sniff response", "url", source, "error", err)
	} else {
		declared := resp.Header.Get("Content-Type")
		verdict := contenttype.Check(declared, res)
		p.logger.Debug("sniffed response",
			"url", source,
			"status", resp.StatusCode,
			"type", typeHeader(res),
			"content_type", declared,
			"verdict", verdict)
		if verdict == contenttype.Mismatch {
			p.logger.Warn("response content does not match its declared type",
				"url", source,
				"content_type", declared,
				"type", typeHeader(res))
		}
		if p.config.TagHeaders {
			p.tag(resp.Header, window, res, verdict)
		}
	}

	if p.store != nil {
		if serr := p.store.Store(reqCtx, backend.NewRecord(source, res, err, elapsed)); serr != nil && !errors.Is(serr, backend.ErrClosed) {
			p.logger.Warn("failed to store detection", "url", source, "error", serr)
		}
	}
	return resp
}

func (p *Proxy) tag(h http.Header, window filesig.Window, res filesig.Result, verdict contenttype.Verdict) {
	h.Set(HeaderType, typeHeader(res))
	h.Set(HeaderDisputed, strconv.FormatBool(res.IsDisputed()))
	if verdict == contenttype.Consistent || verdict == contenttype.Mismatch {
		h.Set(HeaderMismatch, strconv.FormatBool(verdict == contenttype.Mismatch))
	}
	if !res.IsNone() {
		return
	}
	sample, err := window.Peek(contenttype.SampleSize)
	if err != nil {
		p.logger.Debug("failed to sample response", "error", err)
		return
	}
	h.Set(HeaderClass, string(contenttype.Classify(sample)))
}

func hasBody(resp *http.Response, req *http.Request) bool {
	if resp.Body == nil || resp.Body == http.NoBody || req.Method == http.MethodHead {
		return false
	}
	switch {
	case resp.StatusCode >= 100 && resp.StatusCode < 200,
		resp.StatusCode == http.StatusNoContent,
		resp.StatusCode == http.StatusNotModified:
		return false
	}
	return resp.ContentLength != 0
}

// keepChunked restores the chunked framing the transport moved out of the
// header, so goproxy flushes every write and a paused stream keeps flowing.
func keepChunked(resp *http.Response) {
	if resp.ContentLength < 0 && slices.Contains(resp.TransferEncoding, "chunked") {
		resp.Header.Set("Transfer-Encoding", "chunked")
	}
}

// isStream reports whether the media type is an open-ended event stream
// that is never sniffed.
func isStream(contentType string) bool {
	switch contenttype.Parse(contentType).MIMEType {
	case "text/event-stream", "multipart/x-mixed-replace", "application/x-ndjson":
		return true
	}
	return false
}

func typeHeader(res filesig.Result) string {
	if res.IsNone() {
		return "unknown"
	}
	return strings.Join(res.Extensions(), ",")
}

// Handler returns the proxy as an http.Handler.
func (p *Proxy) Handler() http.Handler {
	return p.server
}

// ListenAndServe serves the proxy on addr until ctx is cancelled.
func (p *Proxy) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           p.server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- server.ListenAndServe() }()

	p.logger.Info("proxy listening", "addr", addr, "upstream", p.config.Upstream)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
