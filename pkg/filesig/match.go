package filesig

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/grokify/mogo/log/slogutil"
)

// Observer receives the outcome of every match, successful or not.
type Observer interface {
	ObserveDetection(ctx context.Context, res Result, err error, elapsed time.Duration)
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger sets the diagnostic sink. Without it the logger stored in the
// context is used, and failures are otherwise discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) { m.logger = logger }
}

// WithObserver registers a metrics hook.
func WithObserver(o Observer) Option {
	return func(m *Matcher) { m.observer = o }
}

// WithHeaderOnly restricts matching to offset-0 signatures compared against a
// single fixed window of MaxPatternBytes bytes.
func WithHeaderOnly() Option {
	return func(m *Matcher) { m.headerOnly = true }
}

// Matcher runs a Registry against byte sources. It keeps no per-call state and
// is safe for concurrent use on independent sources.
type Matcher struct {
	reg        *Registry
	logger     *slog.Logger
	observer   Observer
	headerOnly bool
}

// NewMatcher returns a matcher over reg, or over Default() when reg is nil.
func NewMatcher(reg *Registry, opts ...Option) *Matcher {
	if reg == nil {
		reg = Default()
	}
	m := &Matcher{reg: reg}
	for _, opt := range opts {
		opt(m)
	}
	if m.headerOnly {
		m.reg = reg.AtOffset(0)
	}
	return m
}

var defaultMatcher = sync.OnceValue(func() *Matcher { return NewMatcher(nil) })

// Detect matches r against the built-in registry.
func Detect(ctx context.Context, r io.Reader) (Result, error) {
	return defaultMatcher().Match(ctx, r)
}

// DetectBytes matches an in-memory prefix against the built-in registry.
func DetectBytes(data []byte) Result {
	return defaultMatcher().MatchBytes(data)
}

// Registry returns the signatures the matcher scans.
func (m *Matcher) Registry() *Registry { return m.reg }

// Match wraps r with NewWindow and matches it. The source is borrowed: it is
// neither closed nor, for seekable sources, moved.
func (m *Matcher) Match(ctx context.Context, r io.Reader) (Result, error) {
	w, err := NewWindow(r)
	if err != nil {
		m.report(ctx, Result{Signature: None}, err, 0)
		return Result{Signature: None}, err
	}
	return m.MatchWindow(ctx, w)
}

// MatchWindow returns the longest registered pattern found in w. A source that
// is too short for every signature yields None with a nil error; a source
// fault yields a *ReadError.
func (m *Matcher) MatchWindow(ctx context.Context, w Window) (Result, error) {
	if w == nil {
		err := fmt.Errorf("%w: nil window", ErrInvalidInput)
		m.report(ctx, Result{Signature: None}, err, 0)
		return Result{Signature: None}, err
	}
	start := time.Now()
	res, err := m.scan(ctx, w.Peek)
	m.report(ctx, res, err, time.Since(start))
	return res, err
}

// MatchBytes matches data as a complete stream. It cannot fail.
func (m *Matcher) MatchBytes(data []byte) Result {
	res, _ := m.scan(context.Background(), func(n int) ([]byte, error) {
		return data[:min(n, len(data))], nil
	})
	return res
}

// scan visits every signature in registry order without stopping at the first
// hit, so the longest matching pattern wins wherever its offset lies. Equal
// lengths keep the earlier candidate. The window is refetched only when the
// offset grows; offsets never decrease in registry order.
func (m *Matcher) scan(ctx context.Context, peek func(int) ([]byte, error)) (Result, error) {
	best := None
	bestLen := 0
	fetched := -1
	available := 0
	window := ""

	for _, s := range m.reg.sigs {
		if s.offset > fetched {
			if err := ctx.Err(); err != nil {
				return Result{Signature: None, Available: available}, err
			}
			data, err := peek(s.offset + MaxPatternBytes)
			if err != nil {
				return Result{Signature: None, Available: available}, err
			}
			if len(data) == 0 {
				break
			}
			available = max(available, len(data))

			encoded := strings.ToUpper(hex.EncodeToString(data))
			// offsets count bytes, two hex characters each
			if skip := 2 * s.offset; skip < len(encoded) {
				window = encoded[skip:]
			} else {
				window = ""
			}
			fetched = s.offset
		}

		if len(s.pattern) > bestLen && strings.HasPrefix(window, s.pattern) {
			best = s
			bestLen = len(s.pattern)
		}
	}

	return Result{Signature: best, Available: available}, nil
}

func (m *Matcher) report(ctx context.Context, res Result, err error, elapsed time.Duration) {
	logger := m.logger
	if logger == nil {
		logger = slogutil.LoggerFromContext(ctx, slogutil.Null())
	}
	if err != nil {
		logger.Error("signature match failed", "error", err)
	} else {
		logger.Debug("signature match",
			"signature", res.Signature.String(),
			"available", res.Available,
			"elapsed", elapsed)
	}
	if m.observer != nil {
		m.observer.ObserveDetection(ctx, res, err, elapsed)
	}
}
