package backend

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/grokify/filesig/pkg/filesig"
)

// Record is one stored detection.
type Record struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Extensions  []string  `json:"extensions"`
	Pattern     string    `json:"pattern,omitempty"`
	Offset      int       `json:"offset"`
	Description string    `json:"description"`
	Disputed    bool      `json:"disputed"`
	Unknown     bool      `json:"unknown"`
	Available   int       `json:"available"`
	Error       string    `json:"error,omitempty"`
	DetectedAt  time.Time `json:"detected_at"`
	DurationMs  float64   `json:"duration_ms"`
}

// NewRecord builds a record for a detection of source. A non-nil err marks
// the record failed; the result is still recorded as returned by the matcher.
func NewRecord(source string, res filesig.Result, err error, elapsed time.Duration) *Record {
	sum := res.Summary()
	rec := &Record{
		ID:          uuid.NewString(),
		Source:      source,
		Extensions:  sum.Extensions,
		Pattern:     sum.Pattern,
		Offset:      sum.Offset,
		Description: sum.Description,
		Disputed:    sum.Disputed,
		Unknown:     sum.Unknown,
		Available:   sum.Available,
		DetectedAt:  time.Now().UTC(),
		DurationMs:  float64(elapsed.Microseconds()) / 1000,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	return rec
}

// Failed reports whether the detection ended with a source error.
func (r *Record) Failed() bool { return r.Error != "" }

// HasExtension reports whether ext is one of the candidates, ignoring case.
func (r *Record) HasExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return ext != "" && slices.ContainsFunc(r.Extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// matcher evaluates a Filter in memory.
type matcher struct {
	f       *Filter
	sources []*regexp.Regexp
}

func newMatcher(f *Filter) (*matcher, error) {
	if f == nil {
		f = &Filter{}
	}
	m := &matcher{f: f}
	for _, p := range f.Sources {
		re, err := wildcardToRegexp(p)
		if err != nil {
			return nil, err
		}
		m.sources = append(m.sources, re)
	}
	return m, nil
}

func (m *matcher) match(r *Record) bool {
	f := m.f
	if !f.StartTime.IsZero() && r.DetectedAt.Before(f.StartTime) {
		return false
	}
	if !f.EndTime.IsZero() && r.DetectedAt.After(f.EndTime) {
		return false
	}
	if f.Extension != "" && !r.HasExtension(f.Extension) {
		return false
	}
	if f.Unknown != nil && r.Unknown != *f.Unknown {
		return false
	}
	if f.Disputed != nil && r.Disputed != *f.Disputed {
		return false
	}
	if f.Failed != nil && r.Failed() != *f.Failed {
		return false
	}
	if len(m.sources) > 0 && !slices.ContainsFunc(m.sources, func(re *regexp.Regexp) bool {
		return re.MatchString(r.Source)
	}) {
		return false
	}
	return true
}

// wildcardToRegexp converts a wildcard pattern to a regexp.
// Supports * (match any characters) and ? (match single character).
func wildcardToRegexp(pattern string) (*regexp.Regexp, error) {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(regexp.QuoteMeta(part), `\?`, ".")
	}
	return regexp.Compile("^" + strings.Join(parts, ".*") + "$")
}

// computeStats aggregates recs. Percentiles are left at zero for an empty set.
func computeStats(recs []*Record) *Stats {
	st := &Stats{
		Total:       int64(len(recs)),
		ByExtension: make(map[string]int64),
	}
	sources := make(map[string]struct{})
	durations := make(stats.Float64Data, 0, len(recs))
	for _, r := range recs {
		switch {
		case r.Failed():
			st.Failed++
		case r.Unknown:
			st.Unknown++
		}
		if r.Disputed {
			st.Disputed++
		}
		for _, ext := range r.Extensions {
			st.ByExtension[strings.ToUpper(ext)]++
		}
		sources[r.Source] = struct{}{}
		durations = append(durations, r.DurationMs)
	}
	st.UniqueSources = int64(len(sources))

	if len(durations) > 0 {
		st.AvgDurationMs, _ = durations.Mean()
		st.P50DurationMs, _ = durations.Percentile(50)
		st.P95DurationMs, _ = durations.Percentile(95)
		st.P99DurationMs, _ = durations.Percentile(99)
	}
	return st
}
