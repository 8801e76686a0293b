package proxy

import (
	"regexp"
	"strings"
)

// HostFilter decides which hosts have their responses sniffed.
type HostFilter struct {
	// Include lists hosts to sniff (supports wildcards). Empty means all.
	Include []string
	// Exclude lists hosts never sniffed (supports wildcards).
	Exclude []string

	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// Compile compiles the host patterns. Patterns are case-insensitive.
func (f *HostFilter) Compile() error {
	var err error
	if f.include, err = compilePatterns(f.Include); err != nil {
		return err
	}
	f.exclude, err = compilePatterns(f.Exclude)
	return err
}

// Match reports whether host, with or without a port, passes the filter.
func (f *HostFilter) Match(host string) bool {
	host = strings.ToLower(stripPort(host))

	if len(f.include) > 0 {
		matched := false
		for _, re := range f.include {
			if re.MatchString(host) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.exclude {
		if re.MatchString(host) {
			return false
		}
	}
	return true
}

func stripPort(host string) string {
	if strings.HasPrefix(host, "[") {
		if end := strings.IndexByte(host, ']'); end > 0 {
			return host[1:end]
		}
		return host
	}
	if i := strings.LastIndexByte(host, ':'); i >= 0 && strings.Count(host, ":") == 1 {
		return host[:i]
	}
	return host
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	result := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := wildcardToRegexp(strings.ToLower(pattern))
		if err != nil {
			return nil, err
		}
		result = append(result, re)
	}
	return result, nil
}

// wildcardToRegexp converts a host wildcard to a regexp. "*.example.com" also
// matches "example.com" itself.
func wildcardToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")

	if rest, ok := strings.CutPrefix(pattern, "*."); ok {
		b.WriteString(`(.*\.)?`)
		pattern = rest
	}
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString("$")
	return regexp.Compile(b.String())
}
