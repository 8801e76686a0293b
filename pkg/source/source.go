// Package source opens the byte sources detection runs against: local paths,
// file:// URLs, http(s) URLs and standard input.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a local path does not exist.
	ErrNotFound = errors.New("source: not found")
	// ErrIsDirectory is returned when a local path names a directory.
	ErrIsDirectory = errors.New("source: is a directory")
)

// Stdin is the location that selects standard input.
const Stdin = "-"

// HTTPStatusError reports a non-2xx response from a remote source.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("source: %s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// DefaultClient is used for remote sources when Opener.Client is nil.
var DefaultClient = &http.Client{Timeout: 30 * time.Second}

// Opener resolves locations into readable streams.
type Opener struct {
	Client *http.Client
	Stdin  io.Reader
}

// IsStdin reports whether location selects standard input.
func IsStdin(location string) bool { return location == Stdin }

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Open resolves location with the default opener.
func Open(ctx context.Context, location string) (io.ReadCloser, error) {
	return (&Opener{}).Open(ctx, location)
}

// Open returns a stream for location. The caller closes it.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	switch {
	case IsStdin(location):
		in := o.Stdin
		if in == nil {
			in = os.Stdin
		}
		return io.NopCloser(in), nil
	case IsRemote(location):
		return o.openRemote(ctx, location)
	case strings.HasPrefix(location, "file://"):
		u, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("source: parse %q: %w", location, err)
		}
		return openFile(u.Path)
	default:
		return openFile(location)
	}
}

func openFile(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("source: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	return f, nil
}

func (o *Opener) openRemote(ctx context.Context, location string) (io.ReadCloser, error) {
	client := o.Client
	if client == nil {
		client = DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("source: request %s: %w", location, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: get %s: %w", location, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &HTTPStatusError{URL: location, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}
