package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/grokify/filesig/pkg/backend"
	"github.com/grokify/filesig/pkg/observability"
)

var (
	pngHeader  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	mp4Header  = append([]byte("QQQQftypisom"), make([]byte, 20)...)
)

type detectBody struct {
	ID          string   `json:"id"`
	Source      string   `json:"source"`
	Extensions  []string `json:"extensions"`
	Disputed    bool     `json:"disputed"`
	Unknown     bool     `json:"unknown"`
	Pattern     string   `json:"pattern"`
	Offset      int      `json:"offset"`
	Description string   `json:"description"`
	Available   int      `json:"available"`
}

func newTestServer(t *testing.T, cfg Config) (*Server, *backend.MemoryStore) {
	t.Helper()
	store := backend.NewMemoryStore(nil)
	t.Cleanup(func() { _ = store.Close() })
	if cfg.Store == nil {
		cfg.Store = store
	}
	return New(cfg), store
}

func detect(t *testing.T, s *Server, query string, body []byte) (*httptest.ResponseRecorder, detectBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/detect"+query, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var got detectBody
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	}
	return rec, got
}

func TestDetect(t *testing.T) {
	s, store := newTestServer(t, Config{})

	rec, got := detect(t, s, "?source=upload.png", pngHeader)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"PNG"}, got.Extensions)
	assert.Equal(t, "89504E470D0A1A0A", got.Pattern)
	assert.False(t, got.Unknown)
	assert.False(t, got.Disputed)
	assert.Equal(t, "upload.png", got.Source)
	assert.Equal(t, len(pngHeader), got.Available)
	require.NotEmpty(t, got.ID)

	stored, err := store.Get(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, "upload.png", stored.Source)
	assert.Equal(t, []string{"PNG"}, stored.Extensions)

	_, got = detect(t, s, "", jpegHeader)
	assert.True(t, got.Disputed)
	assert.Contains(t, got.Extensions, "JPG")
	assert.Equal(t, "FFD8FF", got.Pattern)

	_, got = detect(t, s, "", []byte("plain text"))
	assert.True(t, got.Unknown)
	assert.Empty(t, got.Extensions)
	assert.Equal(t, "unknown", got.Description)

	_, got = detect(t, s, "", nil)
	assert.True(t, got.Unknown)
	assert.Zero(t, got.Available)

	assert.Equal(t, 4, store.Len())
}

func TestDetectHeaderOnly(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	_, got := detect(t, s, "", mp4Header)
	assert.Equal(t, []string{"MP4"}, got.Extensions)
	assert.Equal(t, 4, got.Offset)

	_, got = detect(t, s, "?header=true", mp4Header)
	assert.True(t, got.Unknown)

	rec, _ := detect(t, s, "?header=maybe", mp4Header)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fast, _ := newTestServer(t, Config{HeaderOnly: true})
	_, got = detect(t, fast, "", mp4Header)
	assert.True(t, got.Unknown)
	_, got = detect(t, fast, "?header=false", mp4Header)
	assert.Equal(t, []string{"MP4"}, got.Extensions)
}

func TestDetectUnreadableBody(t *testing.T) {
	s, store := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/v1/detect?source=broken", iotest.ErrReader(errors.New("reset")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	recs, err := store.Query(context.Background(), &backend.Filter{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Failed())
	assert.Equal(t, "broken", recs[0].Source)
}

func TestDetectWithoutStore(t *testing.T) {
	s := New(Config{})
	rec, got := detect(t, s, "", pngHeader)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got.ID)

	for _, path := range []string{"/v1/detections", "/v1/detections/abc", "/v1/stats"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestDetectMethodNotAllowed(t *testing.T) {
	s := New(Config{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/detect", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSignatures(t *testing.T) {
	s := New(Config{})

	get := func(query string) (*httptest.ResponseRecorder, []signatureView) {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/signatures"+query, nil))
		var views []signatureView
		if rec.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
		}
		return rec, views
	}

	_, all := get("")
	assert.Len(t, all, s.full.Registry().Len())

	_, pngs := get("?ext=.png")
	require.NotEmpty(t, pngs)
	for _, v := range pngs {
		assert.Contains(t, v.Extensions, "PNG")
	}

	_, head := get("?offset=0")
	require.NotEmpty(t, head)
	assert.Less(t, len(head), len(all))
	for _, v := range head {
		assert.Zero(t, v.Offset)
	}

	_, mp4 := get("?offset=4&ext=mp4")
	require.NotEmpty(t, mp4)
	for _, v := range mp4 {
		assert.Equal(t, 4, v.Offset)
	}

	rec, _ := get("?offset=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDetectionsAndStats(t *testing.T) {
	s, _ := newTestServer(t, Config{})

	_, png := detect(t, s, "?source=a/one.png", pngHeader)
	detect(t, s, "?source=a/two.jpg", jpegHeader)
	detect(t, s, "?source=b/notes.txt", []byte("plain text"))

	list := func(query string) []*backend.Record {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/detections"+query, nil))
		require.Equal(t, http.StatusOK, rec.Code, query)
		var recs []*backend.Record
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
		return recs
	}

	all := list("")
	require.Len(t, all, 3)
	assert.Equal(t, "b/notes.txt", all[0].Source, "newest first")

	assert.Len(t, list("?order=asc&limit=1"), 1)
	assert.Equal(t, "a/one.png", list("?order=asc&limit=1")[0].Source)
	assert.Len(t, list("?ext=jpeg"), 1)
	assert.Len(t, list("?source=a/*"), 2)
	assert.Len(t, list("?source=a/*.png,b/*"), 2)
	assert.Len(t, list("?unknown=true"), 1)
	assert.Empty(t, list("?ext=pdf"))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/detections?limit=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/detections/"+png.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var one backend.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	assert.Equal(t, "a/one.png", one.Source)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/detections/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var stats backend.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 1, stats.Unknown)
	assert.EqualValues(t, 1, stats.Disputed)
	assert.EqualValues(t, 1, stats.ByExtension["PNG"])
}

func TestHistoryThroughAsyncStore(t *testing.T) {
	mem := backend.NewMemoryStore(nil)
	async := backend.NewAsyncStore(mem, nil)
	t.Cleanup(func() { _ = async.Close() })

	s := New(Config{Store: async})
	detect(t, s, "", pngHeader)
	require.NoError(t, async.Flush(context.Background()))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var stats backend.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.Total)
}

func TestMetricsAndHealth(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := observability.NewMetrics(mp)
	require.NoError(t, err)

	health := observability.NewHealthChecker()
	health.SetReady(true)

	s, _ := newTestServer(t, Config{Metrics: m, Health: health})
	detect(t, s, "", pngHeader)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/detections/some-id", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	routes := map[string]int64{}
	var detections int64
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			sum, ok := metric.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				switch metric.Name {
				case "filesig.requests.total":
					route, _ := dp.Attributes.Value(attribute.Key("route"))
					routes[route.AsString()] += dp.Value
				case "filesig.detections.total":
					detections += dp.Value
				}
			}
		}
	}

	assert.EqualValues(t, 1, detections)
	assert.EqualValues(t, 1, routes["/v1/detect"])
	assert.EqualValues(t, 1, routes["/v1/detections/{id}"])
	assert.EqualValues(t, 1, routes["/healthz"])
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := New(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()
	assert.NoError(t, <-errc)
}
