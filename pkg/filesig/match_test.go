package filesig

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"slices"
	"sync"
	"testing"
	"testing/iotest"
	"time"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestMatchScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("single JPEG signature", func(t *testing.T) {
		m := NewMatcher(mustRegistry(t, mustSignature(t, "FFD8FF", 0, "JPEG")))
		res, err := m.Match(ctx, bytes.NewReader(hexBytes(t, "FFD8FFE000104A46")))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(res.Extensions(), []string{"JPEG"}) {
			t.Errorf("Extensions() = %v, want [JPEG]", res.Extensions())
		}
		if res.IsDisputed() {
			t.Error("IsDisputed() = true, want false")
		}
	})

	t.Run("longer ZIP based pattern wins", func(t *testing.T) {
		m := NewMatcher(mustRegistry(t,
			mustSignature(t, "504B0304", 0, "ZIP"),
			mustSignature(t, "504B030414000600", 0, "DOCX", "PPTX", "XLSX"),
		))
		res, err := m.Match(ctx, bytes.NewReader(hexBytes(t, "504B03041400060008000000")))
		if err != nil {
			t.Fatal(err)
		}
		if res.Signature.Pattern() != "504B030414000600" {
			t.Errorf("Pattern() = %s, want 504B030414000600", res.Signature.Pattern())
		}
		if !res.IsDisputed() {
			t.Error("IsDisputed() = false, want true")
		}
		if !res.HasExtension("DOCX") {
			t.Error("HasExtension(DOCX) = false")
		}
		if res.HasExtension("PDF") {
			t.Error("HasExtension(PDF) = true")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		res, err := Detect(ctx, bytes.NewReader(nil))
		if err != nil {
			t.Fatal(err)
		}
		if !res.IsNone() || res.IsDisputed() || res.Available != 0 {
			t.Errorf("Detect(empty) = %+v", res)
		}
	})

	t.Run("stream shorter than offset", func(t *testing.T) {
		m := NewMatcher(mustRegistry(t, mustSignature(t, "AABB", 4, "X")))
		res, err := m.Match(ctx, bytes.NewReader([]byte{0xAA, 0xBB, 0x00}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsNone() {
			t.Errorf("Match = %v, want None", res)
		}
		if res.Available != 3 {
			t.Errorf("Available = %d, want 3", res.Available)
		}
	})

	t.Run("source fault", func(t *testing.T) {
		src := io.MultiReader(bytes.NewReader([]byte{0xFF, 0xD8}), iotest.ErrReader(errBoom))
		res, err := Detect(ctx, src)
		if !errors.Is(err, ErrSourceUnreadable) {
			t.Fatalf("Detect error = %v, want ErrSourceUnreadable", err)
		}
		if !res.IsNone() {
			t.Errorf("Detect result = %v, want None alongside the error", res)
		}
	})
}

func TestMatchLongestAcrossOffsets(t *testing.T) {
	reg := mustRegistry(t,
		mustSignature(t, "4142", 0, "SHORT"),
		mustSignature(t, "43444546", 2, "DEEP"),
		mustSignature(t, "414243", 0, "MID"),
	)
	m := NewMatcher(reg)

	res := m.MatchBytes([]byte("ABCDEF"))
	if !res.HasExtension("DEEP") {
		t.Errorf("MatchBytes(ABCDEF) = %v, want DEEP", res)
	}

	// Without the deep pattern the longest offset-0 pattern is chosen.
	res = m.MatchBytes([]byte("ABCxxx"))
	if !res.HasExtension("MID") {
		t.Errorf("MatchBytes(ABCxxx) = %v, want MID", res)
	}
}

func TestMatchTieKeepsSmallerOffset(t *testing.T) {
	reg := mustRegistry(t,
		mustSignature(t, "5858", 2, "LATE"),
		mustSignature(t, "4142", 0, "EARLY"),
	)
	res := NewMatcher(reg).MatchBytes([]byte("ABXX"))
	if !res.HasExtension("EARLY") {
		t.Errorf("MatchBytes = %v, want EARLY", res)
	}
}

func TestMatchNeverReturnsShorterOfTwoMatches(t *testing.T) {
	reg := Default()
	m := NewMatcher(reg)
	inputs := [][]byte{
		hexBytes(t, "504B03041400060008000000"),
		hexBytes(t, "89504E470D0A1A0A0000000D49484452"),
		hexBytes(t, "D0CF11E0A1B11AE100000000000000000000000000000000"),
		[]byte("%PDF-1.7\n"),
		[]byte("MZ\x90\x00\x03\x00\x00\x00\x04\x00\x00\x00\xFF\xFF"),
	}

	for _, in := range inputs {
		res := m.MatchBytes(in)
		encoded := hex.EncodeToString(in)
		for _, s := range reg.Signatures() {
			skip := 2 * s.Offset()
			if skip >= len(encoded) {
				continue
			}
			window := bytes.ToUpper([]byte(encoded[skip:]))
			if bytes.HasPrefix(window, []byte(s.Pattern())) && len(s.Pattern()) > len(res.Signature.Pattern()) {
				t.Errorf("input % X: matched %v but longer %v also matches", in[:4], res, s)
			}
		}
	}
}

func TestDetectBuiltinFormats(t *testing.T) {
	tar := bytes.Repeat([]byte{0x20}, 300)
	copy(tar[257:], "ustar")

	tests := []struct {
		name    string
		data    []byte
		wantExt string
		wantDis bool
	}{
		{"PNG", hexBytes(t, "89504E470D0A1A0A0000000D49484452"), "PNG", false},
		{"JPEG", hexBytes(t, "FFD8FFE000104A464946"), "JPG", true},
		{"PDF", []byte("%PDF-1.4\n%abc"), "PDF", true},
		{"DOCX", hexBytes(t, "504B0304140006000800"), "DOCX", true},
		{"ZIP deflate entry", hexBytes(t, "504B0304140000000800"), "ZIP", true},
		{"ZIP stored entry", hexBytes(t, "504B03040A0000000000"), "ZIP", true},
		{"OLE2 compound document", hexBytes(t, "D0CF11E0A1B11AE10000"), "DOC", true},
		{"GZIP", hexBytes(t, "1F8B0800000000000003"), "GZ", true},
		{"TAR at offset 257", tar, "TAR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Detect(context.Background(), bytes.NewReader(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if !res.HasExtension(tt.wantExt) {
				t.Errorf("Detect(%s) = %v, want extension %s", tt.name, res, tt.wantExt)
			}
			if res.IsDisputed() != tt.wantDis {
				t.Errorf("Detect(%s).IsDisputed() = %v, want %v", tt.name, res.IsDisputed(), tt.wantDis)
			}
		})
	}
}

func TestDetectPlainTextIsUnknown(t *testing.T) {
	res := DetectBytes([]byte("hello world, plain text"))
	if !res.IsNone() {
		t.Errorf("DetectBytes(text) = %v, want None", res)
	}
	if res.HasExtension("") || res.HasExtension("TXT") {
		t.Error("None must not report any extension")
	}
}

func TestMatchIsDeterministicAndIdempotent(t *testing.T) {
	data := hexBytes(t, "504B03041400060008000000")
	r := bytes.NewReader(data)
	ctx := context.Background()

	first, err := Detect(ctx, r)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Detect(ctx, r)
	if err != nil {
		t.Fatal(err)
	}
	if first.Signature.String() != second.Signature.String() || first.Available != second.Available {
		t.Errorf("results differ: %v / %v", first, second)
	}

	// The source is left where it was, so the caller can still read it.
	rest, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rest, data) {
		t.Errorf("source consumed: ReadAll = % X", rest)
	}
}

func TestMatchForwardOnlySourceCanBeReplayed(t *testing.T) {
	data := append(hexBytes(t, "89504E470D0A1A0A"), bytes.Repeat([]byte{7}, 4096)...)
	w := NewBufferedWindow(forwardOnly{bytes.NewReader(data)})

	res, err := NewMatcher(nil).MatchWindow(context.Background(), w)
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasExtension("png") {
		t.Errorf("MatchWindow = %v, want PNG", res)
	}
	all, err := io.ReadAll(w)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(all, data) {
		t.Errorf("replay returned %d bytes, want %d", len(all), len(data))
	}
}

func TestMatchHeaderOnly(t *testing.T) {
	tar := bytes.Repeat([]byte{0x20}, 300)
	copy(tar[257:], "ustar")

	m := NewMatcher(nil, WithHeaderOnly())
	for _, s := range m.Registry().Signatures() {
		if s.Offset() != 0 {
			t.Fatalf("header-only registry holds %v", s)
		}
	}
	if res := m.MatchBytes(tar); !res.IsNone() {
		t.Errorf("header-only MatchBytes(tar) = %v, want None", res)
	}
	if res := m.MatchBytes(hexBytes(t, "89504E470D0A1A0A")); !res.HasExtension("PNG") {
		t.Errorf("header-only MatchBytes(png) = %v", res)
	}

	w := &countingWindow{data: tar}
	if _, err := m.MatchWindow(context.Background(), w); err != nil {
		t.Fatal(err)
	}
	if w.calls != 1 || w.largest != MaxPatternBytes {
		t.Errorf("header-only peeked %d times, largest %d; want 1 x %d", w.calls, w.largest, MaxPatternBytes)
	}
}

type countingWindow struct {
	data    []byte
	calls   int
	largest int
}

func (w *countingWindow) Peek(n int) ([]byte, error) {
	w.calls++
	w.largest = max(w.largest, n)
	return w.data[:min(n, len(w.data))], nil
}

func TestMatchStopsOnEmptyWindow(t *testing.T) {
	w := &countingWindow{}
	res, err := NewMatcher(nil).MatchWindow(context.Background(), w)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsNone() || w.calls != 1 {
		t.Errorf("empty window: result %v after %d peeks, want None after 1", res, w.calls)
	}
}

func TestMatchInvalidInput(t *testing.T) {
	m := NewMatcher(nil)
	if _, err := m.Match(context.Background(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Match(nil) error = %v", err)
	}
	if _, err := m.MatchWindow(context.Background(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("MatchWindow(nil) error = %v", err)
	}
}

func TestMatchCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMatcher(nil).Match(ctx, bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Match error = %v, want context.Canceled", err)
	}
}

type recordingObserver struct {
	mu    sync.Mutex
	seen  []Result
	errs  []error
	total int
}

func (o *recordingObserver) ObserveDetection(_ context.Context, res Result, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.total++
	o.seen = append(o.seen, res)
	o.errs = append(o.errs, err)
}

func TestMatchObserver(t *testing.T) {
	obs := &recordingObserver{}
	m := NewMatcher(nil, WithObserver(obs))
	ctx := context.Background()

	_, _ = m.Match(ctx, bytes.NewReader(hexBytes(t, "89504E470D0A1A0A")))
	_, _ = m.Match(ctx, iotest.ErrReader(errBoom))

	if obs.total != 2 {
		t.Fatalf("observer saw %d detections, want 2", obs.total)
	}
	if !obs.seen[0].HasExtension("PNG") || obs.errs[0] != nil {
		t.Errorf("first observation = %v, %v", obs.seen[0], obs.errs[0])
	}
	if !errors.Is(obs.errs[1], ErrSourceUnreadable) {
		t.Errorf("second observation error = %v", obs.errs[1])
	}
}

func TestMatchConcurrent(t *testing.T) {
	m := NewMatcher(nil)
	png := hexBytes(t, "89504E470D0A1A0A")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := m.Match(context.Background(), bytes.NewReader(png))
			if err != nil || !res.HasExtension("PNG") {
				t.Errorf("concurrent Match = %v, %v", res, err)
			}
		}()
	}
	wg.Wait()
}

func TestResultSummary(t *testing.T) {
	res := DetectBytes(hexBytes(t, "504B0304140006000800"))
	sum := res.Summary()
	if sum.Unknown || !sum.Disputed || sum.Pattern != "504B030414000600" || sum.Available != 10 {
		t.Errorf("Summary() = %+v", sum)
	}
	if res.Extension() != "DOCX" {
		t.Errorf("Extension() = %q, want DOCX", res.Extension())
	}

	none := DetectBytes(nil).Summary()
	if !none.Unknown || none.Disputed || len(none.Extensions) != 0 {
		t.Errorf("None Summary() = %+v", none)
	}
}
