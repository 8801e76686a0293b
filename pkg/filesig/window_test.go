package filesig

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"
)

// forwardOnly hides every interface but io.Reader.
type forwardOnly struct{ r io.Reader }

func (f forwardOnly) Read(p []byte) (int, error) { return f.r.Read(p) }

var errBoom = errors.New("boom")

func TestNewWindowSelection(t *testing.T) {
	if _, err := NewWindow(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewWindow(nil) error = %v, want ErrInvalidInput", err)
	}

	w, err := NewWindow(bytes.NewReader([]byte("abc")))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := w.(*SeekWindow); !ok {
		t.Errorf("NewWindow(bytes.Reader) = %T, want *SeekWindow", w)
	}

	w, err = NewWindow(forwardOnly{bytes.NewBufferString("abc")})
	if err != nil {
		t.Fatal(err)
	}
	bw, ok := w.(*BufferedWindow)
	if !ok {
		t.Fatalf("NewWindow(forward only) = %T, want *BufferedWindow", w)
	}

	again, err := NewWindow(bw)
	if err != nil {
		t.Fatal(err)
	}
	if again != Window(bw) {
		t.Error("NewWindow must reuse an existing Window")
	}
}

func TestNewWindowPipeFallsBack(t *testing.T) {
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Skipf("pipe unavailable: %v", err)
	}
	defer pr.Close()
	go func() {
		_, _ = pw.Write([]byte{0xFF, 0xD8, 0xFF})
		pw.Close()
	}()

	w, err := NewWindow(pr)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := w.(*BufferedWindow); !ok {
		t.Fatalf("NewWindow(pipe) = %T, want *BufferedWindow", w)
	}
	got, err := w.Peek(10)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0xFF, 0xD8, 0xFF}) {
		t.Errorf("Peek = % X", got)
	}
}

func TestSeekWindowRestoresPosition(t *testing.T) {
	r := bytes.NewReader([]byte("0123456789"))
	if _, err := r.Seek(3, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	w, err := NewSeekWindow(r)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{2, 5, 100} {
		got, err := w.Peek(n)
		if err != nil {
			t.Fatalf("Peek(%d): %v", n, err)
		}
		want := []byte("3456789")[:min(n, 7)]
		if !bytes.Equal(got, want) {
			t.Errorf("Peek(%d) = %q, want %q", n, got, want)
		}
		pos, _ := r.Seek(0, io.SeekCurrent)
		if pos != 3 {
			t.Errorf("position after Peek(%d) = %d, want 3", n, pos)
		}
	}

	if _, err := w.Peek(0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Peek(0) error = %v, want ErrInvalidInput", err)
	}
}

func TestSeekWindowFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.bin")
	if err := os.WriteFile(path, []byte{0x89, 0x50, 0x4E, 0x47}, 0600); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, err := NewWindow(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := w.(*SeekWindow); !ok {
		t.Fatalf("NewWindow(file) = %T, want *SeekWindow", w)
	}
	got, err := w.Peek(19)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Errorf("Peek(19) returned %d bytes, want 4", len(got))
	}
}

func TestBufferedWindowPeekAndReplay(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog")
	w := NewBufferedWindow(forwardOnly{iotest.OneByteReader(bytes.NewReader(src))})

	for _, n := range []int{3, 10, 4, 500} {
		got, err := w.Peek(n)
		if err != nil {
			t.Fatalf("Peek(%d): %v", n, err)
		}
		want := src[:min(n, len(src))]
		if !bytes.Equal(got, want) {
			t.Errorf("Peek(%d) = %q, want %q", n, got, want)
		}
	}

	all, err := io.ReadAll(w)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(all, src) {
		t.Errorf("ReadAll = %q, want %q", all, src)
	}
}

func TestBufferedWindowReplayContinuesSource(t *testing.T) {
	src := bytes.Repeat([]byte("0123456789"), 100)
	w := NewBufferedWindow(forwardOnly{bytes.NewReader(src)})

	if _, err := w.Peek(19); err != nil {
		t.Fatal(err)
	}
	if w.Buffered() != 19 {
		t.Errorf("Buffered() = %d, want 19", w.Buffered())
	}

	all, err := io.ReadAll(w)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(all, src) {
		t.Errorf("ReadAll returned %d bytes, want %d", len(all), len(src))
	}

	if _, err := w.Peek(100); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Peek after drain error = %v, want ErrInvalidInput", err)
	}
}

func TestBufferedWindowShortAndEmpty(t *testing.T) {
	w := NewBufferedWindow(forwardOnly{bytes.NewReader(nil)})
	got, err := w.Peek(19)
	if err != nil {
		t.Fatalf("Peek on empty source: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Peek on empty source = % X", got)
	}

	w = NewBufferedWindow(forwardOnly{bytes.NewReader([]byte{1, 2, 3})})
	got, err = w.Peek(19)
	if err != nil {
		t.Fatalf("Peek on short source: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("Peek on short source = % X", got)
	}

	all, err := io.ReadAll(w)
	if err != nil {
		t.Fatalf("ReadAll after short peek: %v", err)
	}
	if !bytes.Equal(all, []byte{1, 2, 3}) {
		t.Errorf("ReadAll = % X", all)
	}
}

func TestBufferedWindowFault(t *testing.T) {
	src := io.MultiReader(bytes.NewReader([]byte{1, 2}), iotest.ErrReader(errBoom))
	w := NewBufferedWindow(src)

	// The two good bytes are still available to a small peek.
	got, err := w.Peek(2)
	if err != nil {
		t.Fatalf("Peek(2): %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2}) {
		t.Errorf("Peek(2) = % X", got)
	}

	_, err = w.Peek(19)
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("Peek(19) error = %v, want ErrSourceUnreadable", err)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("Peek(19) error = %v, want to wrap the source error", err)
	}
	var re *ReadError
	if !errors.As(err, &re) || re.Op != "read" {
		t.Errorf("Peek(19) error = %#v, want *ReadError{Op: read}", err)
	}
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestBufferedWindowClose(t *testing.T) {
	src := &closeRecorder{Reader: bytes.NewReader([]byte("x"))}
	w := NewBufferedWindow(src)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if !src.closed {
		t.Error("Close did not reach the source")
	}
}
