package filesig

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidInput is returned for a nil source or a non-positive peek size.
	// No I/O is attempted.
	ErrInvalidInput = errors.New("filesig: invalid input")

	// ErrSourceUnreadable matches every *ReadError.
	ErrSourceUnreadable = errors.New("filesig: source unreadable")
)

// ReadError reports a fault of the underlying byte source. It is never
// produced for a stream that is simply shorter than requested.
type ReadError struct {
	Op  string // "read" or "seek"
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("filesig: %s source: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrSourceUnreadable) hold for any ReadError.
func (e *ReadError) Is(target error) bool { return target == ErrSourceUnreadable }

// Window supplies non-destructive prefixes of a byte source.
//
// Peek returns up to n bytes from the logical beginning of the source. A short
// stream yields fewer bytes (possibly none) and a nil error. The read position
// seen by later readers of the source is left unchanged. The returned slice
// must not be modified.
type Window interface {
	Peek(n int) ([]byte, error)
}

// NewWindow wraps r in the cheapest Window it supports: r itself when it is
// already a Window, a SeekWindow when r can rewind, a BufferedWindow otherwise.
func NewWindow(r io.Reader) (Window, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidInput)
	}
	if w, ok := r.(Window); ok {
		return w, nil
	}
	if rs, ok := r.(io.ReadSeeker); ok {
		// Pipes and character devices satisfy io.Seeker but fail to seek.
		if w, err := NewSeekWindow(rs); err == nil {
			return w, nil
		}
	}
	return NewBufferedWindow(r), nil
}

// SeekWindow peeks a seekable source by reading from the position it had when
// the window was created and seeking back afterwards.
type SeekWindow struct {
	rs    io.ReadSeeker
	start int64
}

// NewSeekWindow remembers the current position of rs as the logical beginning.
func NewSeekWindow(rs io.ReadSeeker) (*SeekWindow, error) {
	if rs == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidInput)
	}
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, &ReadError{Op: "seek", Err: err}
	}
	return &SeekWindow{rs: rs, start: start}, nil
}

// Peek implements Window.
func (w *SeekWindow) Peek(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: peek size %d", ErrInvalidInput, n)
	}
	if _, err := w.rs.Seek(w.start, io.SeekStart); err != nil {
		return nil, &ReadError{Op: "seek", Err: err}
	}

	buf := make([]byte, n)
	read, rerr := io.ReadFull(w.rs, buf)

	// Rewind before reporting anything so the caller always gets the source back intact.
	if _, err := w.rs.Seek(w.start, io.SeekStart); err != nil {
		return nil, &ReadError{Op: "seek", Err: err}
	}
	if rerr != nil && !isShortRead(rerr) {
		return nil, &ReadError{Op: "read", Err: rerr}
	}
	return buf[:read], nil
}

// BufferedWindow peeks a forward-only source by keeping every byte it pulls.
// It is also an io.Reader: reads replay the buffered prefix and then continue
// with the source, so the stream can be consumed in full after detection.
type BufferedWindow struct {
	r       io.Reader
	buf     []byte
	err     error // terminal error from the source, io.EOF included
	off     int   // replay position of Read
	drained bool  // Read has moved past the buffer
}

// NewBufferedWindow wraps r. The buffer grows only as far as the largest Peek.
func NewBufferedWindow(r io.Reader) *BufferedWindow {
	return &BufferedWindow{r: r}
}

// Peek implements Window.
func (w *BufferedWindow) Peek(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: peek size %d", ErrInvalidInput, n)
	}
	if w.r == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidInput)
	}
	if len(w.buf) < n && w.drained {
		return nil, fmt.Errorf("%w: peek of %d bytes after the stream was consumed", ErrInvalidInput, n)
	}

	if len(w.buf) < n && w.err == nil {
		chunk := make([]byte, n-len(w.buf))
		read, err := io.ReadFull(w.r, chunk)
		w.buf = append(w.buf, chunk[:read]...)
		switch {
		case err == nil:
		case isShortRead(err):
			w.err = io.EOF
		default:
			w.err = err
		}
	}

	if len(w.buf) < n && w.err != nil && !isShortRead(w.err) {
		return nil, &ReadError{Op: "read", Err: w.err}
	}

	end := min(n, len(w.buf))
	return w.buf[:end:end], nil
}

// Buffered returns the number of bytes held for replay.
func (w *BufferedWindow) Buffered() int { return len(w.buf) - w.off }

// Read implements io.Reader.
func (w *BufferedWindow) Read(p []byte) (int, error) {
	if w.off < len(w.buf) {
		n := copy(p, w.buf[w.off:])
		w.off += n
		return n, nil
	}
	w.drained = true
	if w.err != nil {
		return 0, w.err
	}
	return w.r.Read(p)
}

// Close closes the wrapped source when it is an io.Closer.
func (w *BufferedWindow) Close() error {
	if c, ok := w.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func isShortRead(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
