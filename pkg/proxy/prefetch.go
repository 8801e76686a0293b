package proxy

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/grokify/filesig/pkg/filesig"
)

// prefetchBody reads up to limit leading bytes of a response body on its own
// goroutine. Peek waits for those bytes only until the sniff deadline, so a
// stream that pauses (server-sent events, long polling, slow chunked
// transfers) is matched against what has arrived so far. Read hands bytes to
// the client as soon as they arrive and continues with the body once the
// prefix is consumed.
type prefetchBody struct {
	body     io.ReadCloser
	limit    int
	deadline time.Time
	timer    *time.Timer

	mu      sync.Mutex
	cond    *sync.Cond
	buf     []byte
	off     int   // client read position in buf
	err     error // terminal error seen while prefetching, io.EOF included
	done    bool  // prefetching stopped; the body is no longer read by the pump
	expired bool
}

var _ filesig.Window = (*prefetchBody)(nil)

func newPrefetchBody(body io.ReadCloser, limit int, timeout time.Duration) *prefetchBody {
	b := &prefetchBody{
		body:     body,
		limit:    limit,
		deadline: time.Now().Add(timeout),
	}
	b.cond = sync.NewCond(&b.mu)
	b.timer = time.AfterFunc(timeout, func() {
		b.mu.Lock()
		b.expired = true
		b.cond.Broadcast()
		b.mu.Unlock()
	})
	go b.pump()
	return b
}

func (b *prefetchBody) pump() {
	chunk := make([]byte, b.limit)
	for {
		n, err := b.body.Read(chunk[:b.limit-b.buffered()])

		b.mu.Lock()
		b.buf = append(b.buf, chunk[:n]...)
		switch {
		case err != nil:
			b.err = err
			b.done = true
		case len(b.buf) >= b.limit:
			b.done = true
		}
		done := b.done
		b.cond.Broadcast()
		b.mu.Unlock()

		if done {
			b.timer.Stop()
			return
		}
	}
}

func (b *prefetchBody) buffered() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buf)
}

// Peek implements filesig.Window. After the deadline it returns whatever
// has been prefetched, which the matcher treats as the end of the stream.
func (b *prefetchBody) Peek(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: peek size %d", filesig.ErrInvalidInput, n)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.buf) < n && !b.done && !b.expired {
		b.cond.Wait()
	}

	if len(b.buf) < n && b.err != nil && !errors.Is(b.err, io.EOF) {
		return nil, &filesig.ReadError{Op: "read", Err: b.err}
	}
	end := min(n, len(b.buf))
	return b.buf[:end:end], nil
}

// Read implements io.Reader.
func (b *prefetchBody) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	b.mu.Lock()
	for b.off >= len(b.buf) && !b.done {
		b.cond.Wait()
	}
	if b.off < len(b.buf) {
		n := copy(p, b.buf[b.off:])
		b.off += n
		b.mu.Unlock()
		return n, nil
	}
	err := b.err
	b.mu.Unlock()

	if err != nil {
		return 0, err
	}
	return b.body.Read(p)
}

// Close closes the body, which also unblocks a pending prefetch.
func (b *prefetchBody) Close() error {
	b.timer.Stop()
	return b.body.Close()
}
