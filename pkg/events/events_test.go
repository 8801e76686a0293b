package events

import (
	"context"
	"errors"
	"testing"
	"time"

	nats "github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/grokify/filesig/pkg/backend"
	"github.com/grokify/filesig/pkg/filesig"
)

type capturePublisher struct {
	msgs []*nats.Msg
	err  error
}

func (c *capturePublisher) PublishMsg(m *nats.Msg) error {
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, m)
	return nil
}

func tracedContext(t *testing.T) (context.Context, trace.SpanContext) {
	t.Helper()
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc), sc
}

func TestPublisherStore(t *testing.T) {
	ctx, sc := tracedContext(t)
	conn := &capturePublisher{}
	pub := NewPublisher(conn, "")
	assert.Equal(t, DefaultSubject, pub.Subject())

	res := filesig.DetectBytes([]byte{0xFF, 0xD8, 0xFF, 0xDB})
	rec := backend.NewRecord("photo.jpg", res, nil, time.Millisecond)
	require.NoError(t, pub.Store(ctx, rec))
	require.NoError(t, pub.Store(ctx, nil))
	require.Len(t, conn.msgs, 1)

	msg := conn.msgs[0]
	assert.Equal(t, DefaultSubject, msg.Subject)
	assert.Equal(t, rec.ID, msg.Header.Get(HeaderMsgID))
	assert.Equal(t, "JFIF,JPE,JPEG,JPG", msg.Header.Get(HeaderExtension))
	assert.NotEmpty(t, msg.Header.Get("Traceparent"))

	gotCtx, got, err := Decode(msg)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.True(t, got.Disputed)
	assert.Equal(t, sc.TraceID(), trace.SpanContextFromContext(gotCtx).TraceID())
}

func TestPublisherUnknownAndErrors(t *testing.T) {
	conn := &capturePublisher{}
	pub := NewPublisher(conn, "custom.subject")

	rec := backend.NewRecord("notes.txt", filesig.DetectBytes([]byte("plain text")), nil, 0)
	require.NoError(t, pub.StoreBatch(context.Background(), []*backend.Record{rec}))
	require.Len(t, conn.msgs, 1)
	assert.Equal(t, "custom.subject", conn.msgs[0].Subject)
	assert.Equal(t, "true", conn.msgs[0].Header.Get(HeaderUnknown))

	conn.err = errors.New("nats: connection closed")
	err := pub.Store(context.Background(), rec)
	assert.ErrorIs(t, err, conn.err)

	require.NoError(t, pub.Close())
	require.NoError(t, pub.Ping(context.Background()))
}

func TestDecodeMalformed(t *testing.T) {
	_, _, err := Decode(&nats.Msg{Subject: DefaultSubject, Data: []byte("{not json")})
	assert.Error(t, err)
}

func TestConnectRequiresURL(t *testing.T) {
	_, err := Connect(Config{})
	assert.Error(t, err)
}
