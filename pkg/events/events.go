// Package events publishes detection records to NATS so other services can
// react to newly identified files.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/grokify/mogo/log/slogutil"
	nats "github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/propagation"

	"github.com/grokify/filesig/pkg/backend"
)

// DefaultSubject receives detection records when no subject is configured.
const DefaultSubject = "filesig.detections"

// Message headers set on every published record.
const (
	HeaderExtension = "Filesig-Extension"
	HeaderUnknown   = "Filesig-Unknown"
	// HeaderMsgID lets JetStream streams drop duplicate deliveries.
	HeaderMsgID = "Nats-Msg-Id"
)

var propagator = propagation.TraceContext{}

// MsgPublisher is the subset of *nats.Conn the publisher needs.
type MsgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

// Publisher sends detection records to a NATS subject. It implements
// backend.Store and is write-only.
type Publisher struct {
	conn    MsgPublisher
	nc      *nats.Conn
	subject string
	logger  *slog.Logger
}

// Config configures Connect.
type Config struct {
	// URL of the NATS server, e.g. nats://127.0.0.1:4222.
	URL string
	// Subject receives one message per record (default: filesig.detections).
	Subject string
	// Name identifies the connection to the server.
	Name string
	// Logger receives connection state changes (optional).
	Logger *slog.Logger
}

// Connect dials the server and returns a publisher that owns the connection.
func Connect(cfg Config) (*Publisher, error) {
	if cfg.URL == "" {
		return nil, errors.New("events: NATS URL is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slogutil.Null()
	}
	name := cfg.Name
	if name == "" {
		name = "filesig"
	}

	nc, err := nats.Connect(cfg.URL,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("events: connect %s: %w", cfg.URL, err)
	}

	p := NewPublisher(nc, cfg.Subject)
	p.nc = nc
	p.logger = logger
	return p, nil
}

// NewPublisher wraps an existing connection. The caller keeps ownership of conn.
func NewPublisher(conn MsgPublisher, subject string) *Publisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &Publisher{conn: conn, subject: subject, logger: slogutil.Null()}
}

// Subject returns the subject records are published to.
func (p *Publisher) Subject() string { return p.subject }

// Store publishes one record with the trace context of ctx in its headers.
func (p *Publisher) Store(ctx context.Context, rec *backend.Record) error {
	if rec == nil {
		return nil
	}
	msg, err := NewMsg(ctx, p.subject, rec)
	if err != nil {
		return err
	}
	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("events: publish %s: %w", p.subject, err)
	}
	return nil
}

// StoreBatch publishes each record in order and stops at the first failure.
func (p *Publisher) StoreBatch(ctx context.Context, recs []*backend.Record) error {
	for _, rec := range recs {
		if err := p.Store(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Close drains the connection when the publisher owns it.
func (p *Publisher) Close() error {
	if p.nc == nil {
		return nil
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
		return err
	}
	return nil
}

// Ping reports whether the owned connection is up.
func (p *Publisher) Ping(context.Context) error {
	if p.nc != nil && !p.nc.IsConnected() {
		return fmt.Errorf("events: nats %s", strings.ToLower(p.nc.Status().String()))
	}
	return nil
}

// NewMsg encodes rec as a NATS message on subject.
func NewMsg(ctx context.Context, subject string, rec *backend.Record) (*nats.Msg, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("events: encode record: %w", err)
	}

	hdr := nats.Header{}
	propagator.Inject(ctx, propagation.HeaderCarrier(hdr))
	hdr.Set(HeaderMsgID, rec.ID)
	if rec.Unknown {
		hdr.Set(HeaderUnknown, "true")
	} else {
		hdr.Set(HeaderExtension, strings.Join(rec.Extensions, ","))
	}

	return &nats.Msg{Subject: subject, Data: data, Header: hdr}, nil
}

// Decode extracts the record and the propagated trace context from msg.
func Decode(msg *nats.Msg) (context.Context, *backend.Record, error) {
	ctx := context.Background()
	if msg.Header != nil {
		ctx = propagator.Extract(ctx, propagation.HeaderCarrier(msg.Header))
	}
	rec := &backend.Record{}
	if err := json.Unmarshal(msg.Data, rec); err != nil {
		return ctx, nil, fmt.Errorf("events: decode record: %w", err)
	}
	return ctx, rec, nil
}

// Subscribe calls handler for every record published on subject. Messages
// that do not decode are logged and skipped.
func Subscribe(nc *nats.Conn, subject string, logger *slog.Logger, handler func(context.Context, *backend.Record)) (*nats.Subscription, error) {
	if subject == "" {
		subject = DefaultSubject
	}
	if logger == nil {
		logger = slogutil.Null()
	}
	return nc.Subscribe(subject, func(m *nats.Msg) {
		ctx, rec, err := Decode(m)
		if err != nil {
			logger.Warn("skipping malformed detection event", "subject", m.Subject, "error", err)
			return
		}
		handler(ctx, rec)
	})
}

var _ backend.Store = (*Publisher)(nil)
