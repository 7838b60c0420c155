package natsbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Publisher pushes lifecycle events onto NATS subjects
// (<prefix>.audit.created, <prefix>.audit.progress, <prefix>.audit.completed,
// <prefix>.file.processed). The service runs fine without one; consumers
// are dashboards or pipelines that want push updates instead of polling.
type Publisher struct {
	conn   *nats.Conn
	prefix string
}

func New(url, subjectPrefix string) (*Publisher, error) {
	conn, err := nats.Connect(
		url,
		nats.Name("bias-audit-service"),
		nats.Timeout(2*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(60),
		nats.RetryOnFailedConnect(true),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.WithError(err).Warn("nats disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Publisher{conn: conn, prefix: subjectPrefix}, nil
}

func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

type auditEvent struct {
	AuditID       uuid.UUID `json:"audit_id"`
	Progress      *int      `json:"progress,omitempty"`
	FairnessScore *float64  `json:"fairness_score,omitempty"`
}

type fileEvent struct {
	FileID uuid.UUID `json:"file_id"`
}

func (p *Publisher) publish(subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.conn.Publish(p.prefix+"."+subject, data); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}

func (p *Publisher) PublishAuditCreated(ctx context.Context, auditID uuid.UUID) error {
	return p.publish("audit.created", auditEvent{AuditID: auditID})
}

func (p *Publisher) PublishAuditProgress(ctx context.Context, auditID uuid.UUID, progress int) error {
	return p.publish("audit.progress", auditEvent{AuditID: auditID, Progress: &progress})
}

func (p *Publisher) PublishAuditCompleted(ctx context.Context, auditID uuid.UUID, fairnessScore float64) error {
	return p.publish("audit.completed", auditEvent{AuditID: auditID, FairnessScore: &fairnessScore})
}

func (p *Publisher) PublishFileProcessed(ctx context.Context, fileID uuid.UUID) error {
	return p.publish("file.processed", fileEvent{FileID: fileID})
}
