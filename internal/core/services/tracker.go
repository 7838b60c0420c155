package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bias-audit-service/internal/core/domain"
	ports "bias-audit-service/internal/core/ports/output"
	"bias-audit-service/internal/observability/metrics"
)

// Stage offsets are cumulative from StartTracking, so the stages fire in
// order under a correct scheduler: 1s to first progress, 3s more to the
// second, 5s more to completion.
var trackingStages = [3]time.Duration{
	1 * time.Second,
	4 * time.Second,
	9 * time.Second,
}

// AuditTracker advances a newly created audit through its staged progress
// without blocking the caller. Each stage is an independent idempotent
// merge against the store; no stage verifies the prior one ran. Every
// tracked audit carries a cancellation handle so abandoning an audit stops
// the stages that have not fired yet.
type AuditTracker struct {
	audits  ports.AuditRepository
	events  ports.EventPublisher
	clock   Clock
	metrics *metrics.Metrics

	mu     sync.Mutex
	active map[uuid.UUID]*tracking
}

type tracking struct {
	cancel context.CancelFunc
	timers []Timer
}

func NewAuditTracker(audits ports.AuditRepository, events ports.EventPublisher, clock Clock, m *metrics.Metrics) *AuditTracker {
	if clock == nil {
		clock = SystemClock()
	}
	return &AuditTracker{
		audits:  audits,
		events:  events,
		clock:   clock,
		metrics: m,
		active:  make(map[uuid.UUID]*tracking),
	}
}

// StartTracking schedules the three lifecycle stages for auditID and
// returns immediately. finalScore is applied verbatim on completion; the
// tracker computes nothing itself.
func (t *AuditTracker) StartTracking(auditID uuid.UUID, finalScore float64) {
	ctx, cancel := context.WithCancel(context.Background())
	tr := &tracking{cancel: cancel}

	tr.timers = []Timer{
		t.clock.AfterFunc(trackingStages[0], func() {
			t.applyProgress(ctx, auditID, 25, domain.AuditStatusInProgress)
		}),
		t.clock.AfterFunc(trackingStages[1], func() {
			t.applyProgress(ctx, auditID, 65, "")
		}),
		t.clock.AfterFunc(trackingStages[2], func() {
			t.complete(ctx, auditID, finalScore)
		}),
	}

	t.mu.Lock()
	if prev, ok := t.active[auditID]; ok {
		prev.stop()
	}
	t.active[auditID] = tr
	t.mu.Unlock()

	t.metrics.AuditStarted()
}

// Cancel stops all pending stages for auditID. Stages that already fired
// are not undone. Cancelling an untracked audit is a no-op.
func (t *AuditTracker) Cancel(auditID uuid.UUID) {
	t.mu.Lock()
	tr, ok := t.active[auditID]
	if ok {
		delete(t.active, auditID)
	}
	t.mu.Unlock()

	if ok {
		tr.stop()
		t.metrics.AuditCancelled()
	}
}

func (tr *tracking) stop() {
	tr.cancel()
	for _, timer := range tr.timers {
		timer.Stop()
	}
}

func (t *AuditTracker) applyProgress(ctx context.Context, auditID uuid.UUID, progress int, status domain.AuditStatus) {
	if ctx.Err() != nil {
		return
	}

	patch := domain.AuditPatch{Progress: &progress}
	if status != "" {
		patch.Status = &status
	}

	applied, err := t.audits.Update(ctx, auditID, patch)
	if err != nil {
		log.WithError(err).WithField("audit_id", auditID).Error("apply audit progress failed")
		return
	}
	if !applied {
		log.WithField("audit_id", auditID).Warn("scheduled progress update skipped: audit no longer exists")
		return
	}

	if t.events != nil {
		if err := t.events.PublishAuditProgress(ctx, auditID, progress); err != nil {
			log.WithError(err).WithField("audit_id", auditID).Warn("publish audit progress failed")
		}
	}
}

func (t *AuditTracker) complete(ctx context.Context, auditID uuid.UUID, fairnessScore float64) {
	defer func() {
		t.mu.Lock()
		delete(t.active, auditID)
		t.mu.Unlock()
	}()

	if ctx.Err() != nil {
		return
	}

	status := domain.AuditStatusCompleted
	progress := 100
	completedAt := t.clock.Now()
	applied, err := t.audits.Update(ctx, auditID, domain.AuditPatch{
		Status:        &status,
		Progress:      &progress,
		CompletedAt:   &completedAt,
		FairnessScore: &fairnessScore,
	})
	if err != nil {
		log.WithError(err).WithField("audit_id", auditID).Error("complete audit failed")
		return
	}
	if !applied {
		log.WithField("audit_id", auditID).Warn("scheduled completion skipped: audit no longer exists")
		return
	}

	t.metrics.AuditCompleted()

	if t.events != nil {
		if err := t.events.PublishAuditCompleted(ctx, auditID, fairnessScore); err != nil {
			log.WithError(err).WithField("audit_id", auditID).Warn("publish audit completed failed")
		}
	}
}
