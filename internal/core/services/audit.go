package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bias-audit-service/internal/core/domain"
	ports "bias-audit-service/internal/core/ports/output"
)

type AuditService struct {
	audits    ports.AuditRepository
	fairness  ports.FairnessMetricsRepository
	tracker   *AuditTracker
	events    ports.EventPublisher
	clock     Clock
	demoScore float64
}

// NewAuditService wires the audit lifecycle. demoScore is the fairness
// score handed to the tracker on creation; it stands in for an external
// scorer that would plug into the same seam.
func NewAuditService(audits ports.AuditRepository, fairness ports.FairnessMetricsRepository, tracker *AuditTracker, events ports.EventPublisher, clock Clock, demoScore float64) *AuditService {
	if clock == nil {
		clock = SystemClock()
	}
	return &AuditService{
		audits:    audits,
		fairness:  fairness,
		tracker:   tracker,
		events:    events,
		clock:     clock,
		demoScore: demoScore,
	}
}

// Create stores a pending audit at progress 0 and starts the tracking
// sequence. It returns the pending audit immediately; the scheduled stages
// apply later.
func (s *AuditService) Create(ctx context.Context, ownerID uuid.UUID, modelID *uuid.UUID) (*domain.Audit, error) {
	audit := &domain.Audit{
		ID:        uuid.New(),
		ModelID:   modelID,
		OwnerID:   ownerID,
		Status:    domain.AuditStatusPending,
		Progress:  0,
		CreatedAt: s.clock.Now(),
	}

	if err := s.audits.Create(ctx, audit); err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.PublishAuditCreated(ctx, audit.ID); err != nil {
			log.WithError(err).WithField("audit_id", audit.ID).Warn("publish audit created failed")
		}
	}

	s.tracker.StartTracking(audit.ID, s.demoScore)

	return audit, nil
}

// Get returns the audit and its fairness metrics; metrics are nil when none
// were recorded yet.
func (s *AuditService) Get(ctx context.Context, id uuid.UUID) (*domain.Audit, *domain.FairnessMetrics, error) {
	audit, err := s.audits.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	metrics, err := s.fairness.GetByAuditID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMetricsNotFound) {
			return audit, nil, nil
		}
		return nil, nil, err
	}

	return audit, metrics, nil
}

func (s *AuditService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Audit, error) {
	return s.audits.ListByOwner(ctx, ownerID)
}

// UpdateProgress merges progress (and status, when non-empty) into the
// audit. A missing id is a silent no-op, matching the fire-and-forget
// contract of the scheduled stages.
func (s *AuditService) UpdateProgress(ctx context.Context, id uuid.UUID, progress int, status domain.AuditStatus) error {
	if progress < 0 || progress > 100 {
		return domain.ErrInvalidProgress
	}

	patch := domain.AuditPatch{Progress: &progress}
	if status != "" {
		patch.Status = &status
	}
	_, err := s.audits.Update(ctx, id, patch)
	return err
}

// Complete applies the terminal completed merge in one atomic patch.
func (s *AuditService) Complete(ctx context.Context, id uuid.UUID, fairnessScore float64) error {
	if fairnessScore < 0 || fairnessScore > 1 {
		return domain.ErrInvalidFairnessScore
	}

	status := domain.AuditStatusCompleted
	progress := 100
	completedAt := s.clock.Now()
	_, err := s.audits.Update(ctx, id, domain.AuditPatch{
		Status:        &status,
		Progress:      &progress,
		CompletedAt:   &completedAt,
		FairnessScore: &fairnessScore,
	})
	return err
}

// Fail moves a non-terminal audit to failed and cancels any pending
// tracking stages.
func (s *AuditService) Fail(ctx context.Context, id uuid.UUID) error {
	audit, err := s.audits.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !audit.Status.CanTransition(domain.AuditStatusFailed) {
		return domain.ErrAuditAlreadyTerminal
	}

	status := domain.AuditStatusFailed
	if _, err := s.audits.Update(ctx, id, domain.AuditPatch{Status: &status}); err != nil {
		return err
	}

	s.tracker.Cancel(id)
	return nil
}
