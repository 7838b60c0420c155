package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bias-audit-service/internal/core/domain"
	ports "bias-audit-service/internal/core/ports/output"
	"bias-audit-service/internal/observability/metrics"
)

// Delay before an uploaded file is marked processed. No content is actually
// inspected; processing is simulated.
const fileProcessingDelay = 2 * time.Second

type FileService struct {
	files   ports.FileRepository
	events  ports.EventPublisher
	clock   Clock
	metrics *metrics.Metrics
}

func NewFileService(files ports.FileRepository, events ports.EventPublisher, clock Clock, m *metrics.Metrics) *FileService {
	if clock == nil {
		clock = SystemClock()
	}
	return &FileService{files: files, events: events, clock: clock, metrics: m}
}

// Upload records the file and schedules the processed flag to flip after
// the processing delay. The record returns immediately with
// processed=false. Any non-negative size is accepted; ceilings belong to
// the upload UI.
func (s *FileService) Upload(ctx context.Context, modelID *uuid.UUID, filename string, size int64) (*domain.UploadedFile, error) {
	if filename == "" {
		return nil, domain.ErrInvalidFilename
	}
	if size < 0 {
		return nil, domain.ErrNegativeFileSize
	}

	file := &domain.UploadedFile{
		ID:         uuid.New(),
		ModelID:    modelID,
		Filename:   filename,
		Size:       size,
		UploadedAt: s.clock.Now(),
		Processed:  false,
	}

	if err := s.files.Create(ctx, file); err != nil {
		return nil, err
	}

	fileID := file.ID
	s.clock.AfterFunc(fileProcessingDelay, func() {
		s.markProcessed(fileID)
	})

	return file, nil
}

func (s *FileService) ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.UploadedFile, error) {
	return s.files.ListByModel(ctx, modelID)
}

func (s *FileService) markProcessed(fileID uuid.UUID) {
	ctx := context.Background()

	applied, err := s.files.MarkProcessed(ctx, fileID)
	if err != nil {
		log.WithError(err).WithField("file_id", fileID).Error("mark file processed failed")
		return
	}
	if !applied {
		log.WithField("file_id", fileID).Warn("scheduled file processing skipped: file no longer exists")
		return
	}

	s.metrics.FileProcessed()

	if s.events != nil {
		if err := s.events.PublishFileProcessed(ctx, fileID); err != nil {
			log.WithError(err).WithField("file_id", fileID).Warn("publish file processed failed")
		}
	}
}
