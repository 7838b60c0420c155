package memstore

import (
	"sync"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
)

// Store is the in-memory entity store. It holds all six entity kinds for
// the process lifetime behind a single mutex: every mutation is fully
// applied before the next one (or any read) observes it. All reads and
// writes go through deep copies so no internal record reference ever
// escapes to a caller.
//
// Per-entity repositories share one Store the way the SQL repositories
// would share one pool; construct one Store per process (or per test) and
// hand it to the repository constructors.
type Store struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*domain.User
	models  map[uuid.UUID]*domain.Model
	audits  map[uuid.UUID]*domain.Audit
	metrics map[uuid.UUID]*domain.FairnessMetrics
	reports map[uuid.UUID]*domain.Report
	files   map[uuid.UUID]*domain.UploadedFile
}

func New() *Store {
	return &Store{
		users:   make(map[uuid.UUID]*domain.User),
		models:  make(map[uuid.UUID]*domain.Model),
		audits:  make(map[uuid.UUID]*domain.Audit),
		metrics: make(map[uuid.UUID]*domain.FairnessMetrics),
		reports: make(map[uuid.UUID]*domain.Report),
		files:   make(map[uuid.UUID]*domain.UploadedFile),
	}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func copyModel(m *domain.Model) *domain.Model {
	c := *m
	return &c
}

func copyAudit(a *domain.Audit) *domain.Audit {
	c := *a
	if a.ModelID != nil {
		id := *a.ModelID
		c.ModelID = &id
	}
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		c.CompletedAt = &t
	}
	if a.FairnessScore != nil {
		s := *a.FairnessScore
		c.FairnessScore = &s
	}
	return &c
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func copyMetrics(m *domain.FairnessMetrics) *domain.FairnessMetrics {
	c := *m
	c.DemographicParity = copyFloat(m.DemographicParity)
	c.EqualOpportunity = copyFloat(m.EqualOpportunity)
	c.Calibration = copyFloat(m.Calibration)
	c.Accuracy = copyFloat(m.Accuracy)
	c.Precision = copyFloat(m.Precision)
	c.Recall = copyFloat(m.Recall)
	c.F1Score = copyFloat(m.F1Score)
	if m.GroupMetrics != nil {
		c.GroupMetrics = make(map[string]domain.GroupMetric, len(m.GroupMetrics))
		for k, v := range m.GroupMetrics {
			c.GroupMetrics[k] = v
		}
	}
	return &c
}

func copyReport(r *domain.Report) *domain.Report {
	c := *r
	if r.AuditID != nil {
		id := *r.AuditID
		c.AuditID = &id
	}
	return &c
}

func copyFile(f *domain.UploadedFile) *domain.UploadedFile {
	c := *f
	if f.ModelID != nil {
		id := *f.ModelID
		c.ModelID = &id
	}
	return &c
}
