package memstore

import (
	"context"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
)

type FileRepository struct {
	store *Store
}

func NewFileRepository(store *Store) *FileRepository {
	return &FileRepository{store: store}
}

func (r *FileRepository) Create(ctx context.Context, file *domain.UploadedFile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.files[file.ID] = copyFile(file)
	return nil
}

func (r *FileRepository) ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.UploadedFile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	files := make([]*domain.UploadedFile, 0)
	for _, f := range r.store.files {
		if f.ModelID != nil && *f.ModelID == modelID {
			files = append(files, copyFile(f))
		}
	}
	return files, nil
}

// MarkProcessed flips processed to true. The flag never reverts; marking an
// already processed file again is harmless. Missing ids report false.
func (r *FileRepository) MarkProcessed(ctx context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f, ok := r.store.files[id]
	if !ok {
		return false, nil
	}
	f.Processed = true
	return true, nil
}
