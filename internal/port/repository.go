package port

import (
	"context"

	"github.com/google/uuid"

	"redline/internal/domain"
)

// FileMetaRepository defines the contract for file metadata persistence.
type FileMetaRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileMeta, error)
	List(ctx context.Context, offset, limit int) ([]domain.FileMeta, int, error)
	UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.FileStatus) error
	Delete(ctx context.Context, fileID uuid.UUID) error
}

// ComparisonRepository defines the contract for comparison job persistence.
// ClaimQueued atomically moves up to limit queued jobs to processing so
// concurrent workers never pick up the same job twice.
type ComparisonRepository interface {
	Create(ctx context.Context, cmp *domain.Comparison) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comparison, error)
	List(ctx context.Context, offset, limit int) ([]domain.Comparison, int, error)
	ClaimQueued(ctx context.Context, limit int) ([]domain.Comparison, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, report []byte) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	Requeue(ctx context.Context, id uuid.UUID, errMsg string) error
}
