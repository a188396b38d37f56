package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"redline/internal/domain"
	"redline/internal/port"
)

type comparisonRepo struct {
	db *sqlx.DB
}

// NewComparisonRepo creates a new PostgreSQL-backed ComparisonRepository.
func NewComparisonRepo(db *sqlx.DB) port.ComparisonRepository {
	return &comparisonRepo{db: db}
}

func (r *comparisonRepo) Create(ctx context.Context, cmp *domain.Comparison) error {
	now := time.Now().UTC()
	cmp.CreatedAt = now
	cmp.UpdatedAt = now

	query := `INSERT INTO comparisons
		(id, old_file_id, new_file_id, status, report, error, attempts,
		 notify_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		cmp.ID, cmp.OldFileID, cmp.NewFileID, cmp.Status, cmp.Report,
		cmp.Error, cmp.Attempts, cmp.NotifyEmail, cmp.CreatedAt, cmp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("comparisonRepo.Create: %w", err)
	}
	return nil
}

func (r *comparisonRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comparison, error) {
	var cmp domain.Comparison
	err := r.db.GetContext(ctx, &cmp,
		"SELECT * FROM comparisons WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("comparisonRepo.GetByID: %w", err)
	}
	return &cmp, nil
}

func (r *comparisonRepo) List(ctx context.Context, offset, limit int) ([]domain.Comparison, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM comparisons")
	if err != nil {
		return nil, 0, fmt.Errorf("comparisonRepo.List count: %w", err)
	}

	var cmps []domain.Comparison
	err = r.db.SelectContext(ctx, &cmps,
		`SELECT * FROM comparisons
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("comparisonRepo.List: %w", err)
	}
	return cmps, total, nil
}

// ClaimQueued flips up to limit queued jobs to processing and returns them.
// SKIP LOCKED keeps concurrent pollers from claiming the same rows.
func (r *comparisonRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.Comparison, error) {
	query := `UPDATE comparisons SET
			status = $1, attempts = attempts + 1, updated_at = $2
		WHERE id IN (
			SELECT id FROM comparisons
			WHERE status = $3
			ORDER BY created_at ASC
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`

	var cmps []domain.Comparison
	err := r.db.SelectContext(ctx, &cmps, query,
		domain.ComparisonStatusProcessing, time.Now().UTC(),
		domain.ComparisonStatusQueued, limit)
	if err != nil {
		return nil, fmt.Errorf("comparisonRepo.ClaimQueued: %w", err)
	}
	return cmps, nil
}

func (r *comparisonRepo) MarkCompleted(ctx context.Context, id uuid.UUID, report []byte) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE comparisons SET
			status = $1, report = $2, error = '', updated_at = $3, completed_at = $4
		 WHERE id = $5`,
		domain.ComparisonStatusCompleted, report, now, now, id)
	if err != nil {
		return fmt.Errorf("comparisonRepo.MarkCompleted: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *comparisonRepo) Requeue(ctx context.Context, id uuid.UUID, errMsg string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comparisons SET
			status = $1, error = $2, updated_at = $3
		 WHERE id = $4`,
		domain.ComparisonStatusQueued, errMsg, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("comparisonRepo.Requeue: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *comparisonRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comparisons SET
			status = $1, error = $2, updated_at = $3
		 WHERE id = $4`,
		domain.ComparisonStatusFailed, errMsg, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("comparisonRepo.MarkFailed: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
