package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"redline/internal/docdiff"
	"redline/internal/domain"
	"redline/internal/extract"
	"redline/internal/port"
)

// CreateComparisonInput is the DTO for comparison creation requests.
type CreateComparisonInput struct {
	OldFileID   uuid.UUID
	NewFileID   uuid.UUID
	NotifyEmail string
}

// TextCompareInput is the DTO for synchronous raw-text comparisons.
type TextCompareInput struct {
	OldText     string
	NewText     string
	OldFilename string
	NewFilename string
}

// ComparisonService defines the document comparison contract.
type ComparisonService interface {
	Create(ctx context.Context, input CreateComparisonInput) (*domain.Comparison, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comparison, error)
	List(ctx context.Context, offset, limit int) ([]domain.Comparison, int, error)
	GetReport(ctx context.Context, id uuid.UUID) (*docdiff.Report, error)
	CompareText(ctx context.Context, input TextCompareInput) *docdiff.Report
	ProcessComparison(ctx context.Context, cmp *domain.Comparison, maxAttempts int)
}

type comparisonService struct {
	cmpRepo  port.ComparisonRepository
	fileRepo port.FileMetaRepository
	storage  port.ObjectStorage
	email    port.EmailSender
}

// NewComparisonService creates a new ComparisonService implementation.
func NewComparisonService(
	cmpRepo port.ComparisonRepository,
	fileRepo port.FileMetaRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
) ComparisonService {
	return &comparisonService{
		cmpRepo:  cmpRepo,
		fileRepo: fileRepo,
		storage:  storage,
		email:    email,
	}
}

func (s *comparisonService) Create(ctx context.Context, input CreateComparisonInput) (*domain.Comparison, error) {
	if input.OldFileID == input.NewFileID {
		return nil, domain.ErrSameFile
	}

	// Both files must exist and be fully uploaded before queueing
	for _, fileID := range []uuid.UUID{input.OldFileID, input.NewFileID} {
		meta, err := s.fileRepo.GetByID(ctx, fileID)
		if err != nil {
			return nil, err
		}
		if meta.Status != domain.FileStatusUploaded {
			return nil, domain.ErrFileNotReady
		}
	}

	cmp := &domain.Comparison{
		ID:          uuid.New(),
		OldFileID:   input.OldFileID,
		NewFileID:   input.NewFileID,
		Status:      domain.ComparisonStatusQueued,
		NotifyEmail: input.NotifyEmail,
	}

	if err := s.cmpRepo.Create(ctx, cmp); err != nil {
		return nil, fmt.Errorf("creating comparison: %w", err)
	}

	log.Printf("comparisonService.Create: comparison %s queued (%s vs %s)",
		cmp.ID, cmp.OldFileID, cmp.NewFileID)
	return cmp, nil
}

func (s *comparisonService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comparison, error) {
	return s.cmpRepo.GetByID(ctx, id)
}

func (s *comparisonService) List(ctx context.Context, offset, limit int) ([]domain.Comparison, int, error) {
	return s.cmpRepo.List(ctx, offset, limit)
}

// GetReport returns the deserialized report of a completed comparison.
func (s *comparisonService) GetReport(ctx context.Context, id uuid.UUID) (*docdiff.Report, error) {
	cmp, err := s.cmpRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cmp.Status != domain.ComparisonStatusCompleted {
		return nil, domain.ErrComparisonNotCompleted
	}
	var report docdiff.Report
	if err := json.Unmarshal(cmp.Report, &report); err != nil {
		return nil, fmt.Errorf("decoding stored report: %w", err)
	}
	return &report, nil
}

// CompareText runs the full comparison pipeline synchronously on raw text.
func (s *comparisonService) CompareText(_ context.Context, input TextCompareInput) *docdiff.Report {
	oldDoc := docdiff.ExtractDocument(input.OldText, input.OldFilename)
	newDoc := docdiff.ExtractDocument(input.NewText, input.NewFilename)
	result := docdiff.CompareDocuments(oldDoc, newDoc)
	return docdiff.BuildReport(result)
}

// ProcessComparison performs the core comparison logic: file lookup, S3
// download, text extraction, section diff, report building, and result
// saving. It is called by the queue worker. The comparison must already be
// in processing status with Attempts incremented.
func (s *comparisonService) ProcessComparison(ctx context.Context, cmp *domain.Comparison, maxAttempts int) {
	oldMeta, err := s.fileRepo.GetByID(ctx, cmp.OldFileID)
	if err != nil {
		s.handleFailure(ctx, cmp, maxAttempts, fmt.Sprintf("looking up old file: %v", err))
		return
	}
	newMeta, err := s.fileRepo.GetByID(ctx, cmp.NewFileID)
	if err != nil {
		s.handleFailure(ctx, cmp, maxAttempts, fmt.Sprintf("looking up new file: %v", err))
		return
	}

	// Download and extract both revisions in parallel; the diff itself only
	// starts once both sides have text.
	var (
		wg     sync.WaitGroup
		oldDoc *docdiff.ExtractedDocument
		newDoc *docdiff.ExtractedDocument
		oldErr error
		newErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		oldDoc, oldErr = s.fetchAndExtract(ctx, oldMeta)
	}()
	go func() {
		defer wg.Done()
		newDoc, newErr = s.fetchAndExtract(ctx, newMeta)
	}()
	wg.Wait()

	if oldErr != nil {
		s.handleFailure(ctx, cmp, maxAttempts, fmt.Sprintf("extracting old revision: %v", oldErr))
		return
	}
	if newErr != nil {
		s.handleFailure(ctx, cmp, maxAttempts, fmt.Sprintf("extracting new revision: %v", newErr))
		return
	}

	result := docdiff.CompareDocuments(oldDoc, newDoc)
	report := docdiff.BuildReport(result)

	reportJSON, err := json.Marshal(report)
	if err != nil {
		s.handleFailure(ctx, cmp, maxAttempts, fmt.Sprintf("encoding report: %v", err))
		return
	}

	if err := s.cmpRepo.MarkCompleted(ctx, cmp.ID, reportJSON); err != nil {
		log.Printf("comparisonService.ProcessComparison: failed to save report for %s: %v", cmp.ID, err)
		return
	}

	log.Printf("comparisonService.ProcessComparison: comparison %s completed with %d changes",
		cmp.ID, report.Summary.TotalChanges)

	if cmp.NotifyEmail != "" {
		notice := port.ComparisonNotice{
			ComparisonID: cmp.ID.String(),
			OldFileName:  oldMeta.OriginalName,
			NewFileName:  newMeta.OriginalName,
			TotalChanges: report.Summary.TotalChanges,
			Added:        report.Summary.Added,
			Modified:     report.Summary.Modified,
			Removed:      report.Summary.Removed,
		}
		if err := s.email.SendComparisonReady(ctx, cmp.NotifyEmail, notice); err != nil {
			log.Printf("comparisonService.ProcessComparison: notification for %s failed: %v", cmp.ID, err)
		}
	}
}

func (s *comparisonService) fetchAndExtract(ctx context.Context, meta *domain.FileMeta) (*docdiff.ExtractedDocument, error) {
	data, err := s.storage.Download(ctx, meta.S3Bucket, meta.S3Key)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", meta.S3Key, err)
	}
	text, err := extract.Text(meta.OriginalName, data)
	if err != nil {
		return nil, err
	}
	return docdiff.ExtractDocument(text, meta.OriginalName), nil
}

// handleFailure requeues the comparison if attempts remain, otherwise marks
// it permanently failed and sends the failure notification.
func (s *comparisonService) handleFailure(ctx context.Context, cmp *domain.Comparison, maxAttempts int, errMsg string) {
	if cmp.Attempts < maxAttempts {
		log.Printf("comparisonService: comparison %s failed (attempt %d/%d), requeueing: %s",
			cmp.ID, cmp.Attempts, maxAttempts, errMsg)
		if err := s.cmpRepo.Requeue(ctx, cmp.ID, errMsg); err != nil {
			log.Printf("comparisonService: failed to requeue %s: %v", cmp.ID, err)
		}
		return
	}

	log.Printf("comparisonService: comparison %s failed permanently: %s", cmp.ID, errMsg)
	if err := s.cmpRepo.MarkFailed(ctx, cmp.ID, errMsg); err != nil {
		log.Printf("comparisonService: failed to mark %s failed: %v", cmp.ID, err)
	}
	if cmp.NotifyEmail != "" {
		if err := s.email.SendComparisonFailed(ctx, cmp.NotifyEmail, cmp.ID.String(), errMsg); err != nil {
			log.Printf("comparisonService: failure notification for %s failed: %v", cmp.ID, err)
		}
	}
}
