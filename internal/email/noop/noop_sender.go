package noop

import (
	"context"
	"log"

	"redline/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendComparisonReady(_ context.Context, toEmail string, notice port.ComparisonNotice) error {
	log.Printf("[NOOP EMAIL] Comparison %s ready for %s: %d changes (%d added, %d modified, %d removed): %s/comparisons/%s",
		notice.ComparisonID, toEmail, notice.TotalChanges, notice.Added, notice.Modified, notice.Removed,
		s.frontendURL, notice.ComparisonID)
	return nil
}

func (s *noopSender) SendComparisonFailed(_ context.Context, toEmail string, comparisonID, reason string) error {
	log.Printf("[NOOP EMAIL] Comparison %s failed for %s: %s", comparisonID, toEmail, reason)
	return nil
}
