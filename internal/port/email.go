package port

import "context"

// ComparisonNotice carries the details included in a completion email.
type ComparisonNotice struct {
	ComparisonID string
	OldFileName  string
	NewFileName  string
	TotalChanges int
	Added        int
	Modified     int
	Removed      int
}

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendComparisonReady(ctx context.Context, toEmail string, notice ComparisonNotice) error
	SendComparisonFailed(ctx context.Context, toEmail string, comparisonID, reason string) error
}
