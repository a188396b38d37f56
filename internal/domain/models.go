package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FileMeta stores metadata about an uploaded source document.
type FileMeta struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Comparison is an asynchronous revision-comparison job between two uploaded
// files. Report holds the serialized docdiff report once the job completes.
type Comparison struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	OldFileID   uuid.UUID        `db:"old_file_id" json:"old_file_id"`
	NewFileID   uuid.UUID        `db:"new_file_id" json:"new_file_id"`
	Status      ComparisonStatus `db:"status" json:"status"`
	Report      json.RawMessage  `db:"report" json:"report,omitempty"`
	Error       string           `db:"error" json:"error,omitempty"`
	Attempts    int              `db:"attempts" json:"attempts"`
	NotifyEmail string           `db:"notify_email" json:"notify_email,omitempty"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
	CompletedAt *time.Time       `db:"completed_at" json:"completed_at,omitempty"`
}
