package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeDOC  FileType = "doc"
	FileTypeTXT  FileType = "txt"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileTypeDOC:  "application/msword",
	FileTypeTXT:  "text/plain",
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"docx": FileTypeDOCX,
	"doc":  FileTypeDOC,
	"txt":  FileTypeTXT,
}

// AllowedContentTypes is the set of sniffed content types accepted at upload.
// DOCX files sniff as zip archives and legacy DOC files as a generic binary
// stream, so those are accepted alongside the declared MIME types.
var AllowedContentTypes = map[string]struct{}{
	"application/pdf":           {},
	"application/zip":           {},
	"application/msword":        {},
	"application/octet-stream":  {},
	"text/plain; charset=utf-8": {},
}

// FileStatus represents the lifecycle of an uploaded file.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)

// ComparisonStatus represents the lifecycle of a comparison job.
type ComparisonStatus string

const (
	ComparisonStatusQueued     ComparisonStatus = "queued"
	ComparisonStatusProcessing ComparisonStatus = "processing"
	ComparisonStatusCompleted  ComparisonStatus = "completed"
	ComparisonStatusFailed     ComparisonStatus = "failed"
)
