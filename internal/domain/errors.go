package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed           = errors.New("file upload to storage failed")
	ErrFileNotReady           = errors.New("file is not uploaded yet")
	ErrSameFile               = errors.New("old and new file must differ")
	ErrComparisonNotCompleted = errors.New("comparison has not completed yet")
)
