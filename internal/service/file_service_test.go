package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"redline/internal/config"
	"redline/internal/domain"
	"redline/internal/port"
	"redline/internal/service"
	"redline/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "us-east-1",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 50,
		PresignExpiry: 3600,
	}
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

// pdfContent returns minimal valid PDF bytes.
func pdfContent() []byte {
	return []byte("%PDF-1.4 test content that is at least a few bytes long for detection purposes")
}

func TestFileService_Upload_Success_PDF(t *testing.T) {
	fileRepo := new(mocks.MockFileMetaRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, storage, &cfg)

	file, header := createMultipartFile("document.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	fileRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.FileMeta")).Return(nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://test-bucket.s3.amazonaws.com/test", ETag: "abc"}, nil)
	fileRepo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), domain.FileStatusUploaded).Return(nil)

	result, err := svc.Upload(context.Background(), service.FileUploadInput{
		File:   file,
		Header: header,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.FileStatusUploaded, result.Status)
	assert.Equal(t, domain.FileTypePDF, result.FileType)
	assert.Equal(t, "document.pdf", result.OriginalName)

	fileRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestFileService_Upload_Success_TXT(t *testing.T) {
	fileRepo := new(mocks.MockFileMetaRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, storage, &cfg)

	file, header := createMultipartFile("sop.txt", []byte("1. Purpose\nThis SOP covers tank cleaning."), "text/plain")
	defer file.Close()

	fileRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.FileMeta")).Return(nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://s3/test", ETag: "abc"}, nil)
	fileRepo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), domain.FileStatusUploaded).Return(nil)

	result, err := svc.Upload(context.Background(), service.FileUploadInput{
		File:   file,
		Header: header,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.FileTypeTXT, result.FileType)
}

func TestFileService_Upload_UnsupportedExtension(t *testing.T) {
	fileRepo := new(mocks.MockFileMetaRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, storage, &cfg)

	file, header := createMultipartFile("image.png", []byte{0x89, 0x50, 0x4E, 0x47}, "image/png")
	defer file.Close()

	_, err := svc.Upload(context.Background(), service.FileUploadInput{
		File:   file,
		Header: header,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	fileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFileService_Upload_FileTooLarge(t *testing.T) {
	fileRepo := new(mocks.MockFileMetaRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	cfg.MaxFileSizeMB = 0
	svc := service.NewFileService(fileRepo, storage, &cfg)

	file, header := createMultipartFile("document.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	_, err := svc.Upload(context.Background(), service.FileUploadInput{
		File:   file,
		Header: header,
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestFileService_Upload_StorageFailure(t *testing.T) {
	fileRepo := new(mocks.MockFileMetaRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, storage, &cfg)

	file, header := createMultipartFile("document.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	fileRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.FileMeta")).Return(nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(nil, errors.New("s3 unavailable"))
	fileRepo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), domain.FileStatusFailed).Return(nil)

	_, err := svc.Upload(context.Background(), service.FileUploadInput{
		File:   file,
		Header: header,
	})

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	fileRepo.AssertCalled(t, "UpdateStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), domain.FileStatusFailed)
}

func TestFileService_GetDownloadURL(t *testing.T) {
	fileRepo := new(mocks.MockFileMetaRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, storage, &cfg)

	fileID := uuid.New()
	meta := &domain.FileMeta{
		ID:       fileID,
		S3Bucket: "test-bucket",
		S3Key:    "files/" + fileID.String() + "/sop.pdf",
	}

	fileRepo.On("GetByID", mock.Anything, fileID).Return(meta, nil)
	storage.On("GetPresignedURL", mock.Anything, meta.S3Bucket, meta.S3Key, int64(3600)).
		Return("https://signed-url", nil)

	url, err := svc.GetDownloadURL(context.Background(), fileID)

	assert.NoError(t, err)
	assert.Equal(t, "https://signed-url", url)
}

func TestFileService_Delete_NotFound(t *testing.T) {
	fileRepo := new(mocks.MockFileMetaRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, storage, &cfg)

	fileID := uuid.New()
	fileRepo.On("GetByID", mock.Anything, fileID).Return(nil, domain.ErrNotFound)

	err := svc.Delete(context.Background(), fileID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
