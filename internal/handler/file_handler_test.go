package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"redline/internal/domain"
	"redline/internal/handler"
	"redline/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFileHandler_Upload_Success(t *testing.T) {
	mockFileSvc := new(mocks.MockFileService)
	h := handler.NewFileHandler(mockFileSvc)

	fileID := uuid.New()
	expectedMeta := &domain.FileMeta{
		ID:           fileID,
		FileName:     fileID.String() + ".pdf",
		OriginalName: "sop.pdf",
		FileType:     domain.FileTypePDF,
		Status:       domain.FileStatusUploaded,
	}

	mockFileSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.FileUploadInput")).
		Return(expectedMeta, nil)

	// Create multipart form body
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "sop.pdf")
	part.Write([]byte("%PDF-1.4 test content"))
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/files/upload", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockFileSvc.AssertExpectations(t)
}

func TestFileHandler_Upload_NoFile(t *testing.T) {
	mockFileSvc := new(mocks.MockFileService)
	h := handler.NewFileHandler(mockFileSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/files/upload", nil)

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockFileSvc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestFileHandler_Upload_UnsupportedType(t *testing.T) {
	mockFileSvc := new(mocks.MockFileService)
	h := handler.NewFileHandler(mockFileSvc)

	mockFileSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.FileUploadInput")).
		Return(nil, domain.ErrUnsupportedFileType)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "image.png")
	part.Write([]byte{0x89, 0x50, 0x4E, 0x47})
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/files/upload", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
}

func TestFileHandler_GetByID_Success(t *testing.T) {
	mockFileSvc := new(mocks.MockFileService)
	h := handler.NewFileHandler(mockFileSvc)

	fileID := uuid.New()
	meta := &domain.FileMeta{ID: fileID, OriginalName: "sop.pdf"}

	mockFileSvc.On("GetByID", mock.Anything, fileID).Return(meta, nil)
	mockFileSvc.On("GetDownloadURL", mock.Anything, fileID).Return("https://signed-url", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/files/"+fileID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: fileID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://signed-url")
}

func TestFileHandler_GetByID_InvalidID(t *testing.T) {
	mockFileSvc := new(mocks.MockFileService)
	h := handler.NewFileHandler(mockFileSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/files/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFileHandler_GetByID_NotFound(t *testing.T) {
	mockFileSvc := new(mocks.MockFileService)
	h := handler.NewFileHandler(mockFileSvc)

	fileID := uuid.New()
	mockFileSvc.On("GetByID", mock.Anything, fileID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/files/"+fileID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: fileID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFileHandler_List_Defaults(t *testing.T) {
	mockFileSvc := new(mocks.MockFileService)
	h := handler.NewFileHandler(mockFileSvc)

	files := []domain.FileMeta{{ID: uuid.New()}, {ID: uuid.New()}}
	mockFileSvc.On("List", mock.Anything, 0, 20).Return(files, 2, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/files", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestFileHandler_Delete_Success(t *testing.T) {
	mockFileSvc := new(mocks.MockFileService)
	h := handler.NewFileHandler(mockFileSvc)

	fileID := uuid.New()
	mockFileSvc.On("Delete", mock.Anything, fileID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/files/"+fileID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: fileID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockFileSvc.AssertExpectations(t)
}
