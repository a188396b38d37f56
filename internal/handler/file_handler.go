package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redline/internal/service"
)

// FileHandler handles file upload and management endpoints.
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload handles POST /api/v1/files/upload
// @Summary Upload a document
// @Description Upload a document revision (PDF, DOCX, DOC, or TXT, max 50MB)
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to upload (PDF, DOCX, DOC, or TXT)"
// @Success 201 {object} APIResponse "File uploaded successfully"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 500 {object} APIResponse "Upload failed"
// @Router /files/upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.FileUploadInput{
		File:   file,
		Header: header,
	}

	meta, err := h.fileService.Upload(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, meta)
}

// List handles GET /api/v1/files
// @Summary List files
// @Description List uploaded documents with pagination
// @Tags files
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse "List of files"
// @Router /files [get]
func (h *FileHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	files, total, err := h.fileService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, files, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/files/:id
// @Summary Get file by ID
// @Description Get file metadata and a presigned download URL
// @Tags files
// @Produce json
// @Param id path string true "File ID (UUID)"
// @Success 200 {object} APIResponse "File metadata with download URL"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "File not found"
// @Router /files/{id} [get]
func (h *FileHandler) GetByID(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid file ID")
		return
	}

	meta, err := h.fileService.GetByID(c.Request.Context(), fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	downloadURL, err := h.fileService.GetDownloadURL(c.Request.Context(), fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"file":         meta,
		"download_url": downloadURL,
	})
}

// Delete handles DELETE /api/v1/files/:id
// @Summary Delete a file
// @Description Delete a document and its stored object
// @Tags files
// @Produce json
// @Param id path string true "File ID (UUID)"
// @Success 200 {object} APIResponse "File deleted"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "File not found"
// @Router /files/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid file ID")
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), fileID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "file deleted"})
}
