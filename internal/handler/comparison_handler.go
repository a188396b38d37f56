package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"redline/internal/reportexport"
	"redline/internal/service"
)

// ComparisonHandler handles comparison job endpoints.
type ComparisonHandler struct {
	cmpService service.ComparisonService
}

// NewComparisonHandler creates a new ComparisonHandler.
func NewComparisonHandler(cmpService service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{cmpService: cmpService}
}

// CreateComparisonRequest is the JSON body for POST /comparisons.
type CreateComparisonRequest struct {
	OldFileID   string `json:"old_file_id" binding:"required"`
	NewFileID   string `json:"new_file_id" binding:"required"`
	NotifyEmail string `json:"notify_email"`
}

// CompareTextRequest is the JSON body for POST /comparisons/text.
type CompareTextRequest struct {
	OldText     string `json:"old_text" binding:"required"`
	NewText     string `json:"new_text" binding:"required"`
	OldFilename string `json:"old_filename"`
	NewFilename string `json:"new_filename"`
}

// Create handles POST /api/v1/comparisons
// @Summary Queue a comparison
// @Description Queue an asynchronous comparison between two uploaded document revisions
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body CreateComparisonRequest true "Comparison request"
// @Success 201 {object} APIResponse "Comparison queued"
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 404 {object} APIResponse "File not found"
// @Failure 409 {object} APIResponse "File not ready"
// @Router /comparisons [post]
func (h *ComparisonHandler) Create(c *gin.Context) {
	var req CreateComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "old_file_id and new_file_id are required")
		return
	}

	oldFileID, err := uuid.Parse(req.OldFileID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid old_file_id")
		return
	}
	newFileID, err := uuid.Parse(req.NewFileID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid new_file_id")
		return
	}

	cmp, err := h.cmpService.Create(c.Request.Context(), service.CreateComparisonInput{
		OldFileID:   oldFileID,
		NewFileID:   newFileID,
		NotifyEmail: req.NotifyEmail,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, cmp)
}

// GetByID handles GET /api/v1/comparisons/:id
// @Summary Get comparison by ID
// @Description Get a comparison job, including its report once completed
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID (UUID)"
// @Success 200 {object} APIResponse "Comparison"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Comparison not found"
// @Router /comparisons/{id} [get]
func (h *ComparisonHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid comparison ID")
		return
	}

	cmp, err := h.cmpService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cmp)
}

// List handles GET /api/v1/comparisons
// @Summary List comparisons
// @Description List comparison jobs with pagination
// @Tags comparisons
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse "List of comparisons"
// @Router /comparisons [get]
func (h *ComparisonHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	cmps, total, err := h.cmpService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, cmps, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// CompareText handles POST /api/v1/comparisons/text
// @Summary Compare raw text
// @Description Compare two raw text revisions synchronously and return the report
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body CompareTextRequest true "Text comparison request"
// @Success 200 {object} APIResponse "Comparison report"
// @Failure 400 {object} APIResponse "Invalid request"
// @Router /comparisons/text [post]
func (h *ComparisonHandler) CompareText(c *gin.Context) {
	var req CompareTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "old_text and new_text are required")
		return
	}

	report := h.cmpService.CompareText(c.Request.Context(), service.TextCompareInput{
		OldText:     req.OldText,
		NewText:     req.NewText,
		OldFilename: req.OldFilename,
		NewFilename: req.NewFilename,
	})

	RespondOK(c, report)
}

// Export handles GET /api/v1/comparisons/:id/export
// @Summary Export a comparison report
// @Description Download a completed comparison report as CSV or XLSX
// @Tags comparisons
// @Produce application/octet-stream
// @Param id path string true "Comparison ID (UUID)"
// @Param format query string false "Export format: csv or xlsx" default(csv)
// @Success 200 {file} file "Report file"
// @Failure 400 {object} APIResponse "Invalid ID or format"
// @Failure 404 {object} APIResponse "Comparison not found"
// @Failure 409 {object} APIResponse "Comparison not completed"
// @Router /comparisons/{id}/export [get]
func (h *ComparisonHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid comparison ID")
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	report, err := h.cmpService.GetReport(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	name := "comparison_" + id.String()
	if report.NewMetadata.SopID != "" && report.NewMetadata.SopID != "N/A" {
		name = report.NewMetadata.SopID
	}

	var buf bytes.Buffer
	var contentType string
	switch format {
	case "csv":
		contentType = "text/csv; charset=utf-8"
		err = reportexport.WriteCSV(&buf, report)
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = reportexport.WriteXLSX(&buf, report)
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "failed to render report")
		return
	}

	filename := reportexport.BuildFilename(name, format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
