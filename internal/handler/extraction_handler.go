package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cropai/internal/domain"
	"cropai/internal/service"
)

// ExtractionHandler handles batch extraction and review session endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// StartBatch handles POST /api/v1/extractions
// @Summary Start a batch extraction
// @Description Upload one or more images (max 4MB each) for concurrent AI extraction; opens a review session when at least one succeeds
// @Tags extractions
// @Accept multipart/form-data
// @Produce json
// @Param kind formData string true "Record kind (sales or invoices)"
// @Param images formData file true "Image files"
// @Success 201 {object} APIResponse "Review session with drafts"
// @Failure 400 {object} APIResponse "Missing files or invalid kind"
// @Failure 422 {object} APIResponse "No document could be extracted"
// @Router /extractions [post]
func (h *ExtractionHandler) StartBatch(c *gin.Context) {
	kind, err := domain.ParseRecordKind(c.PostForm("kind"))
	if err != nil {
		HandleError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "at least one image file is required")
		return
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, openErr := header.Open()
		if openErr != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not read "+header.Filename)
			return
		}
		defer func() { _ = f.Close() }()
		files = append(files, service.UploadFile{
			Name: header.Filename,
			Size: header.Size,
			Body: f,
		})
	}

	sess, err := h.extractionService.StartBatch(c.Request.Context(), service.StartBatchInput{
		Kind:  kind,
		Files: files,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, sess)
}

// GetSession handles GET /api/v1/extractions/:id
// @Summary Get a review session
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} APIResponse "Session with drafts"
// @Failure 404 {object} APIResponse "Session not found"
// @Router /extractions/{id} [get]
func (h *ExtractionHandler) GetSession(c *gin.Context) {
	sessionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	sess, err := h.extractionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sess)
}

// UpdateDraft handles PUT /api/v1/extractions/:id/drafts/:draftID
// @Summary Replace a draft's payload
// @Description Wholesale payload replacement from the review form; unknown draft IDs are a no-op
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param draftID path string true "Draft ID (UUID)"
// @Success 200 {object} APIResponse "Session after the edit"
// @Failure 404 {object} APIResponse "Session not found"
// @Router /extractions/{id}/drafts/{draftID} [put]
func (h *ExtractionHandler) UpdateDraft(c *gin.Context) {
	sessionID, ok := parseID(c, "id")
	if !ok {
		return
	}
	draftID, ok := parseID(c, "draftID")
	if !ok {
		return
	}

	var data domain.RecordData
	if err := c.ShouldBindJSON(&data); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	sess, err := h.extractionService.UpdateDraft(c.Request.Context(), sessionID, draftID, data)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sess)
}

// RemoveDraft handles DELETE /api/v1/extractions/:id/drafts/:draftID
// @Summary Remove a draft from the session
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param draftID path string true "Draft ID (UUID)"
// @Success 200 {object} APIResponse "Session after the removal"
// @Failure 404 {object} APIResponse "Session not found"
// @Router /extractions/{id}/drafts/{draftID} [delete]
func (h *ExtractionHandler) RemoveDraft(c *gin.Context) {
	sessionID, ok := parseID(c, "id")
	if !ok {
		return
	}
	draftID, ok := parseID(c, "draftID")
	if !ok {
		return
	}

	sess, err := h.extractionService.RemoveDraft(c.Request.Context(), sessionID, draftID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sess)
}

// Commit handles POST /api/v1/extractions/:id/commit
// @Summary Commit a review session
// @Description Persists every draft with a non-empty item list and clears the session
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} APIResponse "Save count"
// @Failure 404 {object} APIResponse "Session not found"
// @Router /extractions/{id}/commit [post]
func (h *ExtractionHandler) Commit(c *gin.Context) {
	sessionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.extractionService.Commit(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Cancel handles POST /api/v1/extractions/:id/cancel
// @Summary Cancel a review session
// @Description Discards all drafts; nothing is persisted
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} APIResponse "Session discarded"
// @Failure 404 {object} APIResponse "Session not found"
// @Router /extractions/{id}/cancel [post]
func (h *ExtractionHandler) Cancel(c *gin.Context) {
	sessionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.extractionService.Cancel(c.Request.Context(), sessionID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "session cancelled"})
}

// parseID parses a UUID path parameter, writing the error response itself.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
