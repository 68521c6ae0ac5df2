package handler

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cropai/internal/domain"
	"cropai/internal/service"
	"cropai/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RecordHandler handles persisted record endpoints.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// List handles GET /api/v1/records/:kind
// @Summary List persisted records
// @Produce json
// @Param kind path string true "Record kind (sales or invoices)"
// @Success 200 {object} APIResponse "Records in insertion order"
// @Failure 403 {object} APIResponse "Kind not reachable for role"
// @Router /records/{kind} [get]
func (h *RecordHandler) List(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	records, err := h.recordService.List(c.Request.Context(), kind)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, records)
}

// GetByID handles GET /api/v1/records/:kind/:id
// @Summary Get one record
// @Produce json
// @Param kind path string true "Record kind (sales or invoices)"
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} APIResponse "Record"
// @Failure 404 {object} APIResponse "Record not found"
// @Router /records/{kind}/{id} [get]
func (h *RecordHandler) GetByID(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	recordID, ok := parseID(c, "id")
	if !ok {
		return
	}

	record, err := h.recordService.GetByID(c.Request.Context(), kind, recordID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, record)
}

// Delete handles DELETE /api/v1/records/:kind/:id
// @Summary Delete one record
// @Produce json
// @Param kind path string true "Record kind (sales or invoices)"
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} APIResponse "Record deleted"
// @Failure 404 {object} APIResponse "Record not found"
// @Router /records/{kind}/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	recordID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), kind, recordID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "record deleted"})
}

// Export handles GET /api/v1/records/:kind/export
// @Summary Export a record collection as XLSX
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param kind path string true "Record kind (sales or invoices)"
// @Success 200 {file} binary "Workbook"
// @Failure 403 {object} APIResponse "Kind not reachable for role"
// @Router /records/{kind}/export [get]
func (h *RecordHandler) Export(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	records, err := h.recordService.List(c.Request.Context(), kind)
	if err != nil {
		HandleError(c, err)
		return
	}

	workbook, err := xlsxexport.BuildWorkbook(kind, records)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() {
		if cerr := workbook.Close(); cerr != nil {
			log.Printf("recordHandler.Export: closing workbook: %v", cerr)
		}
	}()

	var buf bytes.Buffer
	if _, err := workbook.WriteTo(&buf); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+xlsxexport.FileName(kind)+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// parseKind parses the :kind path parameter, writing the error response itself.
func parseKind(c *gin.Context) (domain.RecordKind, bool) {
	kind, err := domain.ParseRecordKind(c.Param("kind"))
	if err != nil {
		HandleError(c, err)
		return "", false
	}
	return kind, true
}
