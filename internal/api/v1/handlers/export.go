package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"voicebrief/internal/api/middleware"
	"voicebrief/internal/api/v1/services"
	"voicebrief/internal/app/export"
)

// ExportHandler downloads a user's summary history as xlsx.
type ExportHandler struct {
	digest services.DigestService
}

// NewExportHandler creates a new export handler
func NewExportHandler(digest services.DigestService) *ExportHandler {
	return &ExportHandler{digest: digest}
}

// Export handles GET /export
func (h *ExportHandler) Export(c *gin.Context) {
	username := c.GetString(middleware.ContextKeyUsername)

	records, err := h.digest.HistoryRecords(c.Request.Context(), username)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("summaries_%s_%s.xlsx", username, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := export.ToExcel(records, c.Writer); err != nil {
		middleware.HandleError(c, err)
		return
	}
}
