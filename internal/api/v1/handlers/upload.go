package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicebrief/internal/api/errors"
	"voicebrief/internal/api/middleware"
	"voicebrief/internal/api/v1/services"
)

// UploadHandler accepts an audio file and returns its transcription and
// summary.
type UploadHandler struct {
	digest services.DigestService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(digest services.DigestService) *UploadHandler {
	return &UploadHandler{digest: digest}
}

// Upload handles POST /upload. Failures are returned as APIError JSON
// with a real error status, never folded into a 200 payload.
func (h *UploadHandler) Upload(c *gin.Context) {
	username := c.GetString(middleware.ContextKeyUsername)

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file part"))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid file"))
		return
	}

	response, err := h.digest.ProcessUpload(c.Request.Context(), username, header.Filename, file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
