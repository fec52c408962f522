package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicebrief/internal/api/flash"
	"voicebrief/internal/api/middleware"
	"voicebrief/internal/api/v1/services"
)

// PagesHandler renders the HTML pages.
type PagesHandler struct {
	digest services.DigestService
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(digest services.DigestService) *PagesHandler {
	return &PagesHandler{digest: digest}
}

// Home handles GET /
func (h *PagesHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"flash": flash.Pop(c)})
}

// Dashboard handles GET /dashboard. The session middleware has already
// put the username into the context.
func (h *PagesHandler) Dashboard(c *gin.Context) {
	username := c.GetString(middleware.ContextKeyUsername)

	history, err := h.digest.History(c.Request.Context(), username)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"flash":    flash.Pop(c),
		"username": username,
		"history":  history,
	})
}
