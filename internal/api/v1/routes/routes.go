package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"voicebrief/internal/api/middleware"
	"voicebrief/internal/api/v1/handlers"
	"voicebrief/internal/api/v1/services"
	"voicebrief/internal/app/auth"
	"voicebrief/internal/app/session"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	AuthService   *auth.Service
	Sessions      *session.Manager
	DigestService services.DigestService
}

// RegisterRoutes registers all application routes
func RegisterRoutes(router *gin.Engine, container *ServiceContainer) {
	pagesHandler := handlers.NewPagesHandler(container.DigestService)
	authHandler := handlers.NewAuthHandler(container.AuthService, container.Sessions)
	uploadHandler := handlers.NewUploadHandler(container.DigestService)
	exportHandler := handlers.NewExportHandler(container.DigestService)

	// Public pages
	router.GET("/", pagesHandler.Home)
	router.GET("/signup", authHandler.SignupForm)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Session-gated pages redirect anonymous users to the login form.
	pages := router.Group("/", middleware.RequireSession(container.Sessions))
	{
		pages.GET("/dashboard", pagesHandler.Dashboard)
		pages.GET("/export", exportHandler.Export)
	}

	// The upload API answers JSON, so anonymous requests get 401
	// instead of a redirect.
	router.POST("/upload", middleware.RequireSessionJSON(container.Sessions), uploadHandler.Upload)

	// Operational endpoints
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
