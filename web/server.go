// Package web assembles the gin engine and runs the HTTP server.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicebrief/internal/api/middleware"
	"voicebrief/internal/api/v1/routes"
	"voicebrief/internal/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server wraps the HTTP server and its engine.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the engine with middleware, templates and routes.
func NewServer(cfg *config.Config, container *routes.ServiceContainer, logger *slog.Logger) (*Server, error) {
	engine := gin.New()
	engine.MaxMultipartMemory = cfg.UploadMaxBytes
	engine.Use(
		middleware.RequestID(),
		middleware.StructuredLogging(logger),
		middleware.ErrorHandler(logger),
	)

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)

	routes.RegisterRoutes(engine, container)

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.Addr,
			Handler: engine,
		},
	}, nil
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
