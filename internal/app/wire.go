//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"voicebrief/internal/app/auth"
	"voicebrief/internal/config"
	"voicebrief/web"
)

// InitializeApplication builds the full application graph from config.
func InitializeApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	wire.Build(
		provideRepositories,
		provideUserDAO,
		provideSummaryDAO,
		provideSessionManager,
		provideModel,
		provideTranscriber,
		provideSummarizer,
		provideUploadStore,
		provideDigestService,
		provideContainer,
		auth.NewService,
		web.NewServer,
		newApplication,
	)
	return nil, nil
}
