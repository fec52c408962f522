package app

import (
	"fmt"
	"log/slog"
	"os"

	"voicebrief/internal/api/v1/routes"
	"voicebrief/internal/api/v1/services"
	"voicebrief/internal/app/api"
	"voicebrief/internal/app/api/summarizer"
	"voicebrief/internal/app/api/vosk"
	"voicebrief/internal/app/auth"
	"voicebrief/internal/app/repository"
	"voicebrief/internal/app/repository/pg"
	"voicebrief/internal/app/repository/sqlite"
	"voicebrief/internal/app/session"
	"voicebrief/internal/app/storage"
	"voicebrief/internal/config"
)

// provideRepositories selects postgres when DATABASE_URL is set,
// sqlite otherwise. Both types implement both DAO interfaces.
func provideRepositories(cfg *config.Config) (*repositories, error) {
	if cfg.DatabaseURL != "" {
		db, err := pg.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &repositories{users: db, summaries: db, closer: db.Close}, nil
	}

	db, err := sqlite.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	return &repositories{users: db, summaries: db, closer: db.Close}, nil
}

func provideUserDAO(repos *repositories) repository.UserDAO {
	return repos.users
}

func provideSummaryDAO(repos *repositories) repository.SummaryDAO {
	return repos.summaries
}

func provideSessionManager(cfg *config.Config) *session.Manager {
	return session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
}

// provideModel loads the speech model once; it is shared read-only
// across all requests.
func provideModel(cfg *config.Config) (*vosk.Model, error) {
	return vosk.LoadModel(cfg.VoskModelPath)
}

func provideTranscriber(model *vosk.Model) api.Transcriber {
	return vosk.NewLocalTranscriber(model)
}

// provideSummarizer builds the configured summarization provider. The
// API key always comes from the environment; the optional yaml file
// contributes endpoint and model settings.
func provideSummarizer(cfg *config.Config) (summarizer.Summarizer, error) {
	name := cfg.SummarizerProvider
	opts := summarizer.Options{
		Endpoint: cfg.HFAPIURL,
		Settings: map[string]interface{}{},
	}

	if cfg.SummarizerConfig != "" {
		fileCfg, err := config.LoadSummarizersConfig(cfg.SummarizerConfig)
		if err != nil {
			return nil, err
		}
		// The file's default applies only when SUMMARIZER_PROVIDER was
		// not set explicitly; the environment wins.
		if fileCfg.DefaultSummarizer != "" && os.Getenv("SUMMARIZER_PROVIDER") == "" {
			name = fileCfg.DefaultSummarizer
		}
		if sc, ok := fileCfg.Summarizers[name]; ok {
			if !sc.Enabled {
				return nil, fmt.Errorf("summarizer %q is disabled in %s", name, cfg.SummarizerConfig)
			}
			if sc.Settings != nil {
				opts.Settings = sc.Settings
			}
			if endpoint, ok := sc.Settings["endpoint"].(string); ok && endpoint != "" {
				opts.Endpoint = endpoint
			}
		}
	}

	switch name {
	case "huggingface":
		opts.APIKey = cfg.HFAPIKey
	case "openai":
		opts.APIKey = os.Getenv("OPENAI_API_KEY")
	case "gemini":
		opts.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return summarizer.New(name, opts)
}

// provideUploadStore builds the local store and, when configured,
// layers MinIO object storage on top of it.
func provideUploadStore(cfg *config.Config) (storage.UploadStore, error) {
	local, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadMaxBytes)
	if err != nil {
		return nil, err
	}
	if cfg.UploadBackend == "minio" {
		return storage.NewMinioStoreFromEnv(local)
	}
	return local, nil
}

func provideDigestService(
	cfg *config.Config,
	store storage.UploadStore,
	transcriber api.Transcriber,
	sum summarizer.Summarizer,
	summaries repository.SummaryDAO,
	logger *slog.Logger,
) services.DigestService {
	return services.NewDigestService(store, transcriber, sum, summaries, cfg.AllowedExts, logger)
}

func provideContainer(
	authService *auth.Service,
	sessions *session.Manager,
	digest services.DigestService,
) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		AuthService:   authService,
		Sessions:      sessions,
		DigestService: digest,
	}
}
