package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"voicebrief/internal/app"
	"voicebrief/internal/config"
)

const shutdownTimeout = 15 * time.Second

// Cmd runs the web server until interrupted.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the voicebrief web server",
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.InitializeApplication(cfg, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Server.Start()
	}()

	logger.Info("server started", "addr", cfg.Addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := application.Server.Shutdown(ctx); err != nil {
		return err
	}

	return <-errCh
}
