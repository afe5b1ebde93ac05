package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summary-service/internal/api"
	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
	"github.com/nguyentantai21042004/audio-summary-service/internal/inbox"
	"github.com/nguyentantai21042004/audio-summary-service/internal/watcher"
)

const shutdownTimeout = 30 * time.Second

func NewServeCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service (and the inbox watcher when enabled)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *Options) error {
	app, err := newApp(opts)
	if err != nil {
		return err
	}
	cfg, log := app.Config, app.Logger

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Summarizer: %s, speech backend: %s, max concurrent: %d",
		cfg.Summarizer.Provider, cfg.Speech.Backend, cfg.Performance.MaxConcurrent)
	if cfg.OpenRouter.APIKey == "" && cfg.Summarizer.Provider == config.ProviderOpenRouter {
		log.Warn(ctx, "OPENROUTER_API_KEY is not set; every summary request will fail")
	}

	errChan := make(chan error, 2)

	if cfg.Inbox.Enabled {
		w, err := startInbox(ctx, app, errChan)
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      api.New(cfg, app.Processor, app.Summarizer, app.Registry, log).NewRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info(ctx, "Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info(ctx, "Shutdown signal received")
	case runErr = <-errChan:
		log.Error(ctx, "Service error: %v", runErr)
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP shutdown: %v", err)
	}
	stop()

	log.Info(shutdownCtx, "Service stopped")
	return runErr
}

func startInbox(ctx context.Context, app *App, errChan chan<- error) (watcher.Watcher, error) {
	cfg := app.Config

	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	handler := inbox.New(cfg, app.Processor, app.Logger)
	w, err := watcher.New(cfg.Paths.Input, handler.Handle, app.Logger, cfg.Performance.MaxConcurrent)
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("inbox watcher: %w", err)
		}
	}()

	app.Logger.Info(ctx, "Inbox enabled: %s -> %s", cfg.Paths.Input, cfg.Paths.Output)
	return w, nil
}
