package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
	"github.com/nguyentantai21042004/audio-summary-service/internal/logger"
	"github.com/nguyentantai21042004/audio-summary-service/internal/processor"
	"github.com/nguyentantai21042004/audio-summary-service/internal/speech"
	"github.com/nguyentantai21042004/audio-summary-service/internal/summarizer"
	"github.com/nguyentantai21042004/audio-summary-service/pkg/executor"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App holds the wired components shared by all commands.
type App struct {
	Config      *config.Config
	Logger      logger.Logger
	Executor    executor.Executor
	Summarizer  summarizer.Summarizer
	Transcriber speech.Transcriber
	Processor   processor.Processor
	Registry    *prometheus.Registry
}

func newApp(opts *Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// stdout is reserved for command output
	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	exec := executor.New()

	sum, err := summarizer.New(cfg, &http.Client{Timeout: cfg.OpenRouter.Timeout}, log)
	if err != nil {
		return nil, fmt.Errorf("init summarizer: %w", err)
	}

	tr, err := speech.New(cfg, exec, log)
	if err != nil {
		return nil, fmt.Errorf("init speech backend: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	summarizer.RegisterMetrics(reg)
	processor.RegisterMetrics(reg)

	return &App{
		Config:      cfg,
		Logger:      log,
		Executor:    exec,
		Summarizer:  sum,
		Transcriber: tr,
		Processor:   processor.New(cfg, exec, tr, sum, log),
		Registry:    reg,
	}, nil
}
