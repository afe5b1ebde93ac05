package processor

import (
	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
	"github.com/nguyentantai21042004/audio-summary-service/internal/logger"
	"github.com/nguyentantai21042004/audio-summary-service/internal/speech"
	"github.com/nguyentantai21042004/audio-summary-service/internal/summarizer"
	"github.com/nguyentantai21042004/audio-summary-service/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber speech.Transcriber
	summarizer  summarizer.Summarizer
	sem         *semaphore
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, transcriber speech.Transcriber, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		transcriber: transcriber,
		summarizer:  sum,
		sem:         newSemaphore(cfg.Performance.MaxConcurrent),
		logger:      log,
	}
}
