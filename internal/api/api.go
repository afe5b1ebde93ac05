package api

import (
	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
	"github.com/nguyentantai21042004/audio-summary-service/internal/logger"
	"github.com/nguyentantai21042004/audio-summary-service/internal/processor"
	"github.com/nguyentantai21042004/audio-summary-service/internal/summarizer"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	serviceName    = "audio-summary-service"
	serviceMessage = "Audio Transcription Summary Service"
	Version        = "1.0.0"

	// in-memory part of a multipart upload; the rest spills to disk
	multipartMemory = 8 << 20
)

type API struct {
	cfg *config.Config

	processor  processor.Processor
	summarizer summarizer.Summarizer

	gatherer prometheus.Gatherer
	logger   logger.Logger
}

func New(cfg *config.Config, proc processor.Processor, sum summarizer.Summarizer, gatherer prometheus.Gatherer, log logger.Logger) *API {
	return &API{
		cfg: cfg,

		processor:  proc,
		summarizer: sum,

		gatherer: gatherer,
		logger:   log,
	}
}
