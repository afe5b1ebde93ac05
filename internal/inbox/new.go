package inbox

import (
	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
	"github.com/nguyentantai21042004/audio-summary-service/internal/logger"
	"github.com/nguyentantai21042004/audio-summary-service/internal/processor"
)

type implHandler struct {
	cfg       *config.Config
	processor processor.Processor
	logger    logger.Logger
}

// New creates a Handler that writes reports to paths.output and archives originals to paths.archived.
func New(cfg *config.Config, proc processor.Processor, log logger.Logger) Handler {
	return &implHandler{
		cfg:       cfg,
		processor: proc,
		logger:    log,
	}
}
