package speech

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
	"github.com/nguyentantai21042004/audio-summary-service/internal/logger"
	"github.com/nguyentantai21042004/audio-summary-service/pkg/executor"

	openai "github.com/sashabaranov/go-openai"
)

type implOpenAI struct {
	client        *openai.Client
	apiKey        string
	model         string
	language      string
	minAvgLogprob float64
	logger        logger.Logger
}

// NewOpenAIBackend creates a Backend for any OpenAI-compatible /audio/transcriptions endpoint.
func NewOpenAIBackend(cfg *config.SpeechConfig, log logger.Logger) Backend {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &implOpenAI{
		client:        openai.NewClientWithConfig(clientCfg),
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		language:      cfg.Language,
		minAvgLogprob: cfg.MinAvgLogprob,
		logger:        log,
	}
}

type implWhisperCPP struct {
	cfg      *config.WhisperConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperCPPBackend creates a Backend that shells out to a local whisper.cpp build.
func NewWhisperCPPBackend(cfg *config.WhisperConfig, tempDir string, exec executor.Executor, log logger.Logger) Backend {
	return &implWhisperCPP{
		cfg:      cfg,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}

type implRecognizer struct {
	backend     Backend
	calibration time.Duration
	logger      logger.Logger
}

// NewRecognizer creates a Transcriber around backend.
func NewRecognizer(backend Backend, calibration time.Duration, log logger.Logger) Transcriber {
	return &implRecognizer{
		backend:     backend,
		calibration: calibration,
		logger:      log,
	}
}

// New builds the Transcriber selected by speech.backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	var backend Backend

	switch cfg.Speech.Backend {
	case config.SpeechBackendOpenAI:
		backend = NewOpenAIBackend(&cfg.Speech, log)
	case config.SpeechBackendWhisperCPP:
		backend = NewWhisperCPPBackend(&cfg.Whisper, cfg.Paths.Temp, exec, log)
	default:
		return nil, fmt.Errorf("unknown speech backend %q", cfg.Speech.Backend)
	}

	return NewRecognizer(backend, cfg.Speech.CalibrationDuration, log), nil
}
