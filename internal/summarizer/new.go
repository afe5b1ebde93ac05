package summarizer

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
	"github.com/nguyentantai21042004/audio-summary-service/internal/logger"

	"google.golang.org/genai"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type implOpenRouter struct {
	httpClient HTTPClient
	cfg        *config.OpenRouterConfig
	apiKey     string
	logger     logger.Logger
}

// NewOpenRouter creates a Summarizer backed by the OpenRouter chat-completion endpoint.
// apiKey is injected by the caller; an empty key makes every call fail without a request.
func NewOpenRouter(httpClient HTTPClient, cfg *config.OpenRouterConfig, apiKey string, log logger.Logger) Summarizer {
	return &implOpenRouter{
		httpClient: httpClient,
		cfg:        cfg,
		apiKey:     apiKey,
		logger:     log,
	}
}

type implGemini struct {
	model     string
	baseURL   string
	maxTokens int
	apiKey    string
	logger    logger.Logger

	// client is created on first use and shared by later calls
	clientOnce sync.Once
	client     *genai.Client
	clientErr  error
}

// NewGemini creates a Summarizer backed by the Gemini API.
func NewGemini(cfg *config.GeminiConfig, maxTokens int, apiKey string, log logger.Logger) Summarizer {
	return &implGemini{
		model:     cfg.Model,
		baseURL:   cfg.BaseURL,
		maxTokens: maxTokens,
		apiKey:    apiKey,
		logger:    log,
	}
}

// New picks the provider configured in summarizer.provider.
func New(cfg *config.Config, httpClient HTTPClient, log logger.Logger) (Summarizer, error) {
	switch cfg.Summarizer.Provider {
	case config.ProviderOpenRouter:
		return NewOpenRouter(httpClient, &cfg.OpenRouter, cfg.OpenRouter.APIKey, log), nil
	case config.ProviderGemini:
		return NewGemini(&cfg.Gemini, cfg.OpenRouter.MaxTokens, cfg.Gemini.APIKey, log), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
	}
}
