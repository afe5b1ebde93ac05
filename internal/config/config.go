package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultSystemPrompt is used when a request does not carry its own system prompt.
const DefaultSystemPrompt = "Summarize the following audio transcription text in a clear and concise manner."

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	OpenRouter  OpenRouterConfig  `yaml:"openrouter"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Speech      SpeechConfig      `yaml:"speech"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Inbox       InboxConfig       `yaml:"inbox"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Port           int           `yaml:"port"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	CORSOrigins    []string      `yaml:"cors_origins"`
}

type OpenRouterConfig struct {
	URL       string        `yaml:"url"`
	Model     string        `yaml:"model"`
	MaxTokens int           `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
	// APIKey is never read from the file, only from OPENROUTER_API_KEY.
	APIKey string `yaml:"-"`
}

type SummarizerConfig struct {
	Provider     string `yaml:"provider"`
	SystemPrompt string `yaml:"system_prompt"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
	// BaseURL overrides the Gemini API endpoint; empty uses the SDK default.
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"-"`
}

type SpeechConfig struct {
	Backend             string        `yaml:"backend"`
	BaseURL             string        `yaml:"base_url"`
	Model               string        `yaml:"model"`
	Language            string        `yaml:"language"`
	CalibrationDuration time.Duration `yaml:"calibration_duration"`
	MinAvgLogprob       float64       `yaml:"min_avg_logprob"`
	APIKey              string        `yaml:"-"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type InboxConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"

	SpeechBackendOpenAI     = "openai"
	SpeechBackendWhisperCPP = "whisper-cpp"
)

func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = 25 << 20
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 5 * time.Minute
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}

	if c.OpenRouter.URL == "" {
		c.OpenRouter.URL = "https://openrouter.ai/api/v1/chat/completions"
	}
	if c.OpenRouter.Model == "" {
		c.OpenRouter.Model = "openai/gpt-4o-mini"
	}
	if c.OpenRouter.MaxTokens == 0 {
		c.OpenRouter.MaxTokens = 500
	}
	if c.OpenRouter.Timeout == 0 {
		c.OpenRouter.Timeout = 60 * time.Second
	}

	switch c.Summarizer.Provider {
	case "":
		c.Summarizer.Provider = ProviderOpenRouter
	case ProviderOpenRouter, ProviderGemini:
	default:
		return fmt.Errorf("summarizer.provider %q is not supported", c.Summarizer.Provider)
	}
	if c.Summarizer.SystemPrompt == "" {
		c.Summarizer.SystemPrompt = DefaultSystemPrompt
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	switch c.Speech.Backend {
	case "":
		c.Speech.Backend = SpeechBackendOpenAI
	case SpeechBackendOpenAI:
	case SpeechBackendWhisperCPP:
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required for the whisper-cpp backend")
		}
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required for the whisper-cpp backend")
		}
	default:
		return fmt.Errorf("speech.backend %q is not supported", c.Speech.Backend)
	}
	if c.Speech.BaseURL == "" {
		c.Speech.BaseURL = "https://api.openai.com/v1"
	}
	if c.Speech.Model == "" {
		c.Speech.Model = "whisper-1"
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "en"
	}
	if c.Speech.CalibrationDuration == 0 {
		c.Speech.CalibrationDuration = time.Second
	}
	if c.Speech.MinAvgLogprob == 0 {
		c.Speech.MinAvgLogprob = -1.0
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = c.Speech.Language
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.Channels == 0 {
		c.FFmpeg.Channels = 1
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Inbox.Enabled {
		if c.Paths.Input == "" {
			return fmt.Errorf("paths.input is required when inbox is enabled")
		}
		if c.Paths.Output == "" {
			return fmt.Errorf("paths.output is required when inbox is enabled")
		}
		if c.Paths.Archived == "" {
			c.Paths.Archived = "data/archived"
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = strings.ToLower(c.Logging.Format)
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
