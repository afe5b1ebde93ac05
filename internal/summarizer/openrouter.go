package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

// chatChoice keeps message and content as pointers so a missing or null
// field is told apart from an empty string.
type chatChoice struct {
	Message *struct {
		Content *string `json:"content"`
	} `json:"message"`
}

// chatEnvelope distinguishes a missing "choices" key (nil) from an empty one.
type chatEnvelope struct {
	Choices *[]chatChoice `json:"choices"`
}

// Summarize issues exactly one chat-completion request for non-empty text.
func (s *implOpenRouter) Summarize(ctx context.Context, req Request) Result {
	if strings.TrimSpace(req.Text) == "" {
		metrics.Errors.WithLabelValues("empty_text").Inc()
		return Failed(ErrEmptyText)
	}
	if s.apiKey == "" {
		metrics.Errors.WithLabelValues("no_key").Inc()
		return Failed("OPENROUTER_API_KEY is not configured")
	}

	data, err := json.Marshal(&chatRequest{
		Model:     s.cfg.Model,
		Messages:  BuildMessages(req),
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return Failed(fmt.Sprintf("failed to marshal chat request: %v", err))
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(data))
	if err != nil {
		return Failed(fmt.Sprintf("failed to create chat request: %v", err))
	}
	request.Header.Set("Authorization", "Bearer "+s.apiKey)
	request.Header.Set("Content-Type", "application/json")

	start := time.Now()

	response, err := s.httpClient.Do(request)
	if err != nil {
		metrics.Errors.WithLabelValues("transport").Inc()
		s.logger.Error(ctx, "Chat completion request failed: %v", err)
		return Failed(err.Error())
	}
	defer drainAndClose(response.Body)

	body, err := io.ReadAll(response.Body)
	if err != nil {
		metrics.Errors.WithLabelValues("transport").Inc()
		return Failed(fmt.Sprintf("failed to read chat response body: %v", err))
	}

	metrics.RequestTime.Observe(time.Since(start).Seconds())

	var envelope chatEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		metrics.Errors.WithLabelValues("decode").Inc()
		s.logger.Warn(ctx, "Undecodable chat response (HTTP %d): %v", response.StatusCode, err)
		return Failed(fmt.Sprintf("failed to decode chat response: %v", err))
	}

	if envelope.Choices == nil {
		metrics.Errors.WithLabelValues("shape").Inc()
		s.logger.Warn(ctx, "Chat response without choices (HTTP %d)", response.StatusCode)
		return FailedRaw(body)
	}
	if len(*envelope.Choices) == 0 {
		metrics.Errors.WithLabelValues("shape").Inc()
		return Failed("no choices returned from chat completion")
	}

	choice := (*envelope.Choices)[0]
	if choice.Message == nil || choice.Message.Content == nil {
		metrics.Errors.WithLabelValues("shape").Inc()
		s.logger.Warn(ctx, "Chat choice without message content (HTTP %d)", response.StatusCode)
		return FailedRaw(body)
	}
	if strings.TrimSpace(*choice.Message.Content) == "" {
		metrics.Errors.WithLabelValues("empty_summary").Inc()
		return Failed(ErrEmptySummary)
	}

	s.logger.Debug(ctx, "Summary generated in %s", time.Since(start))
	return Succeeded(*choice.Message.Content)
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
