package summarizer

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Summarize sends the same system/user pair to Gemini, one request per call.
func (s *implGemini) Summarize(ctx context.Context, req Request) Result {
	if strings.TrimSpace(req.Text) == "" {
		metrics.Errors.WithLabelValues("empty_text").Inc()
		return Failed(ErrEmptyText)
	}
	if s.apiKey == "" {
		metrics.Errors.WithLabelValues("no_key").Inc()
		return Failed("GEMINI_API_KEY is not configured")
	}

	client, err := s.getClient(ctx)
	if err != nil {
		metrics.Errors.WithLabelValues("transport").Inc()
		return Failed(err.Error())
	}

	messages := BuildMessages(req)
	genCfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(s.maxTokens),
	}
	if messages[0].Content != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(messages[0].Content, genai.RoleUser)
	}

	start := time.Now()

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(messages[1].Content), genCfg)
	if err != nil {
		metrics.Errors.WithLabelValues("transport").Inc()
		s.logger.Error(ctx, "Gemini request failed: %v", err)
		return Failed(err.Error())
	}

	metrics.RequestTime.Observe(time.Since(start).Seconds())

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		metrics.Errors.WithLabelValues("shape").Inc()
		raw, err := json.Marshal(result)
		if err != nil {
			return Failed("empty response from Gemini")
		}
		return FailedRaw(raw)
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	if strings.TrimSpace(text) == "" {
		metrics.Errors.WithLabelValues("empty_summary").Inc()
		return Failed(ErrEmptySummary)
	}

	return Succeeded(text)
}

func (s *implGemini) getClient(ctx context.Context) (*genai.Client, error) {
	s.clientOnce.Do(func() {
		s.client, s.clientErr = genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
			APIKey:      s.apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: s.baseURL},
		})
	})
	return s.client, s.clientErr
}
