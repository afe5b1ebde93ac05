package speech

import (
	"bytes"
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Recognize submits the buffer to an OpenAI-compatible transcription endpoint.
func (b *implOpenAI) Recognize(ctx context.Context, audio *AudioData) Result {
	if b.apiKey == "" {
		return BackendUnavailable("speech API key is not configured")
	}

	resp, err := b.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    b.model,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(audio.WAV()),
		Format:   openai.AudioResponseFormatVerboseJSON,
		Language: b.language,
	})
	if err != nil {
		b.logger.Error(ctx, "Transcription request failed: %v", err)
		return BackendUnavailable(err.Error())
	}

	if len(resp.Segments) > 0 {
		confident := false
		for _, seg := range resp.Segments {
			if seg.AvgLogprob >= b.minAvgLogprob {
				confident = true
				break
			}
		}
		if !confident {
			b.logger.Warn(ctx, "No confident segment in %d segments", len(resp.Segments))
			return Unintelligible()
		}
	}

	return Recognized(strings.TrimSpace(resp.Text))
}
