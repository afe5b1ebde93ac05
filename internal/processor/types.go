package processor

import "io"

const (
	ErrInvalidUpload  = "Please upload a valid audio file"
	ErrUnintelligible = "Could not understand the audio. Please try a clearer recording."
	ErrNoSpeech       = "No speech detected in the audio file"

	prefixBackend       = "Speech recognition service error: "
	prefixSummaryFailed = "Transcription successful but summary failed: "
	prefixFault         = "Processing failed: "
)

// Input is one upload as received by the transport.
type Input struct {
	Body         io.Reader
	Filename     string
	ContentType  string
	SystemPrompt string
	UserPrompt   string
}

// Result is the AudioProcessResult returned to clients. Error is null on success.
type Result struct {
	Transcription string  `json:"transcription"`
	Summary       string  `json:"summary"`
	Success       bool    `json:"success"`
	Error         *string `json:"error"`
}

// Failed builds a terminal failure result.
func Failed(msg string) Result {
	return Result{Error: &msg}
}
