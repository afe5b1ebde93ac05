package summarizer

import "context"

// Summarizer turns a transcription into a natural-language summary.
// Failures are reported inside the Result, never as a Go error.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) Result
}
