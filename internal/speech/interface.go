package speech

import "context"

// Backend turns a recorded audio buffer into a recognition outcome.
// Service faults are reported through the Result, never as a panic.
type Backend interface {
	Recognize(ctx context.Context, audio *AudioData) Result
}

// Transcriber is what the audio pipeline depends on.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (Result, error)
}
