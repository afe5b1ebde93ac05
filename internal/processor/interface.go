package processor

import "context"

// Processor runs one uploaded audio file through conversion, transcription and summarization.
type Processor interface {
	ProcessAudio(ctx context.Context, in Input) Result
}
