package speech

import (
	"context"
	"fmt"
)

// Transcribe opens the canonical WAV at wavPath, calibrates the noise floor,
// records the full stream and hands all of it to the backend. Local faults
// such as an unreadable file are returned as errors; everything the backend
// reports comes back in the Result.
func (r *implRecognizer) Transcribe(ctx context.Context, wavPath string) (Result, error) {
	src, err := OpenAudioFile(wavPath)
	if err != nil {
		return Result{}, fmt.Errorf("open audio source: %w", err)
	}

	threshold := AdjustForAmbientNoise(src, r.calibration)
	audio := Record(src)

	r.logger.Debug(ctx, "Recorded %s of audio, energy threshold %.1f", audio.Duration(), threshold)

	return r.backend.Recognize(ctx, audio), nil
}
