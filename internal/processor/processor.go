package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-summary-service/internal/speech"
	"github.com/nguyentantai21042004/audio-summary-service/internal/summarizer"
)

// ProcessAudio validates, converts, transcribes and summarizes one upload.
// Every failure, including a panic, is reported through the Result.
// Temp files are removed before it returns.
func (p *implProcessor) ProcessAudio(ctx context.Context, in Input) (result Result) {
	startTime := time.Now()
	outcome := outcomeFailed

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error(ctx, "Pipeline panic for %s: %v", in.Filename, r)
			result = Failed(prefixFault + fmt.Sprint(r))
			outcome = outcomeFailed
		}
		metrics.Results.WithLabelValues(outcome).Inc()
		metrics.Duration.Observe(time.Since(startTime).Seconds())
	}()

	if !strings.HasPrefix(in.ContentType, "audio/") {
		p.logger.Warn(ctx, "Rejected upload %q with content type %q", in.Filename, in.ContentType)
		outcome = outcomeInvalidUpload
		return Failed(ErrInvalidUpload)
	}

	p.logger.Info(ctx, "Processing audio: %s (%s)", in.Filename, in.ContentType)

	result, outcome = p.run(ctx, in)

	p.logger.Info(ctx, "Finished %s in %s: %s", in.Filename, time.Since(startTime), outcome)
	return result
}

func (p *implProcessor) run(ctx context.Context, in Input) (Result, string) {
	// Step 1: Persist upload
	uploadPath, err := p.persistUpload(ctx, in.Body)
	defer p.cleanupTempFile(ctx, uploadPath)
	if err != nil {
		return Failed(prefixFault + err.Error()), outcomeFailed
	}

	text, res, outcome := p.transcribe(ctx, uploadPath)
	if res != nil {
		return *res, outcome
	}

	// Step 4: Empty transcript
	if strings.TrimSpace(text) == "" {
		return Failed(ErrNoSpeech), outcomeNoSpeech
	}

	// Step 5: Summarize
	summary := p.summarizer.Summarize(ctx, summarizer.Request{
		Text:         text,
		SystemPrompt: in.SystemPrompt,
		UserPrompt:   in.UserPrompt,
	})
	if summary.OK() && strings.TrimSpace(summary.Summary) == "" {
		summary = summarizer.Failed(summarizer.ErrEmptySummary)
	}
	if !summary.OK() {
		p.logger.Warn(ctx, "Summary failed for %s: %s", in.Filename, summary.Failure.Error())
		r := Failed(prefixSummaryFailed + summary.Failure.Error())
		r.Transcription = text
		return r, outcomeSummaryFailed
	}

	return Result{
		Transcription: text,
		Summary:       summary.Summary,
		Success:       true,
	}, outcomeSuccess
}

// transcribe converts the upload and runs recognition under the semaphore.
// A non-nil Result is a terminal failure.
func (p *implProcessor) transcribe(ctx context.Context, uploadPath string) (string, *Result, string) {
	if err := p.sem.acquire(ctx); err != nil {
		r := Failed(prefixFault + err.Error())
		return "", &r, outcomeFailed
	}
	defer p.sem.release()

	// Step 2: Convert
	wavPath, err := p.convertAudio(ctx, uploadPath)
	defer p.cleanupTempFile(ctx, wavPath)
	if err != nil {
		r := Failed(prefixFault + err.Error())
		return "", &r, outcomeFailed
	}

	// Step 3: Transcribe
	rec, err := p.transcriber.Transcribe(ctx, wavPath)
	if err != nil {
		r := Failed(prefixFault + err.Error())
		return "", &r, outcomeFailed
	}

	switch rec.Outcome {
	case speech.OutcomeRecognized:
		return rec.Text, nil, ""
	case speech.OutcomeUnintelligible:
		r := Failed(ErrUnintelligible)
		return "", &r, outcomeUnintelligible
	default:
		r := Failed(prefixBackend + rec.Detail)
		return "", &r, outcomeBackendError
	}
}
