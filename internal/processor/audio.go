package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// persistUpload writes the upload to a uniquely named temp file. The
// returned path is registered for cleanup even when the copy fails.
func (p *implProcessor) persistUpload(ctx context.Context, body io.Reader) (string, error) {
	path := filepath.Join(p.cfg.Paths.Temp, "upload-"+uuid.NewString()+".wav")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return path, fmt.Errorf("write temp file: %w", err)
	}

	p.logger.Debug(ctx, "Persisted upload (%d bytes): %s", n, path)
	return path, nil
}

// convertAudio re-encodes any container ffmpeg can read into mono 16-bit PCM WAV
func (p *implProcessor) convertAudio(ctx context.Context, inputPath string) (string, error) {
	outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_converted.wav"

	// -vn: drop any video stream
	// -c:a pcm_s16le: 16-bit little-endian PCM
	// -y: overwrite output
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", strconv.Itoa(p.cfg.FFmpeg.SampleRate),
		"-ac", strconv.Itoa(p.cfg.FFmpeg.Channels),
		"-c:a", "pcm_s16le",
		"-y",
		outputPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return outputPath, fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	p.logger.Debug(ctx, "Audio converted: %s", outputPath)
	return outputPath, nil
}
