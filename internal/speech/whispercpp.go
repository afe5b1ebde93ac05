package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Recognize runs the local whisper.cpp CLI on a temp copy of the buffer.
func (b *implWhisperCPP) Recognize(ctx context.Context, audio *AudioData) Result {
	dir, err := os.MkdirTemp(b.tempDir, "whisper-*")
	if err != nil {
		return BackendUnavailable(fmt.Sprintf("create temp dir: %v", err))
	}
	defer os.RemoveAll(dir)

	audioPath := filepath.Join(dir, "audio.wav")
	if err := os.WriteFile(audioPath, audio.WAV(), 0o644); err != nil {
		return BackendUnavailable(fmt.Sprintf("write temp audio: %v", err))
	}

	// whisper.cpp appends .txt to the output prefix
	outputPrefix := filepath.Join(dir, "transcript")

	args := []string{
		"-m", b.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-nt",
		"-l", b.cfg.Language,
		"-t", strconv.Itoa(b.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if b.cfg.Prompt != "" {
		args = append(args, "--prompt", b.cfg.Prompt)
	}

	b.logger.Debug(ctx, "Running whisper.cpp with %d threads on %s of audio", b.cfg.Threads, audio.Duration())

	if _, err := b.executor.Execute(ctx, b.cfg.BinaryPath, args...); err != nil {
		return BackendUnavailable(err.Error())
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return BackendUnavailable(fmt.Sprintf("read transcript: %v", err))
	}

	return Recognized(strings.Join(strings.Fields(string(data)), " "))
}
