package inbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-summary-service/internal/processor"
)

var contentTypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".webm": "audio/webm",
	".aac":  "audio/aac",
}

// ContentType maps a file extension to the audio MIME type sent through the pipeline.
func ContentType(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Handle runs filePath through the pipeline, writes the reports and archives the original.
// A pipeline failure is recorded in the JSON report, not returned.
func (h *implHandler) Handle(ctx context.Context, filePath string) error {
	startTime := time.Now()
	filename := filepath.Base(filePath)
	baseName := strings.TrimSuffix(filename, filepath.Ext(filename))

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open inbox file: %w", err)
	}

	result := h.processor.ProcessAudio(ctx, processor.Input{
		Body:         f,
		Filename:     filename,
		ContentType:  ContentType(filePath),
		SystemPrompt: h.cfg.Summarizer.SystemPrompt,
	})
	f.Close()

	if err := os.MkdirAll(h.cfg.Paths.Output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	jsonPath := filepath.Join(h.cfg.Paths.Output, baseName+".json")
	if err := writeJSONReport(jsonPath, result); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}

	if result.Success {
		mdPath := filepath.Join(h.cfg.Paths.Output, baseName+".md")
		if err := os.WriteFile(mdPath, []byte(renderMarkdown(baseName, result)), 0o644); err != nil {
			return fmt.Errorf("write markdown report: %w", err)
		}

		docxPath := filepath.Join(h.cfg.Paths.Output, baseName+".docx")
		if err := writeDocxReport(baseName, result, docxPath); err != nil {
			h.logger.Warn(ctx, "Failed to write docx report for %s: %v", filename, err)
		}
	} else {
		h.logger.Warn(ctx, "Pipeline failed for %s: %s", filename, *result.Error)
	}

	if err := h.moveToArchived(ctx, filePath); err != nil {
		h.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	h.logger.Info(ctx, "Inbox file %s handled in %s (success: %t)", filename, time.Since(startTime), result.Success)
	return nil
}

// moveToArchived moves the original into paths.archived, keeping its name
func (h *implHandler) moveToArchived(ctx context.Context, filePath string) error {
	if err := os.MkdirAll(h.cfg.Paths.Archived, 0o755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(h.cfg.Paths.Archived, filepath.Base(filePath))
	h.logger.Debug(ctx, "Archiving: %s -> %s", filePath, destPath)

	if err := os.Rename(filePath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
