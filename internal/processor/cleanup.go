package processor

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// cleanupTempFile removes a temporary file. A file that was never created is not an error.
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if filePath == "" {
		return
	}

	if err := os.Remove(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
