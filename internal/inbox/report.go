package inbox

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/nguyentantai21042004/audio-summary-service/internal/processor"
)

func writeJSONReport(path string, result processor.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func renderMarkdown(title string, result processor.Result) string {
	var b strings.Builder

	b.WriteString("# " + title + "\n\n")
	b.WriteString("## Summary\n\n")
	b.WriteString(strings.TrimSpace(result.Summary) + "\n\n")
	b.WriteString("## Transcript\n\n")
	b.WriteString(strings.TrimSpace(result.Transcription) + "\n")

	return b.String()
}
