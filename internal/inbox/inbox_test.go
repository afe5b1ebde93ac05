package inbox

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
	"github.com/nguyentantai21042004/audio-summary-service/internal/logger"
	"github.com/nguyentantai21042004/audio-summary-service/internal/processor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	input  processor.Input
	body   string
	result processor.Result
}

func (s *stubProcessor) ProcessAudio(_ context.Context, in processor.Input) processor.Result {
	s.input = in
	data, _ := io.ReadAll(in.Body)
	s.body = string(data)
	return s.result
}

func newTestHandler(t *testing.T, proc processor.Processor) (Handler, *config.Config) {
	t.Helper()

	root := t.TempDir()
	cfg := &config.Config{
		Inbox: config.InboxConfig{Enabled: true},
		Paths: config.PathsConfig{
			Input:    filepath.Join(root, "input"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
			Temp:     filepath.Join(root, "temp"),
		},
	}
	require.NoError(t, cfg.Validate())
	require.NoError(t, os.MkdirAll(cfg.Paths.Input, 0o755))

	return New(cfg, proc, logger.Nop()), cfg
}

func dropFile(t *testing.T, cfg *config.Config, name, content string) string {
	t.Helper()
	path := filepath.Join(cfg.Paths.Input, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHandleSuccess(t *testing.T) {
	proc := &stubProcessor{result: processor.Result{
		Transcription: "We met today. We decided to launch. Bob owns the rollout.",
		Summary:       "## Decisions\n- **Launch** approved\n- Bob owns rollout",
		Success:       true,
	}}
	h, cfg := newTestHandler(t, proc)
	path := dropFile(t, cfg, "standup.m4a", "audio bytes")

	require.NoError(t, h.Handle(context.Background(), path))

	assert.Equal(t, "standup.m4a", proc.input.Filename)
	assert.Equal(t, "audio/mp4", proc.input.ContentType)
	assert.Equal(t, config.DefaultSystemPrompt, proc.input.SystemPrompt)
	assert.Empty(t, proc.input.UserPrompt)
	assert.Equal(t, "audio bytes", proc.body)

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "standup.json"))
	require.NoError(t, err)
	var got processor.Result
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, proc.result, got)

	md, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "standup.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# standup")
	assert.Contains(t, string(md), "- **Launch** approved")
	assert.Contains(t, string(md), "Bob owns the rollout.")

	info, err := os.Stat(filepath.Join(cfg.Paths.Output, "standup.docx"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.NoFileExists(t, path)
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "standup.m4a"))
}

func TestHandleFailureWritesOnlyJSON(t *testing.T) {
	proc := &stubProcessor{result: processor.Failed("No speech detected in the audio file")}
	h, cfg := newTestHandler(t, proc)
	path := dropFile(t, cfg, "silence.wav", "RIFF")

	require.NoError(t, h.Handle(context.Background(), path))

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "silence.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"transcription":"","summary":"","success":false,"error":"No speech detected in the audio file"}`, string(data))

	assert.NoFileExists(t, filepath.Join(cfg.Paths.Output, "silence.md"))
	assert.NoFileExists(t, filepath.Join(cfg.Paths.Output, "silence.docx"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "silence.wav"))
}

func TestHandleMissingFile(t *testing.T) {
	h, cfg := newTestHandler(t, &stubProcessor{})
	assert.Error(t, h.Handle(context.Background(), filepath.Join(cfg.Paths.Input, "gone.mp3")))
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"a.wav":  "audio/wav",
		"a.MP3":  "audio/mpeg",
		"a.ogg":  "audio/ogg",
		"a.flac": "audio/flac",
		"a.webm": "audio/webm",
		"a.aac":  "audio/aac",
		"a.bin":  "application/octet-stream",
	}
	for path, want := range tests {
		assert.Equal(t, want, ContentType(path), path)
	}
}

func TestTranscriptParagraphs(t *testing.T) {
	got := transcriptParagraphs("One. Two! Three? Four. Five.  Six and\nseven", 2)
	assert.Equal(t, []string{"One. Two!", "Three? Four.", "Five. Six and seven"}, got)

	assert.Empty(t, transcriptParagraphs("   ", 3))
}

func TestCleanMarkdownInline(t *testing.T) {
	assert.Equal(t, "bold and code", cleanMarkdownInline("**bold** and `code`"))
}
