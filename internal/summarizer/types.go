package summarizer

import (
	"bytes"
	"encoding/json"
)

// ErrEmptyText is the failure message for a transcription without any non-whitespace content.
const ErrEmptyText = "Transcription text cannot be empty"

// ErrEmptySummary is the failure message when the model answers with blank content.
const ErrEmptySummary = "empty summary returned by the model"

// Request carries the transcription and the prompt configuration for one summary.
type Request struct {
	Text         string
	SystemPrompt string
	UserPrompt   string
}

// Message is one role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildMessages builds the system + user payload sent to the chat-completion endpoint.
func BuildMessages(req Request) []Message {
	content := "Transcription Text:\n" + req.Text
	if req.UserPrompt != "" {
		content = req.UserPrompt + "\n\n" + content
	}

	return []Message{
		{Role: "system", Content: req.SystemPrompt},
		{Role: "user", Content: content},
	}
}

// Failure describes why a summary could not be produced. Raw holds the
// backend response verbatim when it had an unrecognized shape.
type Failure struct {
	Message string
	Raw     json.RawMessage
}

func (f *Failure) Error() string {
	if len(f.Raw) > 0 {
		return string(f.Raw)
	}
	return f.Message
}

func (f *Failure) MarshalJSON() ([]byte, error) {
	if len(f.Raw) > 0 {
		return f.Raw, nil
	}
	return json.Marshal(f.Message)
}

// Result is either a summary or a failure, never both.
type Result struct {
	Summary string
	Failure *Failure
}

func Succeeded(summary string) Result {
	return Result{Summary: summary}
}

func Failed(msg string) Result {
	return Result{Failure: &Failure{Message: msg}}
}

// FailedRaw keeps an unrecognized backend response as the failure payload.
// Invalid JSON is kept as a plain message instead.
func FailedRaw(body []byte) Result {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return Failed(string(body))
	}
	return Result{Failure: &Failure{Raw: buf.Bytes()}}
}

func (r Result) OK() bool {
	return r.Failure == nil
}

// MarshalJSON renders {"summary": ...} or {"error": ...}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal(struct {
			Error *Failure `json:"error"`
		}{r.Failure})
	}
	return json.Marshal(struct {
		Summary string `json:"summary"`
	}{r.Summary})
}
