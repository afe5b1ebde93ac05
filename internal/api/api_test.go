package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
	"github.com/nguyentantai21042004/audio-summary-service/internal/logger"
	"github.com/nguyentantai21042004/audio-summary-service/internal/processor"
	"github.com/nguyentantai21042004/audio-summary-service/internal/summarizer"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(ctx context.Context, req summarizer.Request) summarizer.Result {
	args := m.Called(ctx, req)
	return args.Get(0).(summarizer.Result)
}

// recordingProcessor keeps the input it was given, including the uploaded bytes.
type recordingProcessor struct {
	calls  int
	input  processor.Input
	body   string
	result processor.Result
}

func (p *recordingProcessor) ProcessAudio(_ context.Context, in processor.Input) processor.Result {
	p.calls++
	p.input = in
	data, _ := io.ReadAll(in.Body)
	p.body = string(data)
	return p.result
}

func newTestRouter(t *testing.T, proc processor.Processor, sum summarizer.Summarizer) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())
	cfg.Server.MaxUploadBytes = 1 << 20

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_requests_total"}))

	return New(cfg, proc, sum, reg, logger.Nop()).NewRouter()
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

type part struct {
	field, filename, contentType, value string
}

func multipartRequest(t *testing.T, path string, parts ...part) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		if p.filename == "" {
			require.NoError(t, mw.WriteField(p.field, p.value))
			continue
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="`+p.filename+`"`)
		h.Set("Content-Type", p.contentType)
		w, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = io.WriteString(w, p.value)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRootAndHealth(t *testing.T) {
	h := newTestRouter(t, &recordingProcessor{}, &mockSummarizer{})

	rec, body := do(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Audio Transcription Summary Service", "version": "1.0.0"}, body)

	rec, body = do(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "healthy", "service": "audio-summary-service"}, body)

	rec, _ = do(t, h, httptest.NewRequest(http.MethodGet, "/health/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateSummary(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		wantReq summarizer.Request
	}{
		{
			name: "snake case with trailing slash",
			path: "/generate-summary/",
			body: `{"text":"hello","system_prompt":"Be brief.","user_prompt":"Focus"}`,
			wantReq: summarizer.Request{Text: "hello", SystemPrompt: "Be brief.", UserPrompt: "Focus"},
		},
		{
			name:    "camel case aliases",
			path:    "/generate-summary",
			body:    `{"text":"hello","systemPrompt":"Be brief.","userPrompt":"Focus"}`,
			wantReq: summarizer.Request{Text: "hello", SystemPrompt: "Be brief.", UserPrompt: "Focus"},
		},
		{
			name:    "absent prompts use defaults",
			path:    "/generate-summary/",
			body:    `{"text":"hello"}`,
			wantReq: summarizer.Request{Text: "hello", SystemPrompt: config.DefaultSystemPrompt},
		},
		{
			name:    "explicit empty system prompt is kept",
			path:    "/generate-summary/",
			body:    `{"text":"hello","system_prompt":""}`,
			wantReq: summarizer.Request{Text: "hello", SystemPrompt: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := &mockSummarizer{}
			sum.On("Summarize", mock.Anything, tt.wantReq).Return(summarizer.Succeeded("a summary")).Once()

			h := newTestRouter(t, &recordingProcessor{}, sum)
			rec, body := do(t, h, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, map[string]any{"summary": "a summary"}, body)
			sum.AssertExpectations(t)
		})
	}
}

func TestGenerateSummaryErrors(t *testing.T) {
	sum := &mockSummarizer{}
	sum.On("Summarize", mock.Anything, mock.MatchedBy(func(r summarizer.Request) bool { return r.Text == "  " })).
		Return(summarizer.Failed(summarizer.ErrEmptyText)).Once()
	sum.On("Summarize", mock.Anything, mock.MatchedBy(func(r summarizer.Request) bool { return r.Text == "raw" })).
		Return(summarizer.FailedRaw([]byte(`{"error":{"code":401}}`))).Once()

	h := newTestRouter(t, &recordingProcessor{}, sum)

	rec, body := do(t, h, httptest.NewRequest(http.MethodPost, "/generate-summary/", strings.NewReader(`{"text":"  "}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"error": "Transcription text cannot be empty"}, body)

	rec, body = do(t, h, httptest.NewRequest(http.MethodPost, "/generate-summary/", strings.NewReader(`{"text":"raw"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"error": map[string]any{"error": map[string]any{"code": float64(401)}}}, body)

	rec, body = do(t, h, httptest.NewRequest(http.MethodPost, "/generate-summary/", strings.NewReader(`{not json`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(body["error"].(string), "Invalid request body: "))

	sum.AssertExpectations(t)
}

func TestProcessAudio(t *testing.T) {
	proc := &recordingProcessor{result: processor.Result{Transcription: "t", Summary: "s", Success: true}}
	h := newTestRouter(t, proc, &mockSummarizer{})

	req := multipartRequest(t, "/process-audio/",
		part{field: "file", filename: "note.wav", contentType: "audio/wav", value: "RIFFDATA"},
		part{field: "systemPrompt", value: "Custom system"},
		part{field: "user_prompt", value: "Custom user"},
	)
	rec, body := do(t, h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"transcription": "t", "summary": "s", "success": true, "error": nil}, body)

	require.Equal(t, 1, proc.calls)
	assert.Equal(t, "note.wav", proc.input.Filename)
	assert.Equal(t, "audio/wav", proc.input.ContentType)
	assert.Equal(t, "Custom system", proc.input.SystemPrompt)
	assert.Equal(t, "Custom user", proc.input.UserPrompt)
	assert.Equal(t, "RIFFDATA", proc.body)
}

func TestProcessAudioDefaults(t *testing.T) {
	proc := &recordingProcessor{result: processor.Failed(processor.ErrInvalidUpload)}
	h := newTestRouter(t, proc, &mockSummarizer{})

	req := multipartRequest(t, "/process-audio",
		part{field: "file", filename: "notes.txt", contentType: "text/plain", value: "hello"},
	)
	rec, body := do(t, h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please upload a valid audio file", body["error"])
	assert.Equal(t, config.DefaultSystemPrompt, proc.input.SystemPrompt)
	assert.Equal(t, "", proc.input.UserPrompt)
}

func TestProcessAudioInvalidUploads(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{
			name: "missing file part",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/process-audio/", part{field: "system_prompt", value: "x"})
			},
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/process-audio/", strings.NewReader(`{"file":"x"}`))
			},
		},
		{
			name: "too large",
			req: func(t *testing.T) *http.Request {
				big := strings.Repeat("a", 2<<20)
				return multipartRequest(t, "/process-audio/",
					part{field: "file", filename: "big.wav", contentType: "audio/wav", value: big})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &recordingProcessor{}
			h := newTestRouter(t, proc, &mockSummarizer{})

			rec, body := do(t, h, tt.req(t))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, map[string]any{
				"transcription": "",
				"summary":       "",
				"success":       false,
				"error":         "Please upload a valid audio file",
			}, body)
			assert.Zero(t, proc.calls)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t, &recordingProcessor{}, &mockSummarizer{})

	req := httptest.NewRequest(http.MethodOptions, "/process-audio/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, &recordingProcessor{}, &mockSummarizer{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_requests_total")
}

func TestRecovererKeepsServerAlive(t *testing.T) {
	h := newTestRouter(t, &recordingProcessor{}, panickingSummarizer{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-summary/", strings.NewReader(`{"text":"x"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type panickingSummarizer struct{}

func (panickingSummarizer) Summarize(context.Context, summarizer.Request) summarizer.Result {
	panic("boom")
}
