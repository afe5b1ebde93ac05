package api

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/nguyentantai21042004/audio-summary-service/internal/processor"
	"github.com/nguyentantai21042004/audio-summary-service/internal/summarizer"
)

type summaryRequest struct {
	Text string `json:"text"`

	SystemPrompt    *string `json:"system_prompt"`
	SystemPromptAlt *string `json:"systemPrompt"`
	UserPrompt      *string `json:"user_prompt"`
	UserPromptAlt   *string `json:"userPrompt"`
}

func (api *API) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"message": serviceMessage,
		"version": Version,
	})
}

func (api *API) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

func (api *API) generateSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.logger.Warn(r.Context(), "Undecodable summary request: %v", err)
		writeJSON(w, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}

	result := api.summarizer.Summarize(r.Context(), summarizer.Request{
		Text:         req.Text,
		SystemPrompt: firstSet(api.cfg.Summarizer.SystemPrompt, req.SystemPrompt, req.SystemPromptAlt),
		UserPrompt:   firstSet("", req.UserPrompt, req.UserPromptAlt),
	})

	writeJSON(w, result)
}

func (api *API) processAudio(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, api.cfg.Server.MaxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		api.logger.Warn(r.Context(), "Unreadable upload: %v", err)
		writeJSON(w, processor.Failed(processor.ErrInvalidUpload))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		api.logger.Warn(r.Context(), "Upload without file part: %v", err)
		writeJSON(w, processor.Failed(processor.ErrInvalidUpload))
		return
	}
	defer file.Close()

	form := r.MultipartForm
	result := api.processor.ProcessAudio(r.Context(), processor.Input{
		Body:         file,
		Filename:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		SystemPrompt: firstSet(api.cfg.Summarizer.SystemPrompt, formValue(form, "system_prompt"), formValue(form, "systemPrompt")),
		UserPrompt:   firstSet("", formValue(form, "user_prompt"), formValue(form, "userPrompt")),
	})

	writeJSON(w, result)
}

// firstSet returns the first non-nil value, or def when none was sent.
// An explicitly empty value is kept.
func firstSet(def string, values ...*string) string {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return def
}

func formValue(form *multipart.Form, key string) *string {
	if vs, ok := form.Value[key]; ok && len(vs) > 0 {
		return &vs[0]
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
