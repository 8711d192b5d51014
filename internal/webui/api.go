package webui

import (
	"encoding/json"
	"net/http"

	"github.com/samber/lo"

	"gemma-demo-webui/internal/synth"
)

type apiError struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type generateResponse struct {
	Text     string         `json:"text"`
	Template synth.Template `json:"template"`
}

func (ui *Interface) handleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: synth.ModelStatus()})
}

func (ui *Interface) handleImageText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
		return
	}

	form, err := ui.readImageTextForm(w, r)
	if err != nil {
		writeJSON(w, formErrorStatus(err), apiError{Error: err.Error()})
		return
	}

	resp := ui.synth.Respond(form.request())
	writeJSON(w, http.StatusOK, generateResponse{Text: resp.Text, Template: resp.Template})
}

func (ui *Interface) handleText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
		return
	}

	form, err := ui.readTextForm(w, r)
	if err != nil {
		writeJSON(w, formErrorStatus(err), apiError{Error: err.Error()})
		return
	}

	text := synth.TextFrom(form.Text)
	tmpl := lo.Ternary(text.IsPresent(), synth.TemplateTextGeneration, synth.TemplateNeedInput)
	writeJSON(w, http.StatusOK, generateResponse{Text: synth.GenerateText(text, form.MaxTokens), Template: tmpl})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
