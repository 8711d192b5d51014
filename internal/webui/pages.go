package webui

import (
	"errors"
	"html/template"
	"net/http"

	"gemma-demo-webui/internal/synth"
)

func (ui *Interface) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ui.writePage(w, http.StatusOK, newPageData())
}

func (ui *Interface) handleLoadPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data := newPageData()
	data.ModelStatus = synth.ModelStatus()
	ui.writePage(w, http.StatusOK, data)
}

func (ui *Interface) handleImageTextPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := newPageData()
	data.Tab = tabImageText

	form, err := ui.readImageTextForm(w, r)
	if err != nil {
		data.Error = formErrorMessage(err)
		ui.writePage(w, formErrorStatus(err), data)
		return
	}

	resp := ui.synth.Respond(form.request())
	ui.logger.Debug("image-text response", "template", resp.Template, "has_image", form.Image != nil)

	data.ModelStatus = form.ModelStatus
	data.ImageText.Preview = template.URL(dataURL(form.Image))
	data.ImageText.Text = form.Text
	data.ImageText.SystemPrompt = form.SystemPrompt
	data.ImageText.MaxTokens = maxTokensView(form.MaxTokens)
	data.ImageText.Temperature = temperatureView(form.Temperature)
	data.ImageText.Output = resp.Text
	ui.writePage(w, http.StatusOK, data)
}

func (ui *Interface) handleTextPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := newPageData()
	data.Tab = tabText

	form, err := ui.readTextForm(w, r)
	if err != nil {
		data.Error = formErrorMessage(err)
		ui.writePage(w, formErrorStatus(err), data)
		return
	}

	data.ModelStatus = form.ModelStatus
	data.Text.Prompt = form.Text
	data.Text.MaxTokens = maxTokensView(form.MaxTokens)
	data.Text.Output = synth.GenerateText(synth.TextFrom(form.Text), form.MaxTokens)
	ui.writePage(w, http.StatusOK, data)
}

func (ui *Interface) writePage(w http.ResponseWriter, status int, data pageData) {
	body, err := ui.page.render(data)
	if err != nil {
		ui.logger.Error("render page failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func formErrorStatus(err error) int {
	if errors.Is(err, errTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func formErrorMessage(err error) string {
	if errors.Is(err, errTooLarge) {
		return "上传的文件过大。"
	}
	return "无法解析表单数据。"
}
