package webui

import (
	"bytes"
	_ "embed"
	"html/template"
	"strconv"
	"sync"

	"gemma-demo-webui/internal/synth"
)

//go:embed assets/index.html
var indexTmpl string

const (
	tabImageText = "image-text"
	tabText      = "text"
)

type rangeView struct {
	Min   string
	Max   string
	Step  string
	Value string
}

type pageData struct {
	Title       string
	ModelName   string
	ModelStatus string
	Tab         string

	ImageText struct {
		Preview      template.URL
		Text         string
		SystemPrompt string
		MaxTokens    rangeView
		Temperature  rangeView
		Output       string
	}

	Text struct {
		Prompt    string
		MaxTokens rangeView
		Output    string
	}

	Error string
}

type pageRenderer struct {
	tmpl *template.Template
	once sync.Once
}

func newPageRenderer() *pageRenderer {
	return &pageRenderer{}
}

func (p *pageRenderer) render(data pageData) ([]byte, error) {
	p.once.Do(func() {
		p.tmpl = template.Must(template.New("index").Parse(indexTmpl))
	})

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newPageData() pageData {
	data := pageData{
		Title:       synth.ModelName() + " WebUI",
		ModelName:   synth.ModelName(),
		ModelStatus: synth.InitialModelStatus,
		Tab:         tabImageText,
	}
	data.ImageText.MaxTokens = maxTokensView(synth.MaxTokens.Default)
	data.ImageText.Temperature = temperatureView(synth.Temperature.Default)
	data.Text.MaxTokens = maxTokensView(synth.MaxTokens.Default)
	return data
}

func maxTokensView(v int) rangeView {
	r := synth.MaxTokens
	return rangeView{
		Min:   itoa(r.Min),
		Max:   itoa(r.Max),
		Step:  itoa(r.Step),
		Value: itoa(r.Clamp(v)),
	}
}

func temperatureView(v float64) rangeView {
	r := synth.Temperature
	return rangeView{
		Min:   ftoa(r.Min),
		Max:   ftoa(r.Max),
		Step:  ftoa(r.Step),
		Value: ftoa(r.Clamp(v)),
	}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
