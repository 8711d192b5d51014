package webui

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"gemma-demo-webui/internal/synth"
)

var errTooLarge = errors.New("upload too large")

type imageTextForm struct {
	Image        *synth.Image
	Text         string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
	ModelStatus  string
}

func (f imageTextForm) request() synth.Request {
	return synth.Request{
		Image:        f.Image,
		Text:         synth.TextFrom(f.Text),
		SystemPrompt: synth.TextFrom(f.SystemPrompt),
		MaxTokens:    f.MaxTokens,
		Temperature:  f.Temperature,
	}
}

type textForm struct {
	Text        string
	MaxTokens   int
	ModelStatus string
}

// parseForm accepts multipart and urlencoded bodies alike.
func (ui *Interface) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, ui.maxUploadBytes)

	var err error
	if isMultipart(r) {
		err = r.ParseMultipartForm(ui.maxUploadBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errTooLarge
		}
		return fmt.Errorf("parse form: %w", err)
	}
	return nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func (ui *Interface) readImageTextForm(w http.ResponseWriter, r *http.Request) (imageTextForm, error) {
	if err := ui.parseForm(w, r); err != nil {
		return imageTextForm{}, err
	}

	img, err := readImage(r)
	if err != nil {
		return imageTextForm{}, err
	}

	return imageTextForm{
		Image:        img,
		Text:         r.FormValue("text"),
		SystemPrompt: r.FormValue("system_prompt"),
		MaxTokens:    parseMaxTokens(r.FormValue("max_tokens")),
		Temperature:  parseTemperature(r.FormValue("temperature")),
		ModelStatus:  parseModelStatus(r.FormValue("model_status")),
	}, nil
}

func (ui *Interface) readTextForm(w http.ResponseWriter, r *http.Request) (textForm, error) {
	if err := ui.parseForm(w, r); err != nil {
		return textForm{}, err
	}
	return textForm{
		Text:        r.FormValue("text"),
		MaxTokens:   parseMaxTokens(r.FormValue("max_tokens")),
		ModelStatus: parseModelStatus(r.FormValue("model_status")),
	}, nil
}

// readImage returns nil when no file, or an empty one, was uploaded.
func readImage(r *http.Request) (*synth.Image, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &synth.Image{
		Data:     data,
		MimeType: detectMimeType(header.Header.Get("Content-Type"), data),
	}, nil
}

func detectMimeType(declared string, data []byte) string {
	mimeType := strings.TrimSpace(declared)
	if strings.Contains(mimeType, ";") {
		mimeType = strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])
	}
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if strings.Contains(mimeType, ";") {
		mimeType = strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])
	}
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = "image/jpeg"
	}
	return mimeType
}

func dataURL(img *synth.Image) string {
	if img == nil || !strings.HasPrefix(img.MimeType, "image/") {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", img.MimeType, base64.StdEncoding.EncodeToString(img.Data))
}

func parseMaxTokens(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return synth.MaxTokens.Default
	}
	return synth.MaxTokens.Clamp(parsed)
}

func parseTemperature(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return synth.Temperature.Default
	}
	return synth.Temperature.Clamp(parsed)
}

// parseModelStatus keeps the status box across generate requests. Anything
// other than the ready status reads as not loaded.
func parseModelStatus(value string) string {
	if value == synth.ModelStatus() {
		return value
	}
	return synth.InitialModelStatus
}
