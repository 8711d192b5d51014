// Package webui serves the demo's form pages and JSON API on top of a
// synth.Synthesizer.
package webui

import (
	"log/slog"
	"net/http"
	"time"

	"gemma-demo-webui/internal/logging"
	"gemma-demo-webui/internal/synth"
)

const defaultMaxUploadBytes = 25 << 20

type Options struct {
	Synthesizer    *synth.Synthesizer
	Logger         *slog.Logger
	MaxUploadBytes int64
}

// Interface is the wired front end. Build it once at process start.
type Interface struct {
	synth          *synth.Synthesizer
	logger         *slog.Logger
	maxUploadBytes int64
	page           *pageRenderer
	handler        http.Handler
}

func Build(opts Options) *Interface {
	s := opts.Synthesizer
	if s == nil {
		s = synth.New(synth.Options{})
	}

	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}

	ui := &Interface{
		synth:          s,
		logger:         logging.OrDiscard(opts.Logger),
		maxUploadBytes: maxUpload,
		page:           newPageRenderer(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ui.handleIndex)
	mux.HandleFunc("/load", ui.handleLoadPage)
	mux.HandleFunc("/image-text", ui.handleImageTextPage)
	mux.HandleFunc("/text", ui.handleTextPage)

	mux.HandleFunc("/api/load", ui.handleLoad)
	mux.HandleFunc("/api/image-text", ui.handleImageText)
	mux.HandleFunc("/api/text", ui.handleText)

	ui.handler = withLogging(mux, ui.logger)
	return ui
}

func (ui *Interface) Handler() http.Handler {
	return ui.handler
}

func withLogging(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("http", "method", r.Method, "path", r.URL.Path, "dur_ms", time.Since(start).Milliseconds())
	})
}
