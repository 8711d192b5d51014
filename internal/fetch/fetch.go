// Package fetch downloads a fixed list of images to local files. Every URL is
// fetched once, in order; a failed entry is reported and skipped.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gemma-demo-webui/internal/logging"
)

type Options struct {
	HTTPClient *http.Client
	OutDir     string
	Timeout    time.Duration
	// Out receives one status line per entry.
	Out    io.Writer
	Logger *slog.Logger
}

type Fetcher struct {
	httpClient *http.Client
	outDir     string
	timeout    time.Duration
	out        io.Writer
	logger     *slog.Logger
}

type Result struct {
	Entry Entry
	Path  string
	Bytes int
	Err   error
}

type Report struct {
	Results []Result
}

func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

func (r Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

func New(opts Options) *Fetcher {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	outDir := strings.TrimSpace(opts.OutDir)
	if outDir == "" {
		outDir = DefaultOutDir
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &Fetcher{
		httpClient: httpClient,
		outDir:     outDir,
		timeout:    timeout,
		out:        out,
		logger:     logging.OrDiscard(opts.Logger),
	}
}

// Run downloads the entries sequentially. It only returns early when ctx is
// done; individual failures are recorded in the report.
func (f *Fetcher) Run(ctx context.Context, entries []Entry) Report {
	var report Report

	if err := os.MkdirAll(f.outDir, 0o755); err != nil {
		f.logger.Error("create output dir failed", "dir", f.outDir, "err", err)
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		path := f.destination(entry.Path)
		n, err := f.fetchOne(ctx, entry.URL, path)
		report.Results = append(report.Results, Result{Entry: entry, Path: path, Bytes: n, Err: err})

		if err != nil {
			fmt.Fprintln(f.out, "skip", path, err.Error())
			f.logger.Warn("image fetch failed", "url", entry.URL, "path", path, "err", err)
			continue
		}
		fmt.Fprintln(f.out, "ok:", path)
		f.logger.Info("image fetched", "url", entry.URL, "path", path, "bytes", n)
	}

	return report
}

func (f *Fetcher) destination(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	clean := filepath.Clean(path)
	// manifests written for the old layout already carry the directory prefix
	if strings.HasPrefix(clean, filepath.Clean(f.outDir)+string(filepath.Separator)) {
		return clean
	}
	return filepath.Join(f.outDir, clean)
}

func (f *Fetcher) fetchOne(ctx context.Context, url, path string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("http %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write file: %w", err)
	}

	return len(data), nil
}
