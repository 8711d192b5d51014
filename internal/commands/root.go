// Package commands implements the fetchimages command line using Cobra.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gemma-demo-webui/internal/config"
	"gemma-demo-webui/internal/fetch"
	"gemma-demo-webui/internal/httpclient"
	"gemma-demo-webui/internal/logging"
)

type flags struct {
	manifest string
	proxy    string
	outDir   string
	timeout  time.Duration
	noProxy  bool
}

// NewRootCmd builds the command. stdout receives the per-image status lines.
func NewRootCmd(stdout io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "fetchimages",
		Short: "Download the model page images",
		Long: `fetchimages downloads every image listed in the manifest, one at a time,
through the configured proxy. Failures are reported and skipped.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, stdout)
		},
	}

	cmd.Flags().StringVar(&f.manifest, "manifest", "", "YAML manifest of images (default $FETCH_MANIFEST or images.yaml)")
	cmd.Flags().StringVar(&f.proxy, "proxy", "", "proxy URL (default from manifest, then $FETCH_PROXY)")
	cmd.Flags().StringVar(&f.outDir, "out", "", "output directory (default from manifest)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "per-image timeout (default from manifest)")
	cmd.Flags().BoolVar(&f.noProxy, "no-proxy", false, "connect directly instead of through a proxy")

	return cmd
}

// Execute runs the root command against os.Stdout until it finishes or the
// process is interrupted.
func Execute() error {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd(os.Stdout).ExecuteContext(ctx)
}

func run(cmd *cobra.Command, f flags, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	path := f.manifest
	if path == "" {
		path = cfg.FetchManifest
	}
	manifest, err := fetch.LoadManifest(path)
	if err != nil {
		return err
	}

	proxy := resolveProxy(f, cfg.FetchProxy, manifest.Proxy)
	if f.outDir != "" {
		manifest.OutDir = f.outDir
	}
	if f.timeout > 0 {
		manifest.Timeout = f.timeout
	}

	httpClient, err := httpclient.New(httpclient.Options{
		PreferIPv4: cfg.PreferIPv4,
		Timeout:    manifest.Timeout,
		ProxyURL:   proxy,
	})
	if err != nil {
		return fmt.Errorf("proxy %q: %w", proxy, err)
	}

	fetcher := fetch.New(fetch.Options{
		HTTPClient: httpClient,
		OutDir:     manifest.OutDir,
		Timeout:    manifest.Timeout,
		Out:        stdout,
		Logger:     logger,
	})

	report := fetcher.Run(cmd.Context(), manifest.Entries)
	logger.Info("fetch finished", "manifest", path, "proxy", proxy, "ok", report.Succeeded(), "skipped", report.Failed())
	return nil
}

// resolveProxy picks the proxy by precedence: --no-proxy, --proxy,
// FETCH_PROXY, then the manifest.
func resolveProxy(f flags, envProxy, manifestProxy string) string {
	switch {
	case f.noProxy:
		return ""
	case f.proxy != "":
		return f.proxy
	case envProxy != "":
		return envProxy
	}
	return manifestProxy
}
