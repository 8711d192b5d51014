package fetch

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProxy   = "http://127.0.0.1:18081"
	DefaultOutDir  = "images"
	DefaultTimeout = 30 * time.Second
)

type Entry struct {
	URL  string `yaml:"url"`
	Path string `yaml:"path"`
}

type Manifest struct {
	Proxy   string        `yaml:"proxy"`
	OutDir  string        `yaml:"out_dir"`
	Timeout time.Duration `yaml:"timeout"`
	Entries []Entry       `yaml:"images"`
}

// DefaultManifest lists the model page images shipped with the demo.
func DefaultManifest() Manifest {
	return Manifest{
		Proxy:   DefaultProxy,
		OutDir:  DefaultOutDir,
		Timeout: DefaultTimeout,
		Entries: []Entry{
			{
				URL:  "https://cdn-thumbnails.hf-mirror.com/social-thumbnails/models/google/gemma-3-27b-it.png",
				Path: "gemma-3-27b-it_model_page.png",
			},
		},
	}
}

// LoadManifest reads a YAML manifest. A missing file yields DefaultManifest;
// fields left empty in the file take their default values.
func LoadManifest(file string) (Manifest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultManifest(), nil
		}
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest %s: %w", file, err)
	}

	def := DefaultManifest()
	m.Proxy = lo.Ternary(strings.TrimSpace(m.Proxy) != "", strings.TrimSpace(m.Proxy), def.Proxy)
	m.OutDir = lo.Ternary(strings.TrimSpace(m.OutDir) != "", strings.TrimSpace(m.OutDir), def.OutDir)
	m.Timeout = lo.Ternary(m.Timeout > 0, m.Timeout, def.Timeout)
	m.Entries = CleanEntries(m.Entries)

	return m, nil
}

// CleanEntries trims entries and drops those without a URL. An entry without
// a path is saved under the last segment of its URL.
func CleanEntries(entries []Entry) []Entry {
	entries = lo.Map(entries, func(e Entry, _ int) Entry {
		e.URL = strings.TrimSpace(e.URL)
		e.Path = strings.TrimSpace(e.Path)
		if e.Path == "" {
			e.Path = lastSegment(e.URL)
		}
		return e
	})
	return lo.Filter(entries, func(e Entry, _ int) bool {
		return e.URL != "" && e.Path != ""
	})
}

func lastSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
