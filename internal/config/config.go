package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const DefaultWebAddr = "127.0.0.1:7860"

type Config struct {
	WebAddr  string
	LogLevel string
	Debug    bool

	ExcerptLength  int
	MaxUploadBytes int64
	RequestTimeout time.Duration

	PreferIPv4  bool
	HTTPTimeout time.Duration

	// FetchProxy is empty unless FETCH_PROXY is set; the manifest supplies
	// the default proxy.
	FetchProxy    string
	FetchManifest string

	TelegramToken string
	MaxConcurrent int
}

func Load() (Config, error) {
	cfg := Config{
		WebAddr:        strings.TrimSpace(getEnv("WEB_ADDR", DefaultWebAddr)),
		LogLevel:       strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info"))),
		Debug:          getEnvBool("DEBUG", false),
		ExcerptLength:  getEnvInt("EXCERPT_LENGTH", 50),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 25)) << 20,
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		PreferIPv4:     getEnvBool("PREFER_IPV4", true),
		HTTPTimeout:    time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		FetchProxy:     strings.TrimSpace(os.Getenv("FETCH_PROXY")),
		FetchManifest:  strings.TrimSpace(getEnv("FETCH_MANIFEST", "images.yaml")),
		MaxConcurrent:  getEnvInt("MAX_CONCURRENT", 4),
	}

	cfg.TelegramToken = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))

	if cfg.FetchProxy != "" {
		if _, err := url.Parse(cfg.FetchProxy); err != nil {
			return Config{}, fmt.Errorf("FETCH_PROXY: %w", err)
		}
	}

	if cfg.ExcerptLength < 1 {
		cfg.ExcerptLength = 50
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 25 << 20
	}
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	return cfg, nil
}

// RequireTelegram validates the settings only the bot front end needs.
func (c Config) RequireTelegram() error {
	if c.TelegramToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
