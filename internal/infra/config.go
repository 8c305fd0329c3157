package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SynthesisModeSync  = "sync"
	SynthesisModeAsync = "async"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	LogLevel         string
	Port             string
	StoragePath      string
	VideoPipeline    string
	FFmpegPath       string
	SynthesisMode    string
	SynthesisWorkers int
	SynthesisQueue   int
	DefaultLocale    string
	CORSOrigins      []string
	GeoIPDBPath      string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		Port:             getEnv("PORT", "5000"),
		StoragePath:      getEnv("STORAGE_PATH", "videos"),
		VideoPipeline:    strings.ToLower(getEnv("VIDEO_PIPELINE", "frames")),
		FFmpegPath:       getEnv("FFMPEG_PATH", "ffmpeg"),
		SynthesisMode:    strings.ToLower(getEnv("SYNTHESIS_MODE", SynthesisModeSync)),
		SynthesisWorkers: getEnvInt("SYNTHESIS_WORKERS", 2),
		SynthesisQueue:   getEnvInt("SYNTHESIS_QUEUE", 32),
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "ar"),
		CORSOrigins:      splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 0)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	switch cfg.VideoPipeline {
	case "frames", "placeholder":
	default:
		return nil, fmt.Errorf("VIDEO_PIPELINE must be frames or placeholder, got %q", cfg.VideoPipeline)
	}

	switch cfg.SynthesisMode {
	case SynthesisModeSync, SynthesisModeAsync:
	default:
		return nil, fmt.Errorf("SYNTHESIS_MODE must be sync or async, got %q", cfg.SynthesisMode)
	}

	if cfg.SynthesisWorkers <= 0 {
		return nil, fmt.Errorf("SYNTHESIS_WORKERS must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
