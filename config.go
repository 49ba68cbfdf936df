package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

// Config is read from the environment. A .env file in the working
// directory is loaded first.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`
	ContentFile     string        `env:"CONTENT_FILE"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig parses the process environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return Config{}, fmt.Errorf("parse env: PORT must not be empty")
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("parse env: unknown GIN_MODE %q", cfg.GinMode)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// newLogger builds the process logger. Unknown levels fall back to info and
// are reported through the returned bool.
func newLogger(w io.Writer, level string) (*slog.Logger, bool) {
	var lv slog.Level
	ok := true
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		lv = slog.LevelInfo
		ok = false
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})
	return slog.New(h), ok
}
