package main

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// Config is read from the environment; a .env file is picked up by the
// godotenv autoload import in main.go.
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	GinMode       string        `env:"GIN_MODE"`
	ContentFile   string        `env:"CONTENT_FILE"`
	PageTTL       time.Duration `env:"PAGE_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	TemplateGlob  string        `env:"TEMPLATE_GLOB" envDefault:"templates/*"`
	StaticDir     string        `env:"STATIC_DIR" envDefault:"./static"`
	ImageDir      string        `env:"IMAGE_DIR" envDefault:"./images"`
	ResumeFile    string        `env:"RESUME_FILE" envDefault:"./static/resume.pdf"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PageTTL <= 0 {
		return cfg, fmt.Errorf("PAGE_TTL must be positive, got %s", cfg.PageTTL)
	}
	if cfg.SweepInterval <= 0 {
		return cfg, fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", cfg.SweepInterval)
	}
	return cfg, nil
}

func newLogger(cfg Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "portfolio",
		ReportTimestamp: true,
	}), nil
}
