// Package config loads runtime settings from the environment. Command-line
// flags registered by main override these values.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// SelectionParam is the query parameter naming the asset to show.
const SelectionParam = "anim"

// Config is the full runtime configuration.
type Config struct {
	// Platform is the host profile: android, ios or desktop.
	Platform string `env:"ARPLACE_PLATFORM" envDefault:"android"`
	// Query is the hosting page's query string, e.g. "anim=reno".
	Query    string `env:"ARPLACE_QUERY"`
	AssetDir string `env:"ARPLACE_ASSET_DIR" envDefault:"src"`
	LogLevel string `env:"ARPLACE_LOG_LEVEL" envDefault:"info"`

	Headless bool   `env:"ARPLACE_HEADLESS"`
	Hz       int    `env:"ARPLACE_HZ" envDefault:"60"`
	Ticks    uint64 `env:"ARPLACE_TICKS"`

	// AutoAR enters the immersive session on the first frame.
	AutoAR bool `env:"ARPLACE_AUTO_AR"`
	// TapEvery injects a scripted tap every N frames in headless mode.
	TapEvery int `env:"ARPLACE_TAP_EVERY"`

	HitTestLatency time.Duration `env:"ARPLACE_HITTEST_LATENCY" envDefault:"50ms"`
	FailHitTest    bool          `env:"ARPLACE_HITTEST_FAIL"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the environment-derived configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SelectionFromQuery extracts the asset selection from a query string.
// A malformed query yields an empty selection.
func SelectionFromQuery(raw string) string {
	vals, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return ""
	}
	return vals.Get(SelectionParam)
}
