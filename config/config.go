// Package config loads settings for cmd/deco.
//
// Values come from defaults, then an optional YAML file, then environment
// variables (DECO_*), each layer overriding the previous one.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls which demonstrations run and how the recipes behave.
type Config struct {
	// Examples are run by "deco run" when no names are given.
	Examples []string `yaml:"examples"`

	// Decorators overrides the decorator names (outermost first) per example.
	Decorators map[string][]string `yaml:"decorators"`

	SlowDownMs      int    `yaml:"slowdown_ms"`
	CountdownFrom   int    `yaml:"countdown_from"`
	WasteIterations int    `yaml:"waste_iterations"`
	LogLevel        string `yaml:"log_level"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Examples:        []string{"middle", "plus-one", "say-hi", "args"},
		SlowDownMs:      1000,
		CountdownFrom:   3,
		WasteIterations: 1000,
		LogLevel:        "info",
	}
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if cfg, err = Parse(data); err != nil {
			return Config{}, err
		}
	}
	cfg = applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default. Keys absent from data keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

// Validate rejects negative durations and counts and unknown log levels.
func (c Config) Validate() error {
	if c.SlowDownMs < 0 {
		return fmt.Errorf("%w: slowdown_ms must be >= 0", ErrInvalid)
	}
	if c.CountdownFrom < 0 {
		return fmt.Errorf("%w: countdown_from must be >= 0", ErrInvalid)
	}
	if c.WasteIterations < 0 {
		return fmt.Errorf("%w: waste_iterations must be >= 0", ErrInvalid)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// SlowDown returns the delay used by the slow-down decorator.
func (c Config) SlowDown() time.Duration {
	return time.Duration(c.SlowDownMs) * time.Millisecond
}

func applyEnv(cfg Config) Config {
	if v := getenv("DECO_EXAMPLES", ""); v != "" {
		cfg.Examples = splitList(v)
	}
	cfg.SlowDownMs = getenvInt("DECO_SLOWDOWN_MS", cfg.SlowDownMs)
	cfg.CountdownFrom = getenvInt("DECO_COUNTDOWN_FROM", cfg.CountdownFrom)
	cfg.WasteIterations = getenvInt("DECO_WASTE_ITERATIONS", cfg.WasteIterations)
	cfg.LogLevel = getenv("DECO_LOG_LEVEL", cfg.LogLevel)
	return cfg
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
