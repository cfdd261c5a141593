// Package config assembles runtime settings from the environment plus an
// optional YAML file. The file carries the static classification tables the
// deployment may want to tune (alias lists, OIAT band thresholds); ports and
// paths stay env-driven.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"incident-insights-go/internal/oiat"
)

type Config struct {
	Addr        string
	DatasetPath string
	FeedURL     string
	FeedTimeout time.Duration
	GeoLimit    int

	// Aliases overrides per-code keyword lists; empty means built-ins.
	Aliases map[string][]string
	OIAT    oiat.Thresholds
}

type fileConfig struct {
	Aliases map[string][]string `yaml:"aliases"`
	OIAT    oiat.Thresholds     `yaml:"oiat"`
}

// Load reads env vars (PORT, DATASET_PATH, FEED_URL, FEED_TIMEOUT_SEC,
// GEO_LIMIT, CONFIG_FILE) and merges the YAML file when one is configured.
func Load() (Config, error) {
	cfg := Config{
		Addr:        ":" + EnvOr("PORT", "8080"),
		DatasetPath: EnvOr("DATASET_PATH", "events.json"),
		FeedURL:     os.Getenv("FEED_URL"),
		FeedTimeout: time.Duration(envInt("FEED_TIMEOUT_SEC", 10)) * time.Second,
		GeoLimit:    envInt("GEO_LIMIT", 10),
		OIAT:        oiat.DefaultThresholds,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Aliases = fc.Aliases
		if fc.OIAT != (oiat.Thresholds{}) {
			if err := fc.OIAT.Validate(); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
			cfg.OIAT = fc.OIAT
		}
	}
	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// EnvOr returns the env value for k, or def when unset or empty.
func EnvOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
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
