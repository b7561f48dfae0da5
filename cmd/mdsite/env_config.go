package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
)

const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSITE_CONFIG: config file name or path
	ContentDir string // MDSITE_CONTENT_DIR: markdown source directory
	OutputDir  string // MDSITE_OUTPUT_DIR: site output directory
	BasePath   string // MDSITE_BASE_PATH: sub-path the site is served from
	Workers    int    // MDSITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MDSITE_* environment variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_BASE_PATH":   true,
	"MDSITE_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed worker counts are ignored rather than reported.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDSITE_CONFIG"),
		ContentDir: getenv("MDSITE_CONTENT_DIR"),
		OutputDir:  getenv("MDSITE_OUTPUT_DIR"),
		BasePath:   getenv("MDSITE_BASE_PATH"),
	}

	if workers := getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for each unrecognized MDSITE_* variable.
// Catches typos like MDSITE_OUTPUT instead of MDSITE_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values over the loaded config.
// Precedence is: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeBuildFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.BasePath != "" {
		cfg.Site.BasePath = env.BasePath
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
