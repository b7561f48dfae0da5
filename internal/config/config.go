package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Limits on configurable values.
const (
	MaxPathLength     = 4096
	MaxNameLength     = 100
	MaxBasePathLength = 512
	MaxWorkers        = 64
)

// Defaults applied by DefaultConfig.
const (
	DefaultContentDir     = "content"
	DefaultOutputDir      = "public"
	DefaultTemplateName   = "default"
	DefaultStyleName      = "default"
	DefaultHighlightStyle = "github"
)

// Config holds all configuration for a site build.
type Config struct {
	Content   ContentConfig   `yaml:"content"`
	Static    StaticConfig    `yaml:"static"`
	Output    OutputConfig    `yaml:"output"`
	Template  TemplateConfig  `yaml:"template"`
	Site      SiteConfig      `yaml:"site"`
	Highlight HighlightConfig `yaml:"highlight"`
	Build     BuildConfig     `yaml:"build"`
}

// ContentConfig locates the markdown pages.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// StaticConfig locates files copied verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Empty = no static files
}

// OutputConfig defines where the site is written.
type OutputConfig struct {
	Dir   string `yaml:"dir"`
	Clean bool   `yaml:"clean"` // Remove previous output before building
}

// TemplateConfig selects the page template.
type TemplateConfig struct {
	Name      string `yaml:"name"`      // Template name without extension
	Style     string `yaml:"style"`     // Stylesheet name without extension, empty = none
	AssetPath string `yaml:"assetPath"` // Empty = embedded assets only
}

// SiteConfig describes how the site is served.
type SiteConfig struct {
	BasePath string `yaml:"basePath"` // Sub-path the site is served from, e.g. "/docs"
}

// HighlightConfig controls syntax highlighting of code blocks.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name
}

// BuildConfig tunes the build.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = automatic
}

// Validate checks values that would make a build fail late.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct {
		field string
		value string
	}{
		{"content.dir", c.Content.Dir},
		{"static.dir", c.Static.Dir},
		{"output.dir", c.Output.Dir},
		{"template.assetPath", c.Template.AssetPath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("template.name", c.Template.Name, MaxNameLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Template.Name, `/\`) {
		return fmt.Errorf("%w: template.name %q must not contain path separators", ErrInvalidValue, c.Template.Name)
	}

	if err := validateFieldLength("template.style", c.Template.Style, MaxNameLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Template.Style, `/\`) {
		return fmt.Errorf("%w: template.style %q must not contain path separators", ErrInvalidValue, c.Template.Style)
	}

	if err := validateFieldLength("site.basePath", c.Site.BasePath, MaxBasePathLength); err != nil {
		return err
	}
	if c.Site.BasePath != "" && !strings.HasPrefix(c.Site.BasePath, "/") {
		return fmt.Errorf("%w: site.basePath %q must start with /", ErrInvalidValue, c.Site.BasePath)
	}

	if c.Highlight.Enabled && c.Highlight.Style == "" {
		return fmt.Errorf("%w: highlight.style is required when highlighting is enabled", ErrInvalidValue)
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxNameLength); err != nil {
		return err
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Content:   ContentConfig{Dir: DefaultContentDir},
		Static:    StaticConfig{Dir: ""},
		Output:    OutputConfig{Dir: DefaultOutputDir, Clean: true},
		Template:  TemplateConfig{Name: DefaultTemplateName, Style: DefaultStyleName},
		Site:      SiteConfig{BasePath: ""},
		Highlight: HighlightConfig{Enabled: false, Style: DefaultHighlightStyle},
		Build:     BuildConfig{Workers: 0},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	if err := yamlutil.Decode(f, cfg, yamlutil.DefaultMaxSize); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdsite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdsite", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
