package mdsite

import (
	"github.com/alnah/go-mdsite/internal/assets"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the option values applied by NewConverter.
type converterConfig struct {
	template       string // inline template content, takes precedence over templateName
	templateName   string
	assetPath      string
	style          string
	basePath       string
	highlightStyle string // empty disables highlighting
}

func defaultConfig() converterConfig {
	return converterConfig{
		templateName: assets.DefaultTemplateName,
		style:        assets.DefaultStyleName,
	}
}

// WithTemplate uses content as the page template instead of a named one.
// The template must contain {{ Content }}.
func WithTemplate(content string) Option {
	return func(c *Converter) {
		c.cfg.template = content
	}
}

// WithTemplateName selects a page template by name (without .html).
// Panics if name is empty (programmer error, similar to time.NewTicker).
func WithTemplateName(name string) Option {
	if name == "" {
		panic("mdsite: WithTemplateName name must not be empty")
	}
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath loads templates and styles from dir before falling back to
// the built-in ones. See package internal/assets for the layout.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithStyle selects the stylesheet inlined into every page by name.
// An empty name disables the stylesheet.
func WithStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.style = name
	}
}

// WithBasePath serves the site from a sub-path such as "/docs".
// Root-relative href and src attributes are prefixed with it.
func WithBasePath(path string) Option {
	return func(c *Converter) {
		c.cfg.basePath = path
	}
}

// WithHighlightStyle enables syntax highlighting of code blocks with the
// named chroma style. An empty name disables highlighting.
func WithHighlightStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = style
	}
}
