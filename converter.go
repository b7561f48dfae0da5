package mdsite

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.MarkdownConverter)(nil)
	_ pipeline.CodeHighlighter      = (*pipeline.ChromaHighlighter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter orchestrates the markdown-to-page pipeline.
// Create with NewConverter and call Convert for each document.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	highlighter   pipeline.CodeHighlighter // nil when highlighting is disabled
	cssInjector   pipeline.CSSInjector
	template      *pipeline.PageTemplate
	css           string
	basePath      string
}

// NewConverter creates a Converter with default configuration.
// Assets are loaded and validated once, so option errors surface here
// rather than on the first Convert.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           defaultConfig(),
		preprocessor:  &pipeline.SourcePreprocessor{},
		htmlConverter: pipeline.NewMarkdownConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, err
	}
	c.assetLoader = resolver

	if err := c.loadTemplate(); err != nil {
		return nil, err
	}

	if c.cfg.style != "" {
		css, err := c.assetLoader.LoadStyle(c.cfg.style)
		if err != nil {
			return nil, fmt.Errorf("loading style %q: %w", c.cfg.style, err)
		}
		c.css = css
	}

	if c.cfg.highlightStyle != "" && c.highlighter == nil {
		h, err := pipeline.NewChromaHighlighter(c.cfg.highlightStyle)
		if err != nil {
			return nil, err
		}
		highlightCSS, err := h.CSS()
		if err != nil {
			return nil, err
		}
		c.highlighter = h
		c.css += highlightCSS
	}

	c.basePath, err = pipeline.NormalizeBasePath(c.cfg.basePath)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// loadTemplate resolves the inline or named template and validates it.
func (c *Converter) loadTemplate() error {
	content := c.cfg.template
	if content == "" {
		var err error
		content, err = c.assetLoader.LoadTemplate(c.cfg.templateName)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", c.cfg.templateName, err)
		}
	}

	tmpl, err := pipeline.NewPageTemplate(content)
	if err != nil {
		return err
	}
	c.template = tmpl
	return nil
}

// Convert runs the full pipeline on one document.
// The context is checked between stages. Errors are prefixed with
// input.Name when it is set.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
		if err != nil && input.Name != "" {
			err = fmt.Errorf("%s: %w", input.Name, err)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	page, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, err
	}

	body := page.Body
	if c.highlighter != nil {
		body, err = c.highlighter.Highlight(body)
		if err != nil {
			return nil, err
		}
	}

	htmlContent := c.template.Execute(page.Title, body)
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, c.css)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err = pipeline.RewriteBasePath(htmlContent, c.basePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting base path: %w", err)
	}

	return &Result{
		Title:    page.Title,
		Body:     page.Body,
		HTML:     []byte(htmlContent),
		Warnings: page.Warnings,
	}, nil
}

// BasePath returns the normalized base path, "" for the site root.
func (c *Converter) BasePath() string {
	return c.basePath
}
