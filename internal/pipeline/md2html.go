package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite/internal/markdown"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Page is a converted document before templating.
type Page struct {
	Title    string
	Body     string // rendered root <div>
	Warnings []markdown.Warning
}

// HTMLConverter abstracts markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (*Page, error)
}

// MarkdownConverter converts markdown with the internal markdown package.
type MarkdownConverter struct{}

// NewMarkdownConverter creates a MarkdownConverter.
func NewMarkdownConverter() *MarkdownConverter {
	return &MarkdownConverter{}
}

// ToHTML extracts the title and renders the body of a document.
// A missing title fails the page with markdown.ErrTitleNotFound.
func (c *MarkdownConverter) ToHTML(ctx context.Context, content string) (*Page, error) {
	// Fast path: the core is bounded, so a single check is enough
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title, err := markdown.ExtractTitle(content)
	if err != nil {
		return nil, err
	}

	root, warnings := markdown.ToHTMLNode(content)
	body, err := root.Render()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}

	return &Page{Title: title, Body: body, Warnings: warnings}, nil
}
