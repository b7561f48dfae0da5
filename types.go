package mdsite

import (
	"github.com/alnah/go-mdsite/internal/markdown"
)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Name     string // Page identifier used in error messages (optional)
}

// Result holds the outputs of a conversion.
type Result struct {
	Title    string    // Text of the first "# " line
	Body     string    // Rendered root element, before highlighting and templating
	HTML     []byte    // Complete page
	Warnings []Warning // Input recovered instead of rejected
}

// Warning describes a piece of input that was kept as plain text or dropped.
type Warning = markdown.Warning
