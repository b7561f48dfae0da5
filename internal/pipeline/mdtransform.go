package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of documents saved by some editors.
const byteOrderMark = "\uFEFF"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Whitespace-only lines count as blank lines
	whitespaceLines = regexp.MustCompile(`(?m)^[ \t]+$`)

	// Compress multiple blank lines to one
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor normalizes page sources before parsing.
type SourcePreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare markdown for parsing.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	content = clearWhitespaceLines(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// clearWhitespaceLines empties lines made only of spaces and tabs so that
// they separate blocks.
func clearWhitespaceLines(content string) string {
	return whitespaceLines.ReplaceAllString(content, "")
}

// compressBlankLines limits consecutive blank lines to one.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
