package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/htmltree"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Document errors.
	ErrTitleNotFound = markdown.ErrTitleNotFound
	ErrStructural    = htmltree.ErrStructural

	// Template errors.
	ErrInvalidTemplate  = pipeline.ErrInvalidTemplate
	ErrTemplateNotFound = assets.ErrTemplateNotFound

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
	ErrInvalidAssetPath = assets.ErrInvalidAssetPath

	// Output errors.
	ErrInvalidBasePath = pipeline.ErrInvalidBasePath
	ErrHighlight       = pipeline.ErrHighlight
	ErrUnknownStyle    = pipeline.ErrUnknownStyle
)
