package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholders recognized in page templates.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrInvalidTemplate indicates a page template without a content placeholder.
var ErrInvalidTemplate = errors.New("invalid page template")

// PageTemplate substitutes the title and body into an HTML template.
type PageTemplate struct {
	content string
}

// NewPageTemplate validates content and returns a PageTemplate.
func NewPageTemplate(content string) (*PageTemplate, error) {
	if !strings.Contains(content, ContentPlaceholder) {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidTemplate, ContentPlaceholder)
	}
	return &PageTemplate{content: content}, nil
}

// Execute returns the template with every placeholder replaced.
// Values are inserted verbatim.
func (t *PageTemplate) Execute(title, body string) string {
	r := strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, body,
	)
	return r.Replace(t.content)
}
