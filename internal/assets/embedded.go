package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed styles/*.css templates/*.html
var embedded embed.FS

// EmbeddedLoader loads assets compiled into the binary.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a built-in stylesheet by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(kindStyles, name, ".css", ErrStyleNotFound)
}

// LoadTemplate loads a built-in page template by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(kindTemplates, name, ".html", ErrTemplateNotFound)
}

func (e *EmbeddedLoader) load(kind, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := embedded.ReadFile(path.Join(kind, name+ext))
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}

	return string(content), nil
}

// StyleNames lists the built-in stylesheets.
func StyleNames() []string {
	return embeddedNames(kindStyles, ".css")
}

// TemplateNames lists the built-in page templates.
func TemplateNames() []string {
	return embeddedNames(kindTemplates, ".html")
}

func embeddedNames(kind, ext string) []string {
	entries, err := fs.ReadDir(embedded, kind)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ext); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
