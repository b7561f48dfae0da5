package markdown

import (
	"errors"
	"strings"
)

// ErrTitleNotFound indicates a document without a "# " heading line.
var ErrTitleNotFound = errors.New("no level-1 heading found")

// ExtractTitle returns the text of the first line starting with "# ".
func ExtractTitle(document string) (string, error) {
	for _, line := range strings.Split(document, "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title), nil
		}
	}
	return "", ErrTitleNotFound
}
