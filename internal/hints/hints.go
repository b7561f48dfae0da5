// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// maxListed bounds how many names a hint enumerates.
const maxListed = 12

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeClean returns hints when the output directory cannot be cleaned.
func ForUnsafeClean() string {
	return format("choose an output directory outside the content directory, or pass --no-clean")
}

// ForMissingTitle returns hints for pages without a title line.
func ForMissingTitle() string {
	return format(`start a line with "# " to give the page a title, e.g. "# Getting started"`)
}

// ForInvalidTemplate returns hints for templates without a content placeholder.
func ForInvalidTemplate() string {
	return format("page templates must contain {{ Content }} and may contain {{ Title }}")
}

// ForBasePath returns hints for malformed base paths.
func ForBasePath() string {
	return format(`use an absolute path such as "/docs", or "/" for the site root`)
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	return ForAvailable(available)
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	return ForAvailable(available)
}

// ForAvailable lists valid names, truncated when the list is long.
func ForAvailable(available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(available) > maxListed {
		more := len(available) - maxListed
		return format("available: " + strings.Join(available[:maxListed], ", ") + ", ... (" + strconv.Itoa(more) + " more)")
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
