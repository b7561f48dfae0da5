package main

import (
	"errors"
	"os"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template, style or base path
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // A page could not be converted
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, mdsite.ErrTitleNotFound) ||
		errors.Is(err, mdsite.ErrStructural) ||
		errors.Is(err, ErrPagesFailed) {
		return ExitContent
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdsite.ErrInvalidTemplate) ||
		errors.Is(err, mdsite.ErrTemplateNotFound) ||
		errors.Is(err, mdsite.ErrStyleNotFound) ||
		errors.Is(err, mdsite.ErrInvalidAssetName) ||
		errors.Is(err, mdsite.ErrInvalidAssetPath) ||
		errors.Is(err, mdsite.ErrInvalidBasePath) ||
		errors.Is(err, mdsite.ErrUnknownStyle) ||
		errors.Is(err, fileutil.ErrUnsafeClean) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoPages) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePage) {
		return ExitIO
	}

	return ExitGeneral
}
