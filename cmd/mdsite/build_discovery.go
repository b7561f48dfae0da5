package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// PageToBuild represents a single markdown file and the page it produces.
type PageToBuild struct {
	InputPath  string
	OutputPath string
	Name       string // Content-relative path with forward slashes
}

// isMarkdownFile reports whether path has a .md or .markdown extension.
func isMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// discoverPages walks contentDir for markdown files, mirroring its layout
// under outputDir. Hidden directories are skipped, and so is outputDir when
// it lives inside contentDir.
func discoverPages(contentDir, outputDir string) ([]PageToBuild, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInput, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", fileutil.ErrNotDirectory, contentDir)
	}

	absContent, err := filepath.Abs(contentDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", contentDir, err)
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", outputDir, err)
	}
	nestedOutput := absOutput != absContent && fileutil.IsWithin(absContent, absOutput)

	var pages []PageToBuild
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == contentDir {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if abs, absErr := filepath.Abs(path); nestedOutput && absErr == nil && fileutil.IsWithin(absOutput, abs) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !isMarkdownFile(path) {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		pages = append(pages, PageToBuild{
			InputPath:  path,
			OutputPath: resolveOutputPath(rel, outputDir),
			Name:       filepath.ToSlash(rel),
		})
		return nil
	})

	return pages, err
}

// resolveOutputPath maps a content-relative markdown path to its page path:
// index.md becomes index.html and guide/setup.md becomes guide/setup.html.
func resolveOutputPath(relPath, outputDir string) string {
	base := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	return filepath.Join(outputDir, base+".html")
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers turns the configured worker count into a concrete one.
// Zero means one worker per available CPU.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}
