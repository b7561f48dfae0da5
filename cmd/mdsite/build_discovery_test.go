package main

// Notes:
// - discoverPages: we test extension filtering, directory mirroring, hidden
//   directories, and an output directory nested inside the content directory.
// - resolveOutputPath / validateWorkers / resolveWorkers: pure functions,
//   tested with tables.

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestDiscoverPages - Content walking
// ---------------------------------------------------------------------------

func TestDiscoverPages(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"content/index.md":             "# Home",
		"content/about.markdown":       "# About",
		"content/guide/setup.md":       "# Setup",
		"content/guide/image.png":      "png",
		"content/.drafts/wip.md":       "# WIP",
		"content/public/stale.md":      "# Stale",
		"content/notes.txt":            "not markdown",
		"content/guide/deep/faq.MD":    "# FAQ",
		"content/guide/deep/readme.md": "# Readme",
	})
	contentDir := filepath.Join(dir, "content")
	outputDir := filepath.Join(contentDir, "public")

	pages, err := discoverPages(contentDir, outputDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, p := range pages {
		names = append(names, p.Name)
	}
	want := []string{
		"about.markdown",
		"guide/deep/faq.MD",
		"guide/deep/readme.md",
		"guide/setup.md",
		"index.md",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("page names mismatch (-want +got):\n%s", diff)
	}

	for _, p := range pages {
		if p.Name == "guide/setup.md" {
			wantOut := filepath.Join(outputDir, "guide", "setup.html")
			if p.OutputPath != wantOut {
				t.Errorf("OutputPath = %q, want %q", p.OutputPath, wantOut)
			}
		}
	}
}

func TestDiscoverPages_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing content dir", func(t *testing.T) {
		t.Parallel()
		_, err := discoverPages(filepath.Join(t.TempDir(), "missing"), t.TempDir())
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("content is a file", func(t *testing.T) {
		t.Parallel()
		dir := setupTestDir(t, map[string]string{"page.md": "# Page"})
		_, err := discoverPages(filepath.Join(dir, "page.md"), t.TempDir())
		if !errors.Is(err, fileutil.ErrNotDirectory) {
			t.Errorf("error = %v, want ErrNotDirectory", err)
		}
	})

	t.Run("empty content dir", func(t *testing.T) {
		t.Parallel()
		pages, err := discoverPages(t.TempDir(), t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pages) != 0 {
			t.Errorf("got %d pages, want 0", len(pages))
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Markdown to page path
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rel  string
		want string
	}{
		{"index", "index.md", filepath.Join("out", "index.html")},
		{"page", "about.md", filepath.Join("out", "about.html")},
		{"markdown extension", "notes.markdown", filepath.Join("out", "notes.html")},
		{"nested", filepath.Join("guide", "setup.md"), filepath.Join("out", "guide", "setup.html")},
		{"dotted name", "v1.2.md", filepath.Join("out", "v1.2.html")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveOutputPath(tt.rel, "out"); got != tt.want {
				t.Errorf("resolveOutputPath(%q) = %q, want %q", tt.rel, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{8, false},
		{64, false},
		{65, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(3); got != 3 {
		t.Errorf("resolveWorkers(3) = %d, want 3", got)
	}
	if got := resolveWorkers(0); got != runtime.GOMAXPROCS(0) {
		t.Errorf("resolveWorkers(0) = %d, want GOMAXPROCS", got)
	}
}
