package main

// Notes:
// - buildBatch: we test ordering, error isolation between pages, and
//   cancellation. Concurrency is bounded by workers but not asserted.
// - printResults: we test the normal, verbose and quiet output formats.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdsite "github.com/alnah/go-mdsite"
)

// newTestPages creates markdown files in a temp dir and returns pages for them.
func newTestPages(t *testing.T, names ...string) []PageToBuild {
	t.Helper()
	files := make(map[string]string, len(names))
	for _, n := range names {
		files["content/"+n] = "# " + n
	}
	dir := setupTestDir(t, files)

	pages := make([]PageToBuild, 0, len(names))
	for _, n := range names {
		pages = append(pages, PageToBuild{
			InputPath:  filepath.Join(dir, "content", filepath.FromSlash(n)),
			OutputPath: resolveOutputPath(filepath.FromSlash(n), filepath.Join(dir, "public")),
			Name:       n,
		})
	}
	return pages
}

// ---------------------------------------------------------------------------
// TestBuildBatch - Concurrent page builds
// ---------------------------------------------------------------------------

func TestBuildBatch(t *testing.T) {
	t.Parallel()

	pages := newTestPages(t, "index.md", "a.md", "b/c.md", "d.md")
	mock := &mockConverter{}

	results := buildBatch(context.Background(), mock, pages, 2)

	if len(results) != len(pages) {
		t.Fatalf("got %d results, want %d", len(results), len(pages))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("%s: unexpected error: %v", r.Page.Name, r.Err)
		}
		if r.Page.Name != pages[i].Name {
			t.Errorf("result %d is %s, want %s", i, r.Page.Name, pages[i].Name)
		}
		got := readFile(t, r.Page.OutputPath)
		if got != "<html>"+r.Page.Name+"</html>" {
			t.Errorf("%s: content = %q", r.Page.OutputPath, got)
		}
		if r.Size != len(got) {
			t.Errorf("%s: Size = %d, want %d", r.Page.Name, r.Size, len(got))
		}
	}
	if mock.callCount() != len(pages) {
		t.Errorf("converter called %d times, want %d", mock.callCount(), len(pages))
	}
}

func TestBuildBatch_ErrorIsolation(t *testing.T) {
	t.Parallel()

	pages := newTestPages(t, "ok.md", "bad.md")
	mock := &mockConverter{errFor: map[string]error{
		"bad.md": mdsite.ErrTitleNotFound,
	}}

	results := buildBatch(context.Background(), mock, pages, 4)

	if results[0].Err != nil {
		t.Errorf("ok.md: unexpected error: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, mdsite.ErrTitleNotFound) {
		t.Errorf("bad.md: error = %v, want ErrTitleNotFound", results[1].Err)
	}
	if _, err := os.Stat(results[1].Page.OutputPath); !os.IsNotExist(err) {
		t.Error("failed page should not be written")
	}
}

func TestBuildBatch_MissingInput(t *testing.T) {
	t.Parallel()

	pages := []PageToBuild{{
		InputPath:  filepath.Join(t.TempDir(), "gone.md"),
		OutputPath: filepath.Join(t.TempDir(), "gone.html"),
		Name:       "gone.md",
	}}

	results := buildBatch(context.Background(), &mockConverter{}, pages, 1)
	if !errors.Is(results[0].Err, ErrReadMarkdown) {
		t.Errorf("error = %v, want ErrReadMarkdown", results[0].Err)
	}
}

func TestBuildBatch_Canceled(t *testing.T) {
	t.Parallel()

	pages := newTestPages(t, "a.md", "b.md", "c.md")
	mock := &mockConverter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := buildBatch(ctx, mock, pages, 2)
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", r.Page.Name, r.Err)
		}
	}
	if mock.callCount() != 0 {
		t.Errorf("converter called %d times after cancel, want 0", mock.callCount())
	}
}

func TestBuildBatch_Empty(t *testing.T) {
	t.Parallel()

	if results := buildBatch(context.Background(), &mockConverter{}, nil, 4); results != nil {
		t.Errorf("buildBatch(nil) = %v, want nil", results)
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults - Output formats
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []BuildResult{
		{
			Page:     PageToBuild{InputPath: "content/index.md", OutputPath: "public/index.html", Name: "index.md"},
			Warnings: []mdsite.Warning{{Block: 2, Message: "unclosed \"**\" kept as text"}},
			Size:     2048,
			Duration: 1500 * time.Microsecond,
		},
		{
			Page: PageToBuild{InputPath: "content/bad.md", OutputPath: "public/bad.html", Name: "bad.md"},
			Err:  errors.New("bad.md: no level-1 heading found"),
		},
	}

	t.Run("normal", func(t *testing.T) {
		t.Parallel()
		env, stdout, stderr := testEnv(nil)

		failed := printResults(results, false, false, env)

		if failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
		if !strings.Contains(stdout.String(), "Created public/index.html") {
			t.Errorf("stdout missing created line: %q", stdout.String())
		}
		if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout missing summary: %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "WARN index.md: block 2: unclosed") {
			t.Errorf("stderr missing warning: %q", stderr.String())
		}
		if !strings.Contains(stderr.String(), "FAILED content/bad.md") {
			t.Errorf("stderr missing failure: %q", stderr.String())
		}
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv(nil)

		printResults(results, false, true, env)

		if !strings.Contains(stdout.String(), "content/index.md -> public/index.html (2.0 kB, 2ms)") {
			t.Errorf("stdout missing verbose line: %q", stdout.String())
		}
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()
		env, stdout, stderr := testEnv(nil)

		printResults(results, true, false, env)

		if stdout.Len() != 0 {
			t.Errorf("quiet stdout = %q, want empty", stdout.String())
		}
		if strings.Contains(stderr.String(), "WARN") {
			t.Errorf("quiet should hide warnings: %q", stderr.String())
		}
		if !strings.Contains(stderr.String(), "FAILED") {
			t.Errorf("quiet should still report failures: %q", stderr.String())
		}
	})
}
