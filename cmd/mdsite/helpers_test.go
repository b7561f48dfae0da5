package main

// Notes:
// - This file contains test helpers shared across the command tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	mdsite "github.com/alnah/go-mdsite"
)

// ---------------------------------------------------------------------------
// Environment - Captured output and fake process environment
// ---------------------------------------------------------------------------

// testEnv returns an Environment backed by buffers and the given variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	environ := func() []string {
		list := make([]string, 0, len(vars))
		for k, v := range vars {
			list = append(list, k+"="+v)
		}
		sort.Strings(list)
		return list
	}
	env := &Environment{
		Now:     time.Now,
		Stdout:  stdout,
		Stderr:  stderr,
		Getenv:  func(key string) string { return vars[key] },
		Environ: environ,
	}
	return env, stdout, stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map slash-separated paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// readFile reads a file or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns a canned page or error.
type mockConverter struct {
	mu       sync.Mutex
	calls    []mdsite.Input
	html     []byte
	warnings []mdsite.Warning
	errFor   map[string]error // keyed by Input.Name
}

func (m *mockConverter) Convert(_ context.Context, input mdsite.Input) (*mdsite.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if err, ok := m.errFor[input.Name]; ok {
		return nil, err
	}
	html := m.html
	if html == nil {
		html = []byte("<html>" + input.Name + "</html>")
	}
	return &mdsite.Result{Title: input.Name, HTML: html, Warnings: m.warnings}, nil
}

func (m *mockConverter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
