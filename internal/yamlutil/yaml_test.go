package yamlutil_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestDecode - Strict decoding with a size limit
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		maxSize int
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name:  "valid YAML",
			input: "name: test\ncount: 42\nenabled: true",
			dest:  &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "test" || cfg.Count != 42 || !cfg.Enabled {
					t.Errorf("decoded = %+v", cfg)
				}
			},
		},
		{
			name:  "unicode content",
			input: "name: 日本語テスト",
			dest:  &testConfig{},
			check: func(t *testing.T, v any) {
				if got := v.(*testConfig).Name; got != "日本語テスト" {
					t.Errorf("Name = %q", got)
				}
			},
		},
		{
			name:    "empty input",
			input:   "",
			dest:    &testConfig{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "whitespace only",
			input:   "  \n\n",
			dest:    &testConfig{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil destination",
			input:   "name: test",
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "input at limit",
			input:   "name: abcd",
			maxSize: 10,
			dest:    &testConfig{},
			check: func(t *testing.T, v any) {
				if got := v.(*testConfig).Name; got != "abcd" {
					t.Errorf("Name = %q", got)
				}
			},
		},
		{
			name:    "input over limit",
			input:   "name: abcde",
			maxSize: 10,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Decode(strings.NewReader(tt.input), tt.dest, tt.maxSize)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestDecode_RejectsUnknownField(t *testing.T) {
	t.Parallel()

	err := yamlutil.Decode(strings.NewReader("name: test\nunknown_field: value"), &testConfig{}, 0)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want prefix 'yamlutil:'", err)
	}
}

func TestDecode_SyntaxError(t *testing.T) {
	t.Parallel()

	err := yamlutil.Decode(strings.NewReader("name: [unclosed"), &testConfig{}, 0)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want prefix 'yamlutil:'", err)
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Writes YAML readable by Decode
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := yamlutil.Encode(&buf, &testConfig{Name: "site", Count: 5, Enabled: true}); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"name: site", "count: 5", "enabled: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("Encode() output missing %q, got:\n%s", want, out)
		}
	}

	var decoded testConfig
	if err := yamlutil.Decode(&buf, &decoded, 0); err != nil {
		t.Fatalf("Decode() of encoded output: %v", err)
	}
	if decoded.Name != "site" || decoded.Count != 5 || !decoded.Enabled {
		t.Errorf("decoded = %+v", decoded)
	}
}
