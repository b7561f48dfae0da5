// Package yamlutil decodes and encodes the YAML used for site configuration.
// It keeps the YAML library behind a small API so callers never import it.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// DefaultMaxSize bounds the input read by Decode (1MB).
const DefaultMaxSize = 1 << 20

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// Decode reads at most maxSize bytes from r and decodes them into v.
// Unknown fields are rejected. A maxSize of 0 means DefaultMaxSize.
func Decode(r io.Reader, v any, maxSize int) error {
	if v == nil {
		return ErrNilDestination
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	// One extra byte tells an input at the limit apart from a larger one
	data, err := io.ReadAll(io.LimitReader(r, int64(maxSize)+1))
	if err != nil {
		return fmt.Errorf("yamlutil: reading input: %w", err)
	}
	if len(data) > maxSize {
		return fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, maxSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyInput
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode writes v to w as YAML with two-space indentation.
func Encode(w io.Writer, v any) error {
	if err := yaml.NewEncoder(w, yaml.Indent(2)).Encode(v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
