package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/k0kubun/pp"

	"github.com/alnah/go-mdsite/internal/markdown"
)

// ppMu guards pp's package-level coloring switch.
var ppMu sync.Mutex

// runInspect prints how a markdown file is segmented and tokenized.
func runInspect(args []string, env *Environment) error {
	flags, positional, err := parseInspectFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: inspect takes exactly one markdown file", ErrUsage)
	}

	content, err := os.ReadFile(positional[0]) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	return inspectDocument(env.Stdout, string(content), flags.color)
}

// inspectDocument dumps the title, every block with its kind and inline
// spans, and the warnings compiling the document would produce.
func inspectDocument(w io.Writer, document string, color bool) error {
	ppMu.Lock()
	defer ppMu.Unlock()
	pp.ColoringEnabled = color

	title, err := markdown.ExtractTitle(document)
	if err != nil {
		fmt.Fprintf(w, "title: (%v)\n", err)
	} else {
		fmt.Fprintf(w, "title: %q\n", title)
	}

	for i, b := range markdown.Blocks(document) {
		fmt.Fprintf(w, "\nblock %d: %s\n", i+1, b.Kind)
		texts := markdown.InlineTexts(b)
		if texts == nil {
			if _, err := pp.Fprintln(w, b.Text); err != nil {
				return err
			}
			continue
		}
		for _, text := range texts {
			if _, err := pp.Fprintln(w, markdown.TextToSpans(text)); err != nil {
				return err
			}
		}
	}

	_, warnings := markdown.ToHTMLNode(document)
	if len(warnings) > 0 {
		fmt.Fprintln(w)
		for _, warn := range warnings {
			fmt.Fprintf(w, "WARN %s\n", warn)
		}
	}

	return nil
}
