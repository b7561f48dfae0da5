package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// PageConverter is the interface for the conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input mdsite.Input) (*mdsite.Result, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*mdsite.Converter)(nil)

// BuildResult holds the outcome of a single page build.
type BuildResult struct {
	Page     PageToBuild
	Title    string
	Warnings []mdsite.Warning
	Size     int
	Err      error
	Duration time.Duration
}

// buildBatch converts pages concurrently with at most workers goroutines.
// A single converter is shared because it is safe for concurrent use.
// Results are returned in the order of pages.
func buildBatch(ctx context.Context, conv PageConverter, pages []PageToBuild, workers int) []BuildResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(pages) {
		concurrency = len(pages)
	}

	results := make([]BuildResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{Page: pages[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = buildPage(ctx, conv, pages[idx])
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage converts one markdown file and writes the resulting page.
func buildPage(ctx context.Context, conv PageConverter, p PageToBuild) BuildResult {
	start := time.Now()
	result := BuildResult{Page: p}

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	res, err := conv.Convert(ctx, mdsite.Input{
		Markdown: string(content),
		Name:     p.Name,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Title = res.Title
	result.Warnings = res.Warnings

	if err := fileutil.WriteFileAtomic(p.OutputPath, res.HTML, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Size = len(res.HTML)
	result.Duration = time.Since(start)
	return result
}

// printResults outputs build results and returns the number of failed pages.
// Warnings go to stderr unless quiet.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Page.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		for _, w := range r.Warnings {
			fmt.Fprintf(env.Stderr, "WARN %s: %s\n", r.Page.Name, w)
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n",
				r.Page.InputPath, r.Page.OutputPath,
				humanize.Bytes(uint64(r.Size)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.Page.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
