package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags are shared by every command that reads a config.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags select the page template and stylesheet.
type assetFlags struct {
	template  string
	style     string
	assetPath string
	noStyle   bool
}

// highlightFlags control syntax highlighting of code blocks.
type highlightFlags struct {
	enabled  bool
	disabled bool
	style    string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	assets    assetFlags
	highlight highlightFlags
	output    string
	static    string
	basePath  string
	workers   int
	noClean   bool
}

// inspectFlags holds all flags for the inspect command.
type inspectFlags struct {
	color bool
}

// configFlags holds all flags for the config command.
type configFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addAssetFlags adds template and style flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.template, "template", "", "page template name or .html file path")
	fs.StringVar(&f.style, "style", "", "stylesheet name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "do not inline a stylesheet")
}

// addHighlightFlags adds syntax highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.BoolVar(&f.enabled, "highlight", false, "highlight code blocks")
	fs.BoolVar(&f.disabled, "no-highlight", false, "do not highlight code blocks")
	fs.StringVar(&f.style, "highlight-style", "", "chroma style name (implies --highlight)")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", stderr, printBuildUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.static, "static", "", "directory copied verbatim into the output")
	fs.StringVar(&f.basePath, "base-path", "", "sub-path the site is served from, e.g. /docs")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.noClean, "no-clean", false, "keep existing files in the output directory")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	addHighlightFlags(fs, &f.highlight)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseInspectFlags parses inspect command flags and returns positional args.
func parseInspectFlags(args []string, stderr io.Writer) (*inspectFlags, []string, error) {
	f := &inspectFlags{}
	fs := newFlagSet("inspect", stderr, printInspectUsage)

	fs.BoolVar(&f.color, "color", false, "colorize the dump")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, stderr io.Writer) (*configFlags, []string, error) {
	f := &configFlags{}
	fs := newFlagSet("config", stderr, printConfigUsage)

	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
