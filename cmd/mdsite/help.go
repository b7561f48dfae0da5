package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build a static site from a directory of markdown files")
	fmt.Fprintln(w, "  inspect    Show how a markdown file is parsed")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every .md and .markdown file under content-dir to an HTML page.")
	fmt.Fprintln(w, "index.md becomes index.html and directories are mirrored.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Markdown source directory (default from config: content)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>          Output directory (default: public)")
	fmt.Fprintln(w, "      --static <dir>          Directory copied verbatim into the output")
	fmt.Fprintln(w, "      --no-clean              Keep existing files in the output directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "      --template <name|file>  Page template: "+strings.Join(assets.TemplateNames(), ", ")+", or an .html file")
	fmt.Fprintln(w, "      --style <name>          Stylesheet: "+strings.Join(assets.StyleNames(), ", "))
	fmt.Fprintln(w, "      --no-style              Do not inline a stylesheet")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory with templates/ and styles/ overrides")
	fmt.Fprintln(w, "      --base-path <path>      Sub-path the site is served from, e.g. /docs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight             Highlight code blocks")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style name (implies --highlight)")
	fmt.Fprintln(w, "      --no-highlight          Do not highlight code blocks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_CONTENT_DIR, MDSITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDSITE_BASE_PATH, MDSITE_WORKERS")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite inspect <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the title, each block with its kind and inline spans, and warnings.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --color    Colorize the dump")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet            Do not warn about unknown MDSITE_* variables")
}

// printHighlightStyles lists the chroma styles accepted by --highlight-style.
func printHighlightStyles(w io.Writer) {
	fmt.Fprintln(w, "Highlight styles:")
	for _, name := range pipeline.StyleNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "styles":
		printHighlightStyles(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command. 'mdsite help styles' lists highlight styles.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown help topic %q", ErrUsage, args[0])
	}
	return nil
}
