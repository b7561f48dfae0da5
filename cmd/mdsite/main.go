package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "inspect":
		err = runInspect(rest, env)
	case "config":
		err = runConfig(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// usageError marks a flag parsing error as a usage error.
// flag.ErrHelp is passed through so -h exits successfully.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// setupMaxProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setupMaxProcs(verbose bool, stderr io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hintFor returns an actionable hint for well-known errors, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigCandidates())
	case errors.Is(err, fileutil.ErrUnsafeClean):
		return hints.ForUnsafeClean()
	case errors.Is(err, mdsite.ErrTitleNotFound):
		return hints.ForMissingTitle()
	case errors.Is(err, mdsite.ErrInvalidTemplate):
		return hints.ForInvalidTemplate()
	case errors.Is(err, mdsite.ErrInvalidBasePath):
		return hints.ForBasePath()
	case errors.Is(err, mdsite.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.TemplateNames())
	case errors.Is(err, mdsite.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, mdsite.ErrUnknownStyle):
		return hints.ForAvailable(pipeline.StyleNames())
	case errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	}
	return ""
}

// userConfigCandidates returns where a named config could be created.
func userConfigCandidates() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-mdsite", "mdsite.yaml")}
}
