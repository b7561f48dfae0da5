package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("content directory not found")
	ErrNoPages            = errors.New("no markdown files found")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrReadTemplate       = errors.New("failed to read template file")
	ErrWritePage          = errors.New("failed to write page")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrPagesFailed        = errors.New("pages failed to build")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// siteParams is the resolved build configuration.
type siteParams struct {
	cfg          *config.Config
	templateFile string // set when --template names a file instead of a built-in
}

// runBuild parses build flags and builds the site.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one content directory, got %d", ErrUsage, len(positional))
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	setupMaxProcs(flags.common.verbose, env.Stderr)

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	params, err := resolveSiteParams(flags, positional, env)
	if err != nil {
		return err
	}

	return buildSite(ctx, params, flags.common, env)
}

// resolveSiteParams loads the config, then layers env vars and flags on top.
func resolveSiteParams(flags *buildFlags, positional []string, env *Environment) (*siteParams, error) {
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	params := &siteParams{cfg: cfg}
	mergeBuildFlags(flags, positional, params)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// loadConfig loads the named config, or the defaults when no name is given.
// The --config flag wins over MDSITE_CONFIG.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeBuildFlags applies CLI flags over the config (CLI wins).
func mergeBuildFlags(flags *buildFlags, positional []string, params *siteParams) {
	cfg := params.cfg

	if len(positional) == 1 {
		cfg.Content.Dir = positional[0]
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.static != "" {
		cfg.Static.Dir = flags.static
	}
	if flags.noClean {
		cfg.Output.Clean = false
	}
	if flags.basePath != "" {
		cfg.Site.BasePath = flags.basePath
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}

	if flags.assets.template != "" {
		if isTemplateFile(flags.assets.template) {
			params.templateFile = flags.assets.template
		} else {
			cfg.Template.Name = flags.assets.template
		}
	}
	if flags.assets.assetPath != "" {
		cfg.Template.AssetPath = flags.assets.assetPath
	}
	if flags.assets.style != "" {
		cfg.Template.Style = flags.assets.style
	}
	if flags.assets.noStyle {
		cfg.Template.Style = ""
	}

	if flags.highlight.style != "" {
		cfg.Highlight.Style = flags.highlight.style
		cfg.Highlight.Enabled = true
	}
	if flags.highlight.enabled {
		cfg.Highlight.Enabled = true
	}
	if flags.highlight.disabled {
		cfg.Highlight.Enabled = false
	}
}

// isTemplateFile reports whether a --template value names a file rather
// than a built-in or asset-path template.
func isTemplateFile(value string) bool {
	return fileutil.IsFilePath(value) || strings.EqualFold(filepath.Ext(value), ".html")
}

// converterOptions translates the resolved configuration into converter options.
func converterOptions(params *siteParams) ([]mdsite.Option, error) {
	cfg := params.cfg
	opts := []mdsite.Option{
		mdsite.WithAssetPath(cfg.Template.AssetPath),
		mdsite.WithStyle(cfg.Template.Style),
		mdsite.WithBasePath(cfg.Site.BasePath),
	}

	if params.templateFile != "" {
		content, err := os.ReadFile(params.templateFile) // #nosec G304 -- user-provided template path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadTemplate, err)
		}
		opts = append(opts, mdsite.WithTemplate(string(content)))
	} else if cfg.Template.Name != "" {
		opts = append(opts, mdsite.WithTemplateName(cfg.Template.Name))
	}

	if cfg.Highlight.Enabled {
		opts = append(opts, mdsite.WithHighlightStyle(cfg.Highlight.Style))
	}

	return opts, nil
}

// buildSite writes every page of the site described by params.
func buildSite(ctx context.Context, params *siteParams, common commonFlags, env *Environment) error {
	start := env.Now()
	cfg := params.cfg

	opts, err := converterOptions(params)
	if err != nil {
		return err
	}
	conv, err := mdsite.NewConverter(opts...)
	if err != nil {
		return err
	}

	// Discover before touching the output so a bad content dir leaves it intact.
	pages, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, cfg.Content.Dir)
	}

	if err := prepareOutputDir(cfg); err != nil {
		return err
	}

	if cfg.Static.Dir != "" {
		stats, err := fileutil.CopyDir(ctx, cfg.Static.Dir, cfg.Output.Dir)
		if err != nil {
			return fmt.Errorf("copying static files: %w", err)
		}
		if common.verbose {
			fmt.Fprintf(env.Stdout, "Copied %s static files (%s)\n",
				humanize.Comma(int64(stats.Files)), humanize.Bytes(uint64(stats.Bytes)))
		}
	}

	workers := resolveWorkers(cfg.Build.Workers)
	if common.verbose {
		fmt.Fprintf(env.Stdout, "Building %d pages with %d workers\n", len(pages), workers)
	}

	results := buildBatch(ctx, conv, pages, workers)

	failed := printResults(results, common.quiet, common.verbose, env)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPagesFailed, failed, len(pages))
	}

	if common.verbose {
		fmt.Fprintf(env.Stdout, "Built %s in %v\n", cfg.Output.Dir, env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// prepareOutputDir cleans the output directory when requested and makes sure it exists.
func prepareOutputDir(cfg *config.Config) error {
	if cfg.Output.Clean {
		if err := fileutil.CleanDir(cfg.Output.Dir, cfg.Content.Dir, cfg.Static.Dir); err != nil {
			return fmt.Errorf("cleaning output: %w", err)
		}
	}
	if err := os.MkdirAll(cfg.Output.Dir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}
