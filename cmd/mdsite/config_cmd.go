package main

import (
	"fmt"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML: the config file,
// or the defaults, with MDSITE_* environment overrides applied.
func runConfig(args []string, env *Environment) error {
	flags, positional, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	return yamlutil.Encode(env.Stdout, cfg)
}
