package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-covjson"
	"github.com/goliatone/go-covjson/internal/commands"
	"github.com/goliatone/go-covjson/pkg/interfaces"
)

// Options captures the flag values shared by the covjson CLIs. Zero values keep
// the configuration file (or default) setting.
type Options struct {
	ConfigPath          string
	SchemasDir          string
	RootID              string
	Mode                string
	StrictReferences    bool
	ExternalPrefixes    []string
	SkipMetaSchemaCheck bool
	LoggerProvider      interfaces.LoggerProvider
}

// Module wraps the covjson module and the logger command handlers should use.
type Module struct {
	Module *covjson.Module
	Logger interfaces.Logger
}

// Config loads the configuration file named by opts and applies the flag overrides.
func Config(opts Options) (covjson.Config, error) {
	cfg, err := covjson.LoadConfig(strings.TrimSpace(opts.ConfigPath))
	if err != nil {
		return covjson.Config{}, err
	}
	if dir := strings.TrimSpace(opts.SchemasDir); dir != "" {
		cfg.Schemas.Dir = dir
	}
	if root := strings.TrimSpace(opts.RootID); root != "" {
		cfg.Schemas.RootID = root
	}
	if mode := strings.TrimSpace(opts.Mode); mode != "" {
		cfg.Validation.Mode = mode
	}
	if opts.StrictReferences {
		cfg.Bundle.StrictReferences = true
	}
	if len(opts.ExternalPrefixes) > 0 {
		cfg.Bundle.ExternalPrefixes = append(cfg.Bundle.ExternalPrefixes, opts.ExternalPrefixes...)
	}
	if opts.SkipMetaSchemaCheck {
		cfg.Downgrade.SkipMetaSchemaCheck = true
	}
	return cfg, cfg.Validate()
}

// BuildModule constructs a covjson module configured for CLI use.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := Config(opts)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	moduleOpts := []covjson.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, covjson.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := covjson.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise covjson module: %w", err)
	}

	return &Module{
		Module: module,
		Logger: commands.CommandLogger(module.Container().LoggerProvider(), "schemas"),
	}, nil
}

// SplitList parses a comma separated flag value into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
