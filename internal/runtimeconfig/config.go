package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var ErrSchemaRootRequired = errors.New("covjson config: schema root identifier is required")
var ErrSchemaIDPrefixInvalid = errors.New("covjson config: schema id prefix must start and end with '/'")
var ErrSchemaBaseURLInvalid = errors.New("covjson config: schema base url must be an absolute url without fragment")
var ErrValidationModeUnknown = errors.New("covjson config: validation mode is invalid")
var ErrCommandTimeoutInvalid = errors.New("covjson config: command timeout must be zero or positive")
var ErrExternalPrefixEmpty = errors.New("covjson config: external reference prefixes must not be empty")
var ErrLoggingProviderRequired = errors.New("covjson config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("covjson config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("covjson config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("covjson config: logging format is invalid")

// Config aggregates the settings shared by the schema tools and the conformance suite.
type Config struct {
	Schemas    SchemasConfig    `yaml:"schemas"`
	Bundle     BundleConfig     `yaml:"bundle"`
	Downgrade  DowngradeConfig  `yaml:"downgrade"`
	Validation ValidationConfig `yaml:"validation"`
	Commands   CommandsConfig   `yaml:"commands"`
	Features   Features         `yaml:"features"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SchemasConfig locates the schema set. An empty Dir selects the embedded schemas.
type SchemasConfig struct {
	Dir      string `yaml:"dir"`
	RootID   string `yaml:"root_id"`
	IDPrefix string `yaml:"id_prefix"`
	BaseURL  string `yaml:"base_url"`
}

// BundleConfig captures the reference policy applied while bundling.
type BundleConfig struct {
	ExternalPrefixes []string `yaml:"external_prefixes"`
	StrictReferences bool     `yaml:"strict_references"`
}

// DowngradeConfig toggles the post-rewrite checks of the draft-07 downgrade.
type DowngradeConfig struct {
	SkipMetaSchemaCheck bool `yaml:"skip_meta_schema_check"`
	SkipKeywordAudit    bool `yaml:"skip_keyword_audit"`
}

// ValidationConfig selects how documents are validated.
type ValidationConfig struct {
	Mode         string `yaml:"mode"`
	CacheEnabled bool   `yaml:"cache_enabled"`
}

// CommandsConfig captures command-layer behaviour.
type CommandsConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// Features toggles optional functionality.
type Features struct {
	Logger bool `yaml:"logger"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns defaults matching the layout of the bundled CoverageJSON schemas.
func DefaultConfig() Config {
	return Config{
		Schemas: SchemasConfig{
			RootID:   "/schemas/coveragejson",
			IDPrefix: "/schemas/",
			BaseURL:  "https://covjson.org",
		},
		Bundle:    BundleConfig{},
		Downgrade: DowngradeConfig{},
		Validation: ValidationConfig{
			Mode:         "native",
			CacheEnabled: true,
		},
		Commands: CommandsConfig{
			Timeout: 30 * time.Second,
		},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Schemas.RootID) == "" {
		return ErrSchemaRootRequired
	}
	if prefix := cfg.Schemas.IDPrefix; prefix != "" {
		if !strings.HasPrefix(prefix, "/") || !strings.HasSuffix(prefix, "/") {
			return fmt.Errorf("%w: %s", ErrSchemaIDPrefixInvalid, prefix)
		}
	}
	if base := strings.TrimSpace(cfg.Schemas.BaseURL); base != "" {
		u, err := url.Parse(base)
		if err != nil || !u.IsAbs() || u.Fragment != "" {
			return fmt.Errorf("%w: %s", ErrSchemaBaseURLInvalid, base)
		}
	}
	for _, prefix := range cfg.Bundle.ExternalPrefixes {
		if strings.TrimSpace(prefix) == "" {
			return ErrExternalPrefixEmpty
		}
	}
	if mode := strings.TrimSpace(cfg.Validation.Mode); mode != "" && !isSupportedMode(mode) {
		return fmt.Errorf("%w: %s", ErrValidationModeUnknown, mode)
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedMode(mode string) bool {
	switch strings.ToLower(mode) {
	case "native", "bundled", "draft07":
		return true
	default:
		return false
	}
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
