package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-covjson/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.Schemas.RootID != "/schemas/coveragejson" {
		t.Fatalf("expected coveragejson root, got %q", cfg.Schemas.RootID)
	}
}

func TestConfigValidate_RequiresRootID(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Schemas.RootID = " "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrSchemaRootRequired) {
		t.Fatalf("expected ErrSchemaRootRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsMalformedIDPrefix(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Schemas.IDPrefix = "schemas"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrSchemaIDPrefixInvalid) {
		t.Fatalf("expected ErrSchemaIDPrefixInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsRelativeBaseURL(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Schemas.BaseURL = "covjson.org"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrSchemaBaseURLInvalid) {
		t.Fatalf("expected ErrSchemaBaseURLInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownMode(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Validation.Mode = "draft04"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrValidationModeUnknown) {
		t.Fatalf("expected ErrValidationModeUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsEmptyExternalPrefix(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Bundle.ExternalPrefixes = []string{"http://vocab.example/", ""}

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrExternalPrefixEmpty) {
		t.Fatalf("expected ErrExternalPrefixEmpty, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := runtimeconfig.Load(strings.NewReader(`
schemas:
  root_id: /schemas/coverage
bundle:
  strict_references: true
  external_prefixes:
    - http://vocab.nerc.ac.uk/
commands:
  timeout: 5s
`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Schemas.RootID != "/schemas/coverage" {
		t.Fatalf("expected root override, got %q", cfg.Schemas.RootID)
	}
	if cfg.Schemas.IDPrefix != "/schemas/" {
		t.Fatalf("expected default id prefix to survive, got %q", cfg.Schemas.IDPrefix)
	}
	if !cfg.Bundle.StrictReferences || len(cfg.Bundle.ExternalPrefixes) != 1 {
		t.Fatalf("unexpected bundle config %+v", cfg.Bundle)
	}
	if cfg.Commands.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.Commands.Timeout)
	}
	if !cfg.Validation.CacheEnabled {
		t.Fatal("expected default cache flag to survive")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	if _, err := runtimeconfig.Load(strings.NewReader("schemas:\n  root: /schemas/coverage\n")); err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestLoadRunsValidation(t *testing.T) {
	_, err := runtimeconfig.Load(strings.NewReader("validation:\n  mode: strict\n"))
	if !errors.Is(err, runtimeconfig.ErrValidationModeUnknown) {
		t.Fatalf("expected ErrValidationModeUnknown, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := runtimeconfig.LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile(\"\") returned error: %v", err)
	}
	if cfg.Schemas.BaseURL != "https://covjson.org" {
		t.Fatalf("expected default base url, got %q", cfg.Schemas.BaseURL)
	}

	path := filepath.Join(t.TempDir(), "covjson.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err = runtimeconfig.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}

	if _, err := runtimeconfig.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
