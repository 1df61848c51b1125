package covjson_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-covjson"
)

func TestConfigValidateRequiresRoot(t *testing.T) {
	cfg := covjson.DefaultConfig()
	cfg.Schemas.RootID = ""
	if err := cfg.Validate(); !errors.Is(err, covjson.ErrSchemaRootRequired) {
		t.Fatalf("expected ErrSchemaRootRequired, got %v", err)
	}
}

func TestConfigValidateLoggingProviderUnknown(t *testing.T) {
	cfg := covjson.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, covjson.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := covjson.LoadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Schemas.RootID != covjson.DefaultConfig().Schemas.RootID {
		t.Fatalf("expected default root, got %q", cfg.Schemas.RootID)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "covjson.yaml")
	data := []byte("validation:\n  mode: draft07\nbundle:\n  strict_references: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := covjson.LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Validation.Mode != "draft07" || !cfg.Bundle.StrictReferences {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !cfg.Validation.CacheEnabled {
		t.Fatalf("expected defaults to survive the overlay")
	}
}
