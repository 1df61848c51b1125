package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-covjson"
	"github.com/goliatone/go-covjson/internal/schema"
)

func writeBundle(t *testing.T, path string) {
	t.Helper()
	module, err := covjson.New(covjson.DefaultConfig())
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	bundled, err := module.Bundle("")
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	if err := schema.WriteFile(path, bundled); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestRunRewritesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	writeBundle(t, path)

	if err := run([]string{path}); err != nil {
		t.Fatalf("run: %v", err)
	}
	doc, err := schema.ReadPath(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc[schema.KeySchema] != schema.Draft07 {
		t.Fatalf("expected draft-07, got %v", doc[schema.KeySchema])
	}
	defs, _ := doc[schema.KeyDefinitions].(map[string]any)
	if _, ok := defs["domain"]; !ok {
		t.Fatalf("expected domain definition, got %d definitions", len(defs))
	}
}

func TestRunWritesSeparateOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bundle.json")
	out := filepath.Join(dir, "draft07.json")
	writeBundle(t, in)

	if err := run([]string{"-out", out, in}); err != nil {
		t.Fatalf("run: %v", err)
	}
	original, _ := schema.ReadPath(in)
	if original[schema.KeySchema] != schema.Draft2020 {
		t.Fatalf("expected input to keep its dialect, got %v", original[schema.KeySchema])
	}
	if _, err := schema.ReadPath(out); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestRunRequiresInput(t *testing.T) {
	if err := run(nil); err == nil {
		t.Fatal("expected usage error without INPUT")
	}
}

func TestRunReportsUnresolvedReferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := schema.WriteFile(path, map[string]any{
		schema.KeySchema: schema.Draft2020,
		schema.KeyRef:    "/schemas/nowhere",
	}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := run([]string{path}); !errors.Is(err, schema.ErrUnresolvedReference) {
		t.Fatalf("expected unresolved reference, got %v", err)
	}
}
