package logging

import (
	"context"
	"testing"
)

func TestWithFieldsCopiesFields(t *testing.T) {
	rec := &recordingLogger{}
	fields := map[string]any{fieldSchemaID: "/schemas/coverage"}

	_ = WithFields(rec, fields)
	fields[fieldSchemaID] = "/schemas/domain"

	if len(rec.fields) != 1 || rec.fields[0][fieldSchemaID] != "/schemas/coverage" {
		t.Fatalf("expected copied fields, got %v", rec.fields)
	}
}

func TestWithFieldsSkipsNilAndEmpty(t *testing.T) {
	if got := WithFields(nil, map[string]any{"a": 1}); got != nil {
		t.Fatalf("expected nil logger back, got %T", got)
	}
	rec := &recordingLogger{}
	_ = WithFields(rec, nil)
	if len(rec.fields) != 0 {
		t.Fatalf("expected no WithFields call for empty fields, got %v", rec.fields)
	}
}

func TestContextWithFieldsLayersValues(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{
		"run_id":  "run-1",
		fieldMode: "native",
	})
	ctx = ContextWithFields(ctx, map[string]any{fieldMode: "draft07"})

	got := ContextFields(ctx)
	if got["run_id"] != "run-1" || got[fieldMode] != "draft07" {
		t.Fatalf("unexpected context fields %v", got)
	}

	got["run_id"] = "mutated"
	if ContextFields(ctx)["run_id"] != "run-1" {
		t.Fatal("expected ContextFields to return a copy")
	}
}

func TestContextFieldsWithoutFields(t *testing.T) {
	if got := ContextFields(context.Background()); got != nil {
		t.Fatalf("expected nil fields, got %v", got)
	}
	var ctx context.Context
	if got := ContextWithFields(ctx, map[string]any{"a": 1}); got != nil {
		t.Fatal("expected nil context to pass through")
	}
}
