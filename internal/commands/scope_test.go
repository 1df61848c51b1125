package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-covjson/pkg/interfaces"
)

type entry struct {
	level  string
	msg    string
	fields map[string]any
}

// fieldRecorder implements interfaces.FieldsLogger; every derived logger shares entries.
type fieldRecorder struct {
	fields  map[string]any
	entries *[]entry
}

func newFieldRecorder() *fieldRecorder {
	return &fieldRecorder{entries: &[]entry{}}
}

func (r *fieldRecorder) record(level, msg string) {
	*r.entries = append(*r.entries, entry{level: level, msg: msg, fields: r.fields})
}

func (r *fieldRecorder) Trace(msg string, _ ...any) { r.record("trace", msg) }
func (r *fieldRecorder) Debug(msg string, _ ...any) { r.record("debug", msg) }
func (r *fieldRecorder) Info(msg string, _ ...any)  { r.record("info", msg) }
func (r *fieldRecorder) Warn(msg string, _ ...any)  { r.record("warn", msg) }
func (r *fieldRecorder) Error(msg string, _ ...any) { r.record("error", msg) }
func (r *fieldRecorder) Fatal(msg string, _ ...any) { r.record("fatal", msg) }

func (r *fieldRecorder) WithContext(context.Context) interfaces.Logger { return r }

func (r *fieldRecorder) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &fieldRecorder{fields: merged, entries: r.entries}
}

// plainLogger only satisfies interfaces.Logger.
type plainLogger struct {
	messages []string
}

func (p *plainLogger) Trace(msg string, _ ...any)                    { p.messages = append(p.messages, msg) }
func (p *plainLogger) Debug(msg string, _ ...any)                    { p.messages = append(p.messages, msg) }
func (p *plainLogger) Info(msg string, _ ...any)                     { p.messages = append(p.messages, msg) }
func (p *plainLogger) Warn(msg string, _ ...any)                     { p.messages = append(p.messages, msg) }
func (p *plainLogger) Error(msg string, _ ...any)                    { p.messages = append(p.messages, msg) }
func (p *plainLogger) Fatal(msg string, _ ...any)                    { p.messages = append(p.messages, msg) }
func (p *plainLogger) WithContext(context.Context) interfaces.Logger { return p }

type namedProvider struct {
	names  []string
	logger interfaces.Logger
}

func (p *namedProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return p.logger
}

func TestDefaultTelemetryAnnotatesRunFields(t *testing.T) {
	rec := newFieldRecorder()
	telemetry := DefaultTelemetry[testMessage](rec)

	telemetry(context.Background(), testMessage{}, TelemetryInfo{
		Status: TelemetryStatusSuccess,
		Fields: map[string]any{"run_id": "run-1", "operation": "schemas.bundle"},
	})

	if len(*rec.entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(*rec.entries))
	}
	got := (*rec.entries)[0]
	if got.msg != "command.execute.success" || got.fields["run_id"] != "run-1" || got.fields["operation"] != "schemas.bundle" {
		t.Fatalf("unexpected telemetry entry %+v", got)
	}
}

func TestDefaultTelemetryAcceptsLoggerWithoutFields(t *testing.T) {
	logger := &plainLogger{}
	telemetry := DefaultTelemetry[testMessage](logger)

	telemetry(context.Background(), testMessage{}, TelemetryInfo{
		Status: TelemetryStatusFailed,
		Error:  errors.New("boom"),
		Fields: map[string]any{"run_id": "run-2"},
	})

	if len(logger.messages) != 1 || logger.messages[0] != "command.execute.failed" {
		t.Fatalf("expected failure logged on the plain logger, got %v", logger.messages)
	}
}

func TestCommandLoggerNamesGroupModule(t *testing.T) {
	rec := newFieldRecorder()
	provider := &namedProvider{logger: rec}

	logger := CommandLogger(provider, " schemas ")
	logger.Info("ready")

	if len(provider.names) != 1 || provider.names[0] != "covjson.commands.schemas" {
		t.Fatalf("expected covjson.commands.schemas, got %v", provider.names)
	}
	got := (*rec.entries)[0].fields
	if got["component"] != "command" || got["module"] != "covjson.commands.schemas" {
		t.Fatalf("unexpected command logger fields %v", got)
	}

	_ = CommandLogger(provider, "")
	if provider.names[1] != "covjson.commands" {
		t.Fatalf("expected bare command module, got %v", provider.names)
	}
}

func TestExecutionScope(t *testing.T) {
	var parent context.Context
	ctx, cancel := executionScope(parent, 0)
	if ctx == nil {
		t.Fatal("expected context for nil parent")
	}
	if _, ok := ctx.Deadline(); ok {
		t.Fatal("expected no deadline without timeout")
	}
	cancel()
	if ctx.Err() == nil {
		t.Fatal("expected cancel to end the scope")
	}

	ctx, cancel = executionScope(context.Background(), time.Minute)
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected deadline with timeout")
	}
}
