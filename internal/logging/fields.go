package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-covjson/pkg/interfaces"
)

type fieldsKey struct{}

// WithFields returns logger annotated with a copy of fields when it implements
// interfaces.FieldsLogger. Other loggers, nil included, are returned as is.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	annotated, ok := logger.(interfaces.FieldsLogger)
	if !ok || len(fields) == 0 {
		return logger
	}
	return annotated.WithFields(maps.Clone(fields))
}

// ContextWithFields layers fields over the ones ctx already carries. Command
// handlers use it to expose run_id and message fields to the code they run.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}
	merged := ContextFields(ctx)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	maps.Copy(merged, fields)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// ContextFields returns a copy of the fields carried by ctx, or nil when there are none.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).(map[string]any)
	if len(fields) == 0 {
		return nil
	}
	return maps.Clone(fields)
}
