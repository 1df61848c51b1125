package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-covjson/pkg/interfaces"
)

const (
	rootModule       = "covjson"
	storeModule      = "covjson.store"
	bundleModule     = "covjson.bundle"
	downgradeModule  = "covjson.downgrade"
	validationModule = "covjson.validation"
)

const (
	fieldSchemaID   = "schema_id"
	fieldSchemaPath = "schema_path"
	fieldMode       = "mode"
)

// ModuleLogger asks provider for the logger named module and tags it with a
// module field. A nil provider, or one returning nil, yields the no-op logger.
// An empty module means the covjson root.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}
	var logger interfaces.Logger
	if provider != nil {
		logger = provider.GetLogger(module)
	}
	if logger == nil {
		return NoOp()
	}
	return WithFields(logger, map[string]any{"module": module})
}

// StoreLogger returns the logger namespace reserved for schema store loading.
func StoreLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storeModule)
}

// BundleLogger returns the logger namespace reserved for the bundler.
func BundleLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, bundleModule)
}

// DowngradeLogger returns the logger namespace reserved for dialect downgrades.
func DowngradeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, downgradeModule)
}

// ValidationLogger returns the logger namespace reserved for document validation.
func ValidationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, validationModule)
}

// WithSchemaContext enriches the logger with the schema identifier, the file it
// came from and the validation mode. Empty values are ignored.
func WithSchemaContext(logger interfaces.Logger, schemaID, path, mode string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(schemaID); trimmed != "" {
		fields[fieldSchemaID] = trimmed
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldSchemaPath] = trimmed
	}
	if trimmed := strings.TrimSpace(mode); trimmed != "" {
		fields[fieldMode] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
