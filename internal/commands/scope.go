package commands

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-covjson/internal/logging"
	"github.com/goliatone/go-covjson/pkg/interfaces"
)

// DefaultCommandTimeout bounds a schema command when no WithTimeout option is given.
// Bundling and downgrading the full CoverageJSON set completes well within it.
const DefaultCommandTimeout = 30 * time.Second

const commandModule = "covjson.commands"

// CommandLogger returns the logger for a command group. The "schemas" group logs
// under covjson.commands.schemas; an empty group logs under covjson.commands.
func CommandLogger(provider interfaces.LoggerProvider, group string) interfaces.Logger {
	module := commandModule
	if group = strings.TrimSpace(group); group != "" {
		module += "." + group
	}
	return logging.WithFields(logging.ModuleLogger(provider, module), map[string]any{
		"component": "command",
	})
}

// EnsureLogger substitutes the no-op logger for nil.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}

// executionScope derives the context a single command run executes in. A nil
// parent counts as context.Background; a non-positive timeout leaves it unbounded.
func executionScope(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
