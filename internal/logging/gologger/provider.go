// Package gologger backs covjson module loggers with github.com/goliatone/go-logger.
package gologger

import (
	"context"
	"fmt"
	"maps"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-covjson/internal/runtimeconfig"
	"github.com/goliatone/go-covjson/pkg/interfaces"
)

// Provider hands out go-logger children named after covjson modules, e.g. covjson.bundle.
type Provider struct {
	root *glog.BaseLogger
}

var _ interfaces.LoggerProvider = (*Provider)(nil)

// NewProvider builds the root go-logger from the logging section of the runtime
// config. An empty format means JSON; Focus restricts output to the named modules.
func NewProvider(cfg runtimeconfig.LoggingConfig) (*Provider, error) {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	switch format {
	case "":
		format = glog.LoggerTypeJSON
	case glog.LoggerTypeJSON, glog.LoggerTypeConsole, glog.LoggerTypePretty:
	default:
		return nil, fmt.Errorf("gologger: unsupported format %q", cfg.Format)
	}

	opts := []glog.Option{
		glog.WithLoggerType(format),
		glog.WithAddSource(cfg.AddSource),
	}
	if level := levelName(cfg.Level); level != "" {
		opts = append(opts, glog.WithLevel(level))
	}
	root := glog.NewLogger(opts...)

	var focus []string
	for _, name := range cfg.Focus {
		if name = strings.TrimSpace(name); name != "" {
			focus = append(focus, name)
		}
	}
	if len(focus) > 0 {
		root.Focus(focus...)
	}
	return &Provider{root: root}, nil
}

// GetLogger returns the go-logger child for name, or the root for an empty name.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if name = strings.TrimSpace(name); name == "" {
		return adapt(p.root)
	}
	return adapt(p.root.GetLogger(name))
}

// levelName converts a configured level to the upper-case names go-logger expects.
func levelName(level string) string {
	level = strings.ToUpper(strings.TrimSpace(level))
	if level == "WARNING" {
		return glog.Warn
	}
	return level
}

// moduleLogger exposes a glog.Logger through the covjson logging contract.
// Leveled methods are promoted from the embedded logger.
type moduleLogger struct {
	glog.Logger
}

func adapt(inner glog.Logger) interfaces.Logger {
	return moduleLogger{Logger: inner}
}

func (l moduleLogger) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return adapt(l.Logger.WithContext(ctx))
}

func (l moduleLogger) WithFields(fields map[string]any) interfaces.Logger {
	annotated, ok := l.Logger.(glog.FieldsLogger)
	if !ok || len(fields) == 0 {
		return l
	}
	return adapt(annotated.WithFields(maps.Clone(fields)))
}
