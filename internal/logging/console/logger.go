// Package console writes covjson log entries as single key=value lines. It is
// the provider the command-line tools use unless go-logger is configured.
package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-covjson/internal/logging"
	"github.com/goliatone/go-covjson/pkg/interfaces"
)

// Level orders log entries by severity.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "INFO"
}

// ParseLevel maps a configured level name to a Level. Unknown and empty names map to LevelInfo.
func ParseLevel(name string) Level {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "WARNING" {
		return LevelWarn
	}
	for i, candidate := range levelNames {
		if candidate == name {
			return Level(i)
		}
	}
	return LevelInfo
}

// badKey labels an argument that is not part of a key/value pair.
const badKey = "!BADKEY"

// Options configures a Provider. Zero values write to stdout at info level.
type Options struct {
	Writer io.Writer
	Clock  func() time.Time
	Level  string
}

// Provider hands out loggers sharing one writer and one minimum level.
type Provider struct {
	out   io.Writer
	clock func() time.Time
	min   Level
	mu    sync.Mutex
}

// NewProvider builds a console provider from opts.
func NewProvider(opts Options) *Provider {
	p := &Provider{
		out:   opts.Writer,
		clock: opts.Clock,
		min:   ParseLevel(opts.Level),
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	return p
}

// GetLogger returns a logger whose entries carry name after the level.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	return &lineLogger{provider: p, name: name}
}

type lineLogger struct {
	provider *Provider
	name     string
	fields   map[string]any
	ctx      context.Context
}

var (
	_ interfaces.LoggerProvider = (*Provider)(nil)
	_ interfaces.FieldsLogger   = (*lineLogger)(nil)
)

func (l *lineLogger) Trace(msg string, args ...any) { l.write(LevelTrace, msg, args) }
func (l *lineLogger) Debug(msg string, args ...any) { l.write(LevelDebug, msg, args) }
func (l *lineLogger) Info(msg string, args ...any)  { l.write(LevelInfo, msg, args) }
func (l *lineLogger) Warn(msg string, args ...any)  { l.write(LevelWarn, msg, args) }
func (l *lineLogger) Error(msg string, args ...any) { l.write(LevelError, msg, args) }
func (l *lineLogger) Fatal(msg string, args ...any) { l.write(LevelFatal, msg, args) }

func (l *lineLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	child := *l
	child.fields = make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(child.fields, l.fields)
	maps.Copy(child.fields, fields)
	return &child
}

func (l *lineLogger) WithContext(ctx context.Context) interfaces.Logger {
	child := *l
	child.ctx = ctx
	return &child
}

// write renders one line. Fields precedence: logger fields, then context
// fields, then call arguments.
func (l *lineLogger) write(level Level, msg string, args []any) {
	p := l.provider
	if level < p.min {
		return
	}
	fields := maps.Clone(l.fields)
	if fields == nil {
		fields = map[string]any{}
	}
	maps.Copy(fields, logging.ContextFields(l.ctx))
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" || i+1 == len(args) {
			fields[badKey] = args[i]
			i--
			continue
		}
		fields[key] = args[i+1]
	}

	var line strings.Builder
	line.WriteString(p.clock().UTC().Format(time.RFC3339Nano))
	line.WriteByte(' ')
	line.WriteString(level.String())
	if l.name != "" {
		line.WriteByte(' ')
		line.WriteString(l.name)
	}
	line.WriteByte(' ')
	line.WriteString(msg)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		line.WriteByte(' ')
		line.WriteString(key)
		line.WriteByte('=')
		line.WriteString(render(fields[key]))
	}
	line.WriteByte('\n')

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.out, line.String())
}

func render(value any) string {
	var text string
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		text = v
	case time.Time:
		text = v.UTC().Format(time.RFC3339Nano)
	case error:
		text = v.Error()
	case fmt.Stringer:
		text = v.String()
	default:
		text = fmt.Sprint(v)
	}
	if text == "" || strings.ContainsAny(text, " =\"\t\n\r") {
		return strconv.Quote(text)
	}
	return text
}
