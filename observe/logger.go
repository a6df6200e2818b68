package observe

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel represents a logging level.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLogLevel parses a string log level. Unknown names default to info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// structuredLogger is a JSON structured logger implementation.
type structuredLogger struct {
	level     LogLevel
	writer    io.Writer
	mu        sync.Mutex
	baseAttrs map[string]any
}

// NewLogger creates a new structured logger with the given level.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter creates a new structured logger with a custom writer.
func NewLoggerWithWriter(level string, w io.Writer) Logger {
	return &structuredLogger{
		level:     ParseLogLevel(level),
		writer:    w,
		baseAttrs: make(map[string]any),
	}
}

// WithCache returns a logger with cache context attached.
func (l *structuredLogger) WithCache(meta CacheMeta) Logger {
	attrs := make(map[string]any, len(l.baseAttrs)+3)
	for k, v := range l.baseAttrs {
		attrs[k] = v
	}

	attrs["cache.name"] = meta.Name
	if meta.Policy != "" {
		attrs["cache.policy"] = meta.Policy
	}
	attrs["cache.capacity"] = capacityLabel(meta.Capacity)

	return &structuredLogger{
		level:     l.level,
		writer:    l.writer,
		baseAttrs: attrs,
	}
}

func (l *structuredLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelInfo, msg, fields)
}

func (l *structuredLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelWarn, msg, fields)
}

func (l *structuredLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelError, msg, fields)
}

func (l *structuredLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelDebug, msg, fields)
}

func (l *structuredLogger) log(ctx context.Context, level LogLevel, msg string, fields []Field) {
	if level < l.level {
		return
	}

	entry := make(map[string]any, len(l.baseAttrs)+len(fields)+3)

	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level.String()
	entry["msg"] = msg

	// Cache context
	for k, v := range l.baseAttrs {
		entry[k] = v
	}

	// Fields, with argument/result redaction
	for _, f := range fields {
		if isRedactedField(f.Key) {
			entry[f.Key] = "[REDACTED]"
		} else {
			entry[f.Key] = f.Value
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return // Silently drop malformed log entries
	}

	l.writer.Write(data)
	l.writer.Write([]byte("\n"))
}

// isRedactedField returns true if the field should be redacted.
func isRedactedField(key string) bool {
	for _, k := range RedactedFields {
		if key == k {
			return true
		}
	}
	return false
}

// Ensure structuredLogger implements Logger
var _ Logger = (*structuredLogger)(nil)
