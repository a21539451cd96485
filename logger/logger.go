// Package logger wraps logrus with context-aware, key-value structured
// logging. Instances are constructor-injected; nothing in this package is
// process-global.
package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ncobase/catalog/config"
)

// Logger is a configured logrus instance with context-aware helpers.
type Logger struct {
	*logrus.Logger
	logFile *os.File
}

// New creates a logger from configuration and returns it together with a
// cleanup function releasing any log file handle.
func New(c *config.Logger) (*Logger, func(), error) {
	l := &Logger{Logger: logrus.New()}

	l.SetLevel(logrus.Level(c.Level))

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{})
	}

	switch c.Output {
	case "stderr":
		l.SetOutput(os.Stderr)
	case "file":
		if c.OutputFile != "" {
			if err := os.MkdirAll(filepath.Dir(c.OutputFile), 0o755); err != nil {
				return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
			}
			f, err := os.OpenFile(c.OutputFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open log file: %w", err)
			}
			l.logFile = f
			l.SetOutput(f)
		}
	default:
		l.SetOutput(os.Stdout)
	}

	cleanup := func() {
		if l.logFile != nil {
			_ = l.logFile.Close()
		}
	}
	return l, cleanup, nil
}

// entryFromContext creates a log entry carrying the request id from
// context, if any.
func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if id := RequestIDFrom(ctx); id != "" {
		fields[requestIDKey] = id
	}

	return l.WithFields(fields)
}

// log emits msg with trailing key-value pairs as structured fields.
func (l *Logger) log(ctx context.Context, level logrus.Level, msg string, kv ...any) {
	entry := l.entryFromContext(ctx)

	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		fields[key] = kv[i+1]
	}
	if len(kv)%2 != 0 {
		fields["arg"] = kv[len(kv)-1]
	}

	entry.WithFields(fields).Log(level, msg)
}

func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.DebugLevel, msg, kv...)
}

func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.InfoLevel, msg, kv...)
}

func (l *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.WarnLevel, msg, kv...)
}

func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.ErrorLevel, msg, kv...)
}
