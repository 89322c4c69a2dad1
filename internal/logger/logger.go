// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the fleet drivers service.
//
// Every component receives a *Logger at construction time. Request handling
// code does not hold on to it: the trace id middleware stores a request
// scoped logger in the context and downstream code pulls it back out with
// FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the optional log file.
const (
	rotateMaxSizeMB  = 10
	rotateMaxBackups = 7
	rotateMaxAgeDays = 7
)

// Logger embeds zerolog.Logger, so Debug, Info, Warn and friends are called
// on it directly.
type Logger struct {
	zerolog.Logger
}

type options struct {
	level  zerolog.Level
	file   string
	output io.Writer
}

// Option customizes a logger built by NewLogger.
type Option func(*options)

// WithLevel sets the global level from a zerolog level name. Unknown or
// empty names keep the debug default.
func WithLevel(level string) Option {
	return func(o *options) {
		if level == "" {
			return
		}
		if lvl, err := zerolog.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// WithFile tees every entry into a size-rotated file at path. An empty path
// disables the file.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithOutput replaces os.Stdout as the primary writer.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// NewLogger builds the JSON logger for one component. Entries carry the
// role label, a timestamp and a "func" field with the calling function name.
func NewLogger(role string, opts ...Option) *Logger {
	o := &options{
		level:  zerolog.DebugLevel,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	zerolog.SetGlobalLevel(o.level)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	w := o.output
	if o.file != "" {
		w = zerolog.MultiLevelWriter(o.output, &lumberjack.Logger{
			Filename:   o.file,
			MaxSize:    rotateMaxSizeMB,
			MaxBackups: rotateMaxBackups,
			MaxAge:     rotateMaxAgeDays,
			Compress:   true,
		})
	}

	zl := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{zl}
}

// Nop returns a logger that writes nothing. Mostly useful in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver so fields can be added to the copy only.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// StdLogger adapts l for APIs that only accept a *log.Logger, such as
// http.Server.ErrorLog. Every line is written at error level.
func (l *Logger) StdLogger() *stdlog.Logger {
	return stdlog.New(errorWriter{l.Logger}, "", 0)
}

type errorWriter struct {
	logger zerolog.Logger
}

func (w errorWriter) Write(p []byte) (int, error) {
	w.logger.Error().Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one it returns zerolog's disabled logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
