// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the go-sync-keeper client and server.
//
// [Logger] embeds zerolog.Logger, so the whole zerolog API is available on
// it. Components receive a *Logger at construction; request handlers pick
// the request-scoped one up with [FromRequest] or [FromContext].
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout for long-running processes such
// as the remote authority server. Every entry carries role, a timestamp and
// the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// FileOptions controls where and how [NewClientLogger] rotates its output.
type FileOptions struct {
	// Path is the log file. Empty means stderr.
	Path string
	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int
	// MaxBackups is how many rotated files are kept.
	MaxBackups int
}

// NewClientLogger returns a logger for the sync client. Stdout belongs to
// command output, so logs go to a rotating file or, without one, to stderr.
func NewClientLogger(role string, opts FileOptions) *Logger {
	return newLogger(newClientWriter(opts), role)
}

func newLogger(w io.Writer, role string) *Logger {
	setGlobals()

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

func newClientWriter(opts FileOptions) io.Writer {
	if opts.Path == "" {
		return os.Stderr
	}

	return &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	}
}

func setGlobals() {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// SetLevel sets the process-wide minimum level from a zerolog level name.
// An empty name means debug.
func SetLevel(name string) error {
	if name == "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}

	zerolog.SetGlobalLevel(level)
	return nil
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be given extra fields without
// affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the
// trace ID middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// context logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
