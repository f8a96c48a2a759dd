// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

package hdrsurface

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Tag identifies this package's lines in logcat output.
const Tag = "hdrsurface"

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// race with logging from any thread.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger used by hdrsurface. By default the
// package produces no output. Pass nil to restore silence.
//
// Levels used: Debug for per-call success, Info for one-time resolution
// events, Warn for unavailability and per-call failures.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Android log priorities (android_LogPriority).
const (
	prioDebug int32 = 3
	prioInfo  int32 = 4
	prioWarn  int32 = 5
	prioError int32 = 6
)

func logcatPriority(level slog.Level) int32 {
	switch {
	case level < slog.LevelInfo:
		return prioDebug
	case level < slog.LevelWarn:
		return prioInfo
	case level < slog.LevelError:
		return prioWarn
	}
	return prioError
}

// lineHandler formats each record as a single "msg key=value ..." line and
// forwards it to write with a logcat priority. The logcat logger builds on
// it; tests substitute a recording write func.
type lineHandler struct {
	write func(prio int32, tag, msg string)
	level slog.Level
	attrs []attrPair
	group string
}

type attrPair struct {
	key   string
	value string
}

func newLineHandler(level slog.Level, write func(prio int32, tag, msg string)) *lineHandler {
	return &lineHandler{write: write, level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	b.WriteString(rec.Message)
	for _, a := range h.attrs {
		b.WriteByte(' ')
		b.WriteString(a.key)
		b.WriteByte('=')
		b.WriteString(a.value)
	}
	rec.Attrs(func(a slog.Attr) bool {
		b.WriteByte(' ')
		b.WriteString(h.qualify(a.Key))
		b.WriteByte('=')
		b.WriteString(a.Value.String())
		return true
	})
	h.write(logcatPriority(rec.Level), Tag, b.String())
	return nil
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, attrPair{key: nh.qualify(a.Key), value: a.Value.String()})
	}
	return nh
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	if nh.group != "" {
		nh.group += "."
	}
	nh.group += name
	return nh
}

func (h *lineHandler) clone() *lineHandler {
	nh := *h
	nh.attrs = append([]attrPair(nil), h.attrs...)
	return &nh
}

func (h *lineHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}
