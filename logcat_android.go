// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build android

package hdrsurface

import (
	"log/slog"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	logcatBindOnce sync.Once
	logWriteFn     func(prio int32, tag string, text string) int32
)

func bindLogcat() {
	// liblog.so is loaded in every Android process; keep it mapped.
	handle, err := purego.Dlopen("liblog.so", purego.RTLD_LAZY)
	if err != nil {
		return
	}
	addr, err := purego.Dlsym(handle, "__android_log_write")
	if err != nil || addr == 0 {
		return
	}
	purego.RegisterFunc(&logWriteFn, addr)
}

// NewLogcatLogger returns a logger that writes one logcat line per record
// under the "hdrsurface" tag, at the given minimum level. If logcat cannot
// be bound the logger discards everything.
func NewLogcatLogger(level slog.Level) *slog.Logger {
	logcatBindOnce.Do(bindLogcat)
	if logWriteFn == nil {
		return newNopLogger()
	}
	return slog.New(newLineHandler(level, func(prio int32, tag, msg string) {
		logWriteFn(prio, tag, msg)
	}))
}
