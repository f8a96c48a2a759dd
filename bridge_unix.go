// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package hdrsurface

import (
	"sync"

	"github.com/ebitengine/purego"
)

// platformLinker implements dynLinker on the real dynamic linker. Libraries
// opened here are deliberately never dlclosed: resolved addresses must stay
// valid for the process lifetime.
type platformLinker struct{}

func (platformLinker) LookupDefault(symbol string) (uintptr, bool) {
	addr, err := purego.Dlsym(purego.RTLD_DEFAULT, symbol)
	return addr, err == nil && addr != 0
}

func (platformLinker) OpenAndLookup(library, symbol string) (uintptr, bool) {
	handle, err := purego.Dlopen(library, purego.RTLD_LAZY)
	if err != nil {
		return 0, false
	}
	addr, err := purego.Dlsym(handle, symbol)
	return addr, err == nil && addr != 0
}

func (platformLinker) Bind(addr uintptr) setBuffersDataSpaceFunc {
	var fn setBuffersDataSpaceFunc
	purego.RegisterFunc(&fn, addr)
	return fn
}

// platformWindowing bridges surfaces through ANativeWindow_fromSurface and
// ANativeWindow_release from libandroid.so, bound once per process.
type platformWindowing struct{}

var (
	windowBindOnce sync.Once
	fromSurfaceFn  func(env uintptr, surface uintptr) uintptr
	releaseFn      func(window uintptr)
)

func bindWindowFns() {
	handle, err := purego.Dlopen("libandroid.so", purego.RTLD_LAZY)
	if err != nil {
		Logger().Warn("libandroid.so not available", "error", err)
		return
	}
	from, err := purego.Dlsym(handle, "ANativeWindow_fromSurface")
	if err != nil || from == 0 {
		Logger().Warn("ANativeWindow_fromSurface not available")
		return
	}
	rel, err := purego.Dlsym(handle, "ANativeWindow_release")
	if err != nil || rel == 0 {
		Logger().Warn("ANativeWindow_release not available")
		return
	}
	purego.RegisterFunc(&fromSurfaceFn, from)
	purego.RegisterFunc(&releaseFn, rel)
}

func (platformWindowing) FromSurface(env JNIEnv, surface Surface) (NativeWindow, bool) {
	windowBindOnce.Do(bindWindowFns)
	if fromSurfaceFn == nil || env == 0 || surface == 0 {
		return 0, false
	}
	w := fromSurfaceFn(uintptr(env), uintptr(surface))
	return NativeWindow(w), w != 0
}

func (platformWindowing) Release(window NativeWindow) {
	if releaseFn == nil || window == 0 {
		return
	}
	releaseFn(uintptr(window))
}
