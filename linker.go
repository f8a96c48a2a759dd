// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

package hdrsurface

// JNIEnv is the JNI environment pointer of the calling thread, passed
// through as an opaque value. It is only valid for the duration of the
// foreign call that produced it.
type JNIEnv uintptr

// Surface is an opaque android.view.Surface reference (a jobject). Like
// JNIEnv it must not be retained beyond the call it arrived in.
type Surface uintptr

// NativeWindow is an ANativeWindow pointer. The platform refcounts it;
// this package balances every acquisition with exactly one release.
type NativeWindow uintptr

// setBuffersDataSpaceFunc is the bound platform setter
// (ANativeWindow_setBuffersDataSpace).
type setBuffersDataSpaceFunc func(window uintptr, dataSpace int32) int32

// dynLinker is the runtime dynamic-linker facility the resolver runs on.
// The platform implementation lives in bridge_unix.go; tests substitute a
// fake that counts lookups.
type dynLinker interface {
	// LookupDefault searches the images already loaded into the process
	// (RTLD_DEFAULT scope) for the named symbol.
	LookupDefault(symbol string) (uintptr, bool)

	// OpenAndLookup loads the named shared library with lazy binding and
	// searches it for the symbol. The library stays mapped for the process
	// lifetime; it is never unloaded, so addresses it returns remain valid.
	OpenAndLookup(library, symbol string) (uintptr, bool)

	// Bind turns a resolved symbol address into a callable setter.
	Bind(addr uintptr) setBuffersDataSpaceFunc
}

// windowing bridges a managed surface to its ANativeWindow. The platform
// implementation lives in bridge_unix.go; tests substitute a fake that
// balances acquisitions against releases.
type windowing interface {
	// FromSurface acquires a native window from the surface, incrementing
	// its reference count. ok is false if the surface is invalid or the
	// conversion failed; no reference is held in that case.
	FromSurface(env JNIEnv, surface Surface) (window NativeWindow, ok bool)

	// Release drops the reference acquired by FromSurface. Must be called
	// exactly once per successful acquisition.
	Release(window NativeWindow)
}
