// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

// Package hdrsurface requests an HDR output data space (HDR10 PQ or HLG) on
// an Android surface from Go code running inside the application process.
//
// The platform operation behind it, ANativeWindow_setBuffersDataSpace, is a
// public NDK symbol that exists only on API 28 and newer. The package never
// links against it: on the first call it resolves the symbol through the
// dynamic linker, first across the images already loaded into the process,
// then by loading libnativewindow.so, so a binary built for older devices
// still runs there and simply reports the capability as unavailable.
//
// Basic usage from a JNI entry point:
//
//	status := hdrsurface.SetBuffersDataSpace(env, surface, hdrsurface.DataSpaceBT2020PQ)
//	switch status {
//	case hdrsurface.StatusOK:
//	    // SurfaceFlinger now interprets buffers on this surface as HDR10.
//	case hdrsurface.StatusUnavailable:
//	    // API < 28; fall back to SDR output.
//	case hdrsurface.StatusNoWindow:
//	    // The surface is invalid or already released.
//	default:
//	    // Platform-defined negative error code, returned verbatim.
//	}
//
// The libhdrsurface directory builds the package as a c-shared library with
// a ready-made JNI export for managed callers.
//
// Resolution happens at most once per process and its outcome is final:
// a process that started on an older release never re-probes, and a resolved
// function pointer stays valid for the process lifetime. Any shared library
// the package loads (libnativewindow.so, libandroid.so, liblog.so) is kept
// mapped until the process exits and is never unloaded; that retention is
// part of this package's contract, not a dynamic-linker accident.
//
// Every call is independent: the native window acquired from the surface is
// released before the call returns, on success and on failure alike. The
// package holds no reference to the surface or the window between calls and
// is safe for concurrent use from any thread.
//
// The package produces no log output by default. Call [SetLogger] to enable
// diagnostics; on Android, [NewLogcatLogger] builds a logger that writes to
// logcat under the "hdrsurface" tag.
package hdrsurface
