// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build android && cgo

// Builds hdrsurface as a c-shared library (libhdrsurface.so) exposing the
// JNI entry point managed callers bind with System.loadLibrary:
//
//	package com.lumakit.hdrsurface;
//
//	public final class HdrSurface {
//	    static { System.loadLibrary("hdrsurface"); }
//	    public static native int nativeSetBuffersDataSpace(Surface surface, int dataSpace);
//	}
package main

/*
#include <jni.h>
*/
import "C"

import (
	"log/slog"
	"unsafe"

	"github.com/lumakit/hdrsurface"
)

func init() {
	hdrsurface.SetLogger(hdrsurface.NewLogcatLogger(slog.LevelInfo))
}

//export Java_com_lumakit_hdrsurface_HdrSurface_nativeSetBuffersDataSpace
func Java_com_lumakit_hdrsurface_HdrSurface_nativeSetBuffersDataSpace(env *C.JNIEnv, clazz C.jclass, surface C.jobject, dataSpace C.jint) C.jint {
	status := hdrsurface.SetBuffersDataSpace(
		hdrsurface.JNIEnv(uintptr(unsafe.Pointer(env))),
		hdrsurface.Surface(uintptr(unsafe.Pointer(surface))),
		hdrsurface.DataSpace(dataSpace),
	)
	return C.jint(status)
}

func main() {}
