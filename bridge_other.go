// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !linux && !darwin

package hdrsurface

// Platforms without dlopen/dlsym semantics cannot host the Android setter;
// the resolver reports it unavailable and every dispatch returns
// StatusUnavailable.

type platformLinker struct{}

func (platformLinker) LookupDefault(string) (uintptr, bool) { return 0, false }

func (platformLinker) OpenAndLookup(string, string) (uintptr, bool) { return 0, false }

func (platformLinker) Bind(uintptr) setBuffersDataSpaceFunc { return nil }

type platformWindowing struct{}

func (platformWindowing) FromSurface(JNIEnv, Surface) (NativeWindow, bool) { return 0, false }

func (platformWindowing) Release(NativeWindow) {}
