// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

package hdrsurface

import "sync"

// shim wires the one-shot resolver to a windowing backend. It is stateless
// between calls apart from the cached resolution.
type shim struct {
	resolver *setterResolver
	windows  windowing
}

func newShim(linker dynLinker, windows windowing) *shim {
	return &shim{resolver: newSetterResolver(linker), windows: windows}
}

func (s *shim) setBuffersDataSpace(env JNIEnv, surface Surface, dataSpace DataSpace) Status {
	res := s.resolver.resolve()
	if !res.available {
		return StatusUnavailable
	}

	window, ok := s.windows.FromSurface(env, surface)
	if !ok {
		Logger().Warn("failed to get ANativeWindow from surface", "data_space", dataSpace)
		return StatusNoWindow
	}
	defer s.windows.Release(window)

	r := res.fn(uintptr(window), int32(dataSpace))
	if r != 0 {
		Logger().Warn("setBuffersDataSpace rejected by platform", "data_space", dataSpace, "code", r)
	} else {
		Logger().Debug("data space set", "data_space", dataSpace)
	}
	return Status(r)
}

var (
	defaultShim     *shim
	defaultShimOnce sync.Once
)

// SetBuffersDataSpace asks the compositor to interpret buffers submitted to
// surface under the given data space. env and surface are the JNI values of
// the calling foreign frame and are not retained.
//
// It returns [StatusUnavailable] without touching the surface when the
// platform setter does not exist on this OS release, [StatusNoWindow] when
// no native window could be acquired from the surface (including a null
// surface), and otherwise the platform's own return code, 0 on success.
//
// Safe for concurrent use from any thread; concurrent calls on the same
// surface are ordered by the platform, not by this package.
func SetBuffersDataSpace(env JNIEnv, surface Surface, dataSpace DataSpace) Status {
	defaultShimOnce.Do(func() {
		defaultShim = newShim(platformLinker{}, platformWindowing{})
	})
	return defaultShim.setBuffersDataSpace(env, surface, dataSpace)
}
