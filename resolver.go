// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

package hdrsurface

import "sync"

// Names of the platform symbol and the library that canonically exports it.
const (
	setterSymbol  = "ANativeWindow_setBuffersDataSpace"
	setterLibrary = "libnativewindow.so"
)

// resolution is the terminal outcome of the one-shot symbol lookup. The
// zero value is the unresolved state; available distinguishes "tried and
// failed" from "never tried".
type resolution struct {
	fn        setBuffersDataSpaceFunc
	available bool
}

// setterResolver performs the platform symbol lookup at most once per
// process and caches the outcome. The sync.Once guarantees every caller
// observes the same terminal resolution; the Once is never held across a
// platform setter call.
type setterResolver struct {
	linker dynLinker

	once sync.Once
	res  resolution
}

func newSetterResolver(linker dynLinker) *setterResolver {
	return &setterResolver{linker: linker}
}

// resolve returns the terminal resolution, performing the lookup on the
// first call. Unavailability is a normal outcome, not an error: it is
// cached and never retried within the process.
func (r *setterResolver) resolve() resolution {
	r.once.Do(func() {
		// Default scope first: on API 28+ the symbol is usually visible
		// through libraries the runtime already loaded.
		addr, ok := r.linker.LookupDefault(setterSymbol)
		if !ok {
			addr, ok = r.linker.OpenAndLookup(setterLibrary, setterSymbol)
		}
		if !ok {
			Logger().Warn("symbol not available, HDR data space cannot be requested (API < 28?)",
				"symbol", setterSymbol)
			return
		}
		r.res = resolution{fn: r.linker.Bind(addr), available: true}
		Logger().Info("symbol resolved", "symbol", setterSymbol)
	})
	return r.res
}
