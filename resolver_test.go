// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

package hdrsurface

import (
	"sync"
	"testing"
)

func TestSetterResolver_DefaultScopePreferred(t *testing.T) {
	linker := &fakeLinker{defaultAddr: 0x1, libraryAddr: 0x2, setter: (&stubSetter{}).fn}
	r := newSetterResolver(linker)

	res := r.resolve()
	if !res.available {
		t.Fatal("resolve() unavailable, want available")
	}
	if linker.defaultLookups != 1 || linker.libraryLookups != 0 {
		t.Errorf("lookups default/library = %d/%d, want 1/0", linker.defaultLookups, linker.libraryLookups)
	}
	if linker.lastSymbol != "ANativeWindow_setBuffersDataSpace" {
		t.Errorf("looked up %q, want ANativeWindow_setBuffersDataSpace", linker.lastSymbol)
	}
}

func TestSetterResolver_LibraryFallback(t *testing.T) {
	linker := &fakeLinker{libraryAddr: 0x2, setter: (&stubSetter{}).fn}
	r := newSetterResolver(linker)

	res := r.resolve()
	if !res.available {
		t.Fatal("resolve() unavailable, want available via library")
	}
	if linker.defaultLookups != 1 || linker.libraryLookups != 1 {
		t.Errorf("lookups default/library = %d/%d, want 1/1", linker.defaultLookups, linker.libraryLookups)
	}
	if linker.lastLibrary != "libnativewindow.so" {
		t.Errorf("loaded %q, want libnativewindow.so", linker.lastLibrary)
	}
}

func TestSetterResolver_Unavailable(t *testing.T) {
	linker := &fakeLinker{}
	r := newSetterResolver(linker)

	for i := 0; i < 3; i++ {
		if res := r.resolve(); res.available {
			t.Fatalf("resolve() call %d available, want unavailable", i)
		}
		if res := r.resolve(); res.fn != nil {
			t.Fatalf("resolve() call %d returned a function while unavailable", i)
		}
	}
	if n := linker.lookups(); n != 2 {
		t.Errorf("lookups = %d, want 2 (both scopes probed exactly once)", n)
	}
}

func TestSetterResolver_OneShot(t *testing.T) {
	setter := &stubSetter{}
	linker := &fakeLinker{defaultAddr: 0x1, setter: setter.fn}
	r := newSetterResolver(linker)

	first := r.resolve()
	for i := 0; i < 10; i++ {
		res := r.resolve()
		if res.available != first.available {
			t.Fatal("resolution changed between calls")
		}
	}
	if linker.lookups() != 1 {
		t.Errorf("lookups = %d, want 1", linker.lookups())
	}
	if linker.binds != 1 {
		t.Errorf("binds = %d, want 1 (function identity must be stable)", linker.binds)
	}
}

func TestSetterResolver_ConcurrentResolve(t *testing.T) {
	linker := &fakeLinker{defaultAddr: 0x1, setter: (&stubSetter{}).fn}
	r := newSetterResolver(linker)

	const workers = 64
	results := make([]resolution, workers)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			results[i] = r.resolve()
		}(i)
	}
	start.Done()
	done.Wait()

	for i, res := range results {
		if !res.available {
			t.Errorf("worker %d observed unavailable, want available", i)
		}
	}
	if n := linker.lookups(); n != 1 {
		t.Errorf("lookups = %d, want 1", n)
	}
}
