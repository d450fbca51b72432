// Copyright (c) 2026 ayjmax. All rights reserved.
// Copyright (c) 2021 Andrey Pechkurov
//
// Copyright notice. This code is a fork of tests for xsync.Counter from this file with some changes:
// https://github.com/puzpuzpuz/xsync/blob/main/counter_test.go
//
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/puzpuzpuz/xsync/blob/main/LICENSE

package xsync

import (
	"runtime"
	"sync"
	"testing"
)

func TestAdder_Add(t *testing.T) {
	t.Parallel()

	a := NewAdder()
	for i := 0; i < 100; i++ {
		if v := a.Value(); v != uint64(i*42) {
			t.Fatalf("got %v, want %d", v, i*42)
		}
		a.Add(42)
	}
}

func testParallelAdds(t *testing.T, adders, gomaxprocs int) {
	t.Helper()
	runtime.GOMAXPROCS(gomaxprocs)

	a := NewAdder()
	const adds = 10_000
	var wg sync.WaitGroup
	wg.Add(adders)
	for i := 0; i < adders; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < adds; j++ {
				a.Add(1)
			}
		}()
	}
	wg.Wait()

	if expected, v := uint64(adders*adds), a.Value(); v != expected {
		t.Fatalf("got %d, want %d", v, expected)
	}
}

func TestAdder_ParallelAdds(t *testing.T) {
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(0))

	testParallelAdds(t, 4, 2)
	testParallelAdds(t, 16, 4)
	testParallelAdds(t, 64, 8)
}
