package xruntime

import (
	"runtime"
	_ "unsafe"
)

const (
	// CacheLineSize is useful for preventing false sharing.
	CacheLineSize = 64
)

// Parallelism returns the number of goroutines that can be expected to
// run concurrently on the current machine.
func Parallelism() uint32 {
	maxProcs := uint32(runtime.GOMAXPROCS(0))
	numCPU := uint32(runtime.NumCPU())
	if maxProcs < numCPU {
		return maxProcs
	}
	return numCPU
}

// Fastrand exposes the per-P random generator of the runtime.
//
//go:noescape
//go:linkname Fastrand runtime.fastrand
func Fastrand() uint32
