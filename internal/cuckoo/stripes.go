package cuckoo

import (
	"sync"
	"unsafe"

	"github.com/ayjmax/cuckooset/internal/xruntime"
)

type paddedMutex struct {
	mu sync.Mutex
	//nolint:unused // prevents false sharing
	padding [xruntime.CacheLineSize - unsafe.Sizeof(sync.Mutex{})]byte
}

// stripeSet is the fixed array of mutexes guarding bucket positions.
// Bucket index i maps to stripe i & mask. All acquisition is in ascending
// stripe order: a pair for regular operations, the full sweep for resize
// and clear. Ascending order on every path is what makes a cycle in the
// wait-for graph impossible.
type stripeSet struct {
	stripes []paddedMutex
	mask    uint64
}

func newStripeSet(count uint32) *stripeSet {
	return &stripeSet{
		stripes: make([]paddedMutex, count),
		mask:    uint64(count - 1),
	}
}

func (s *stripeSet) forIndex(bucketIdx uint64) uint64 {
	return bucketIdx & s.mask
}

func (s *stripeSet) lockPair(a, b uint64) {
	if a > b {
		a, b = b, a
	}
	s.stripes[a].mu.Lock()
	if b != a {
		s.stripes[b].mu.Lock()
	}
}

func (s *stripeSet) unlockPair(a, b uint64) {
	if a > b {
		a, b = b, a
	}
	if b != a {
		s.stripes[b].mu.Unlock()
	}
	s.stripes[a].mu.Unlock()
}

// lockAll acquires every stripe in ascending order. While it is held no
// other operation can be mid-flight against the table.
func (s *stripeSet) lockAll() {
	for i := range s.stripes {
		s.stripes[i].mu.Lock()
	}
}

func (s *stripeSet) unlockAll() {
	for i := len(s.stripes) - 1; i >= 0; i-- {
		s.stripes[i].mu.Unlock()
	}
}
