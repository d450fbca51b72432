// Copyright (c) 2026 ayjmax. All rights reserved.
// Copyright (c) 2021 Andrey Pechkurov
//
// Copyright notice. This code is a fork of xsync.Counter from this file with some changes:
// https://github.com/puzpuzpuz/xsync/blob/main/counter.go
//
// Use of this source code is governed by a MIT license that can be found
// at https://github.com/puzpuzpuz/xsync/blob/main/LICENSE

package xsync

import (
	"sync"
	"sync/atomic"

	"github.com/ayjmax/cuckooset/internal/xmath"
	"github.com/ayjmax/cuckooset/internal/xruntime"
)

var tokenPool sync.Pool

type token struct {
	idx     uint32
	padding [xruntime.CacheLineSize - 4]byte
}

type ashard struct {
	c       uint64
	padding [xruntime.CacheLineSize - 8]byte
}

// Adder is a striped uint64 counter.
//
// Much faster than a single atomic counter in write heavy scenarios.
type Adder struct {
	shards []ashard
	mask   uint32
}

// NewAdder creates a new Adder with the sum initialized to zero.
func NewAdder() *Adder {
	nshards := xmath.RoundUpPowerOf2(xruntime.Parallelism())
	return &Adder{
		shards: make([]ashard, nshards),
		mask:   nshards - 1,
	}
}

// Add adds delta to the sum.
func (a *Adder) Add(delta uint64) {
	t, ok := tokenPool.Get().(*token)
	if !ok {
		t = &token{}
		t.idx = xruntime.Fastrand()
	}
	for {
		shard := &a.shards[t.idx&a.mask]
		cnt := atomic.LoadUint64(&shard.c)
		if atomic.CompareAndSwapUint64(&shard.c, cnt, cnt+delta) {
			break
		}
		t.idx = xruntime.Fastrand()
	}
	tokenPool.Put(t)
}

// Value returns the current sum. The value is not an atomic snapshot:
// adds that run concurrently with Value may or may not be observed.
func (a *Adder) Value() uint64 {
	v := uint64(0)
	for i := 0; i < len(a.shards); i++ {
		shard := &a.shards[i]
		v += atomic.LoadUint64(&shard.c)
	}
	return v
}
