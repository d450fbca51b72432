// Copyright (c) 2026 ayjmax. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cuckooset

import (
	"errors"

	"github.com/ayjmax/cuckooset/internal/cuckoo"
	"github.com/ayjmax/cuckooset/stats"
)

// Options should be passed to New to construct a Set.
type Options[T comparable] struct {
	// InitialCapacity specifies the starting number of slots in each of the two
	// internal tables. Providing a large enough estimate at construction time
	// avoids the need for expensive resizing operations later, but setting this
	// value unnecessarily high wastes memory.
	//
	// The value is rounded up to a power of two and is at least 16.
	InitialCapacity int
	// MaxCapacity specifies the per-table slot count above which the set refuses
	// to grow. Once the limit is reached, insertions that cannot be placed fail
	// with ErrCapacityLimit instead of triggering another doubling.
	//
	// The value is rounded up to a power of two. Unbounded by default.
	MaxCapacity int
	// LockStripes specifies the number of mutexes guarding slot positions. The
	// count is fixed for the lifetime of the set and independent of capacity;
	// more stripes reduce contention at the cost of memory.
	//
	// The value is rounded up to a power of two and is at least 1.
	LockStripes int
	// MaxKicks bounds the length of the displacement chain an insertion may walk
	// before the set decides that growing is the only way to make room.
	MaxKicks int
	// Hasher replaces the base hash function. The second candidate position is
	// always derived by rehashing the base hash, so a single function suffices.
	//
	// A good Hasher spreads values evenly; a poor one turns displacement chains
	// into the common case.
	Hasher func(value T) uint64
	// StatsRecorder accumulates statistics during the operation of a Set.
	//
	// Statistics are disabled by default.
	StatsRecorder stats.Recorder
	// Logger specifies the Logger implementation that will be used for logging
	// warnings and errors.
	//
	// A slog-based logger is used by default.
	Logger Logger
}

func (o *Options[T]) validate() error {
	if o.InitialCapacity < 0 {
		return errors.New("cuckooset: initial capacity should be positive")
	}
	if o.MaxCapacity < 0 {
		return errors.New("cuckooset: maximum capacity should be positive")
	}
	if o.MaxCapacity > 0 && o.InitialCapacity > o.MaxCapacity {
		return errors.New("cuckooset: initial capacity is greater than maximum capacity")
	}
	if o.LockStripes < 0 {
		return errors.New("cuckooset: lock stripes should be positive")
	}
	if o.MaxKicks < 0 {
		return errors.New("cuckooset: max kicks should be positive")
	}
	return nil
}

func (o *Options[T]) setDefaults() {
	if o.StatsRecorder == nil {
		o.StatsRecorder = noopRecorder{}
	}
	if o.Logger == nil {
		o.Logger = newDefaultLogger()
	}
}

func (o *Options[T]) toTableOptions() []cuckoo.Option[T] {
	opts := make([]cuckoo.Option[T], 0, 6)
	if o.InitialCapacity > 0 {
		opts = append(opts, cuckoo.WithInitialCapacity[T](o.InitialCapacity))
	}
	if o.MaxCapacity > 0 {
		opts = append(opts, cuckoo.WithMaxCapacity[T](o.MaxCapacity))
	}
	if o.LockStripes > 0 {
		opts = append(opts, cuckoo.WithLockStripes[T](o.LockStripes))
	}
	if o.MaxKicks > 0 {
		opts = append(opts, cuckoo.WithMaxKicks[T](o.MaxKicks))
	}
	if o.Hasher != nil {
		opts = append(opts, cuckoo.WithHasher[T](o.Hasher))
	}
	opts = append(opts, cuckoo.WithRecorder[T](o.StatsRecorder))
	return opts
}
