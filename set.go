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
	"context"
	"errors"

	"github.com/ayjmax/cuckooset/internal/cuckoo"
	"github.com/ayjmax/cuckooset/stats"
)

var (
	// ErrOverload is returned by Add when repeated displacement and resize
	// attempts did not produce a free slot for the value.
	ErrOverload = cuckoo.ErrOverload
	// ErrCapacityLimit is returned by Add when making room for the value would
	// require growing beyond Options.MaxCapacity.
	ErrCapacityLimit = cuckoo.ErrCapacityLimit
)

var errDrawBudget = errors.New("cuckooset: draw budget exhausted before reaching the target size")

type noopRecorder struct{}

func (nr noopRecorder) RecordHits(count int)       {}
func (nr noopRecorder) RecordMisses(count int)     {}
func (nr noopRecorder) RecordAdds(count int)       {}
func (nr noopRecorder) RecordDuplicates(count int) {}
func (nr noopRecorder) RecordRemoves(count int)    {}
func (nr noopRecorder) RecordKicks(count int)      {}
func (nr noopRecorder) RecordResizes(count int)    {}
func (nr noopRecorder) RecordRejections(count int) {}

// Set is a concurrent unordered collection of unique comparable values. Every
// value occupies exactly one of two candidate positions derived from its hash,
// so lookups and removals inspect at most two slots. Insertions displace
// resident values between their candidate positions to make room and grow the
// set when displacement cannot. All methods are safe for concurrent use.
type Set[T comparable] struct {
	table    *cuckoo.Table[T]
	recorder stats.Recorder
	logger   Logger
}

// New creates a Set configured by opts. A nil opts is equivalent to the zero
// Options.
func New[T comparable](opts *Options[T]) (*Set[T], error) {
	if opts == nil {
		opts = &Options[T]{}
	}
	o := *opts
	if err := o.validate(); err != nil {
		return nil, err
	}
	o.setDefaults()

	return &Set[T]{
		table:    cuckoo.NewTable[T](o.toTableOptions()...),
		recorder: o.StatsRecorder,
		logger:   o.Logger,
	}, nil
}

// Must is like New, but panics when opts are invalid.
func Must[T comparable](opts *Options[T]) *Set[T] {
	s, err := New(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Add inserts value into the set. It returns true when the value was added and
// false with a nil error when it was already present. When no room can be made
// even after displacement and growth, Add returns false with ErrOverload or
// ErrCapacityLimit; no resident value is ever lost in the process.
func (s *Set[T]) Add(value T) (bool, error) {
	added, err := s.table.Insert(value)
	switch {
	case err != nil:
		s.recorder.RecordRejections(1)
		return false, err
	case added:
		s.recorder.RecordAdds(1)
	default:
		s.recorder.RecordDuplicates(1)
	}
	return added, nil
}

// Contains reports whether value is present in the set.
func (s *Set[T]) Contains(value T) bool {
	if s.table.Has(value) {
		s.recorder.RecordHits(1)
		return true
	}
	s.recorder.RecordMisses(1)
	return false
}

// Remove deletes value from the set and reports whether it was present.
func (s *Set[T]) Remove(value T) bool {
	if s.table.Delete(value) {
		s.recorder.RecordRemoves(1)
		return true
	}
	return false
}

// Size returns the number of values in the set. The count is exact when no
// mutation is in flight.
func (s *Set[T]) Size() int {
	return s.table.Size()
}

// Capacity returns the current number of slots in each of the two internal
// tables. The set holds at most twice this many values.
func (s *Set[T]) Capacity() int {
	return s.table.Capacity()
}

// Clear removes all values from the set, shrinking it back to its initial
// capacity.
func (s *Set[T]) Clear() {
	s.table.Clear()
}

// Range calls f for present values until f returns false. The sweep is weakly
// consistent: it runs against one generation of the set without locking, so
// values displaced concurrently may be visited twice or not at all. A
// quiescent sweep is exact.
func (s *Set[T]) Range(f func(value T) bool) {
	s.table.Range(f)
}

// Populate draws values from draw and adds them until the set holds at least
// target values. At most 4*target draws are attempted, so a draw function that
// keeps producing duplicates cannot stall the caller forever; stopping short
// of the target is logged as a warning. Errors from Add are logged and
// returned. Populate panics when draw is nil.
func (s *Set[T]) Populate(ctx context.Context, target int, draw func() T) error {
	if draw == nil {
		panic("cuckooset: draw function should not be nil")
	}
	budget := 4 * target
	for attempt := 0; attempt < budget; attempt++ {
		if s.Size() >= target {
			return nil
		}
		if _, err := s.Add(draw()); err != nil {
			s.logger.Error(ctx, "cuckooset: populate failed to add a drawn value", err)
			return err
		}
	}
	if s.Size() < target {
		s.logger.Warn(ctx, "cuckooset: populate stopped short of its target", errDrawBudget)
	}
	return nil
}
