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

package stats

import (
	"github.com/ayjmax/cuckooset/internal/xsync"
)

// Recorder accumulates statistics during the operation of a cuckooset.Set.
// Implementations must be safe for concurrent use.
type Recorder interface {
	// RecordHits records lookups that found their value.
	RecordHits(count int)
	// RecordMisses records lookups that did not find their value.
	RecordMisses(count int)
	// RecordAdds records values newly added to the set.
	RecordAdds(count int)
	// RecordDuplicates records insertions dropped because the value was already present.
	RecordDuplicates(count int)
	// RecordRemoves records values removed from the set.
	RecordRemoves(count int)
	// RecordKicks records displacement moves performed to make room for insertions.
	RecordKicks(count int)
	// RecordResizes records capacity growths.
	RecordResizes(count int)
	// RecordRejections records insertions that failed because no room could be made for the value.
	RecordRejections(count int)
}

// Counter is a goroutine-safe Recorder implementation for use by cuckooset.Set.
type Counter struct {
	hits       *xsync.Adder
	misses     *xsync.Adder
	adds       *xsync.Adder
	duplicates *xsync.Adder
	removes    *xsync.Adder
	kicks      *xsync.Adder
	resizes    *xsync.Adder
	rejections *xsync.Adder
}

var _ Recorder = (*Counter)(nil)

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{
		hits:       xsync.NewAdder(),
		misses:     xsync.NewAdder(),
		adds:       xsync.NewAdder(),
		duplicates: xsync.NewAdder(),
		removes:    xsync.NewAdder(),
		kicks:      xsync.NewAdder(),
		resizes:    xsync.NewAdder(),
		rejections: xsync.NewAdder(),
	}
}

// Snapshot returns a snapshot of this counter's values. Note that this may be an inconsistent view,
// as it may be interleaved with update operations.
//
// NOTE: the values of the metrics are undefined in case of overflow. If you require specific handling,
// we recommend implementing your own Recorder.
func (c *Counter) Snapshot() Stats {
	return Stats{
		hits:       c.hits.Value(),
		misses:     c.misses.Value(),
		adds:       c.adds.Value(),
		duplicates: c.duplicates.Value(),
		removes:    c.removes.Value(),
		kicks:      c.kicks.Value(),
		resizes:    c.resizes.Value(),
		rejections: c.rejections.Value(),
	}
}

// RecordHits records lookups that found their value.
func (c *Counter) RecordHits(count int) {
	//nolint:gosec // there is no overflow
	c.hits.Add(uint64(count))
}

// RecordMisses records lookups that did not find their value.
func (c *Counter) RecordMisses(count int) {
	//nolint:gosec // there is no overflow
	c.misses.Add(uint64(count))
}

// RecordAdds records values newly added to the set.
func (c *Counter) RecordAdds(count int) {
	//nolint:gosec // there is no overflow
	c.adds.Add(uint64(count))
}

// RecordDuplicates records insertions dropped because the value was already present.
func (c *Counter) RecordDuplicates(count int) {
	//nolint:gosec // there is no overflow
	c.duplicates.Add(uint64(count))
}

// RecordRemoves records values removed from the set.
func (c *Counter) RecordRemoves(count int) {
	//nolint:gosec // there is no overflow
	c.removes.Add(uint64(count))
}

// RecordKicks records displacement moves performed to make room for insertions.
func (c *Counter) RecordKicks(count int) {
	//nolint:gosec // there is no overflow
	c.kicks.Add(uint64(count))
}

// RecordResizes records capacity growths.
func (c *Counter) RecordResizes(count int) {
	//nolint:gosec // there is no overflow
	c.resizes.Add(uint64(count))
}

// RecordRejections records insertions that failed because no room could be made for the value.
func (c *Counter) RecordRejections(count int) {
	//nolint:gosec // there is no overflow
	c.rejections.Add(uint64(count))
}
