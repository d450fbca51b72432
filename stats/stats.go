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
	"math"
)

// Stats are statistics about the performance of a cuckooset.Set.
type Stats struct {
	hits       uint64
	misses     uint64
	adds       uint64
	duplicates uint64
	removes    uint64
	kicks      uint64
	resizes    uint64
	rejections uint64
}

// Hits returns the number of times cuckooset.Set lookup methods found the value.
func (s Stats) Hits() uint64 {
	return s.hits
}

// Misses returns the number of times cuckooset.Set lookup methods did not find the value.
func (s Stats) Misses() uint64 {
	return s.misses
}

// Requests returns the number of times cuckooset.Set lookup methods were asked about a value.
//
// NOTE: the values of the metrics are undefined in case of overflow. If you require specific handling,
// we recommend implementing your own Recorder.
func (s Stats) Requests() uint64 {
	return checkedAdd(s.hits, s.misses)
}

// HitRatio returns the ratio of lookups which were hits.
//
// NOTE: hitRatio + missRatio =~ 1.0.
func (s Stats) HitRatio() float64 {
	requests := s.Requests()
	if requests == 0 {
		return 1.0
	}
	return float64(s.hits) / float64(requests)
}

// MissRatio returns the ratio of lookups which were misses.
//
// NOTE: hitRatio + missRatio =~ 1.0.
func (s Stats) MissRatio() float64 {
	requests := s.Requests()
	if requests == 0 {
		return 0.0
	}
	return float64(s.misses) / float64(requests)
}

// Adds returns the number of values newly added to the set.
func (s Stats) Adds() uint64 {
	return s.adds
}

// Duplicates returns the number of insertions dropped because the value was already present.
func (s Stats) Duplicates() uint64 {
	return s.duplicates
}

// Rejections returns the number of insertions that failed because no room could be made
// for the value even after displacement and growth.
func (s Stats) Rejections() uint64 {
	return s.rejections
}

// Inserts returns the total number of insertion attempts, successful or not.
//
// NOTE: the values of the metrics are undefined in case of overflow. If you require specific handling,
// we recommend implementing your own Recorder.
func (s Stats) Inserts() uint64 {
	return checkedAdd(checkedAdd(s.adds, s.duplicates), s.rejections)
}

// Removes returns the number of values removed from the set.
func (s Stats) Removes() uint64 {
	return s.removes
}

// Kicks returns the number of displacement moves performed to make room for insertions.
func (s Stats) Kicks() uint64 {
	return s.kicks
}

// Resizes returns the number of times the set grew its capacity.
func (s Stats) Resizes() uint64 {
	return s.resizes
}

func checkedAdd(a, b uint64) uint64 {
	s := a + b
	if s < a || s < b {
		return math.MaxUint64
	}
	return s
}
