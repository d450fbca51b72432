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

package cuckooset_test

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pingcap/go-ycsb/pkg/generator"

	"github.com/ayjmax/cuckooset"
)

const benchDataLength = 2 << 14

type benchCase struct {
	name            string
	writePercentage uint64
}

var benchCases = []benchCase{
	{"reads=100%,writes=0%", 0},
	{"reads=75%,writes=25%", 25},
	{"reads=50%,writes=50%", 50},
}

func newZipfValues() []uint64 {
	// populate using realistic distribution
	z := generator.NewScrambledZipfian(0, benchDataLength/3, generator.ZipfianConstant)
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	values := make([]uint64, 0, benchDataLength)
	for i := 0; i < benchDataLength; i++ {
		//nolint:gosec // the generator never returns negative values
		values = append(values, uint64(z.Next(r)))
	}
	return values
}

func runParallelBenchmark(b *testing.B, benchFunc func(pb *testing.PB)) {
	b.Helper()

	b.ResetTimer()
	start := time.Now()
	b.RunParallel(benchFunc)
	opsPerSec := float64(b.N) / time.Since(start).Seconds()
	b.ReportMetric(opsPerSec, "ops/s")
}

func runSetBenchmark(b *testing.B, benchCase benchCase, values []uint64) {
	b.Helper()

	s := cuckooset.Must(&cuckooset.Options[uint64]{InitialCapacity: benchDataLength})
	for i := 0; i < benchDataLength; i++ {
		_, _ = s.Add(values[i])
	}

	rc := uint64(0)
	mask := benchDataLength - 1

	runParallelBenchmark(b, func(pb *testing.PB) {
		index := int(rand.Uint32() & uint32(mask))
		mc := atomic.AddUint64(&rc, 1)
		if benchCase.writePercentage*mc/100 != benchCase.writePercentage*(mc-1)/100 {
			for pb.Next() {
				v := values[index&mask]
				if added, _ := s.Add(v); !added {
					s.Remove(v)
				}
				index++
			}
		} else {
			for pb.Next() {
				s.Contains(values[index&mask])
				index++
			}
		}
	})
}

func BenchmarkSet(b *testing.B) {
	values := newZipfValues()
	for _, benchCase := range benchCases {
		b.Run(fmt.Sprintf("zipf_%s", benchCase.name), func(b *testing.B) {
			runSetBenchmark(b, benchCase, values)
		})
	}
}
