package stress

import (
	"math/rand"

	"github.com/pingcap/go-ycsb/pkg/generator"
)

type opKind uint8

const (
	opRead opKind = iota
	opAdd
	opRemove
)

// workload produces the operation stream for a single worker goroutine.
// Every worker owns its source, so drawing values never serializes the
// workers on a shared generator.
type workload struct {
	r        *rand.Rand
	zipf     *generator.ScrambledZipfian
	keySpace int64
	readCut  int
	addCut   int
}

func newWorkload(c Config, seed int64) *workload {
	w := &workload{
		r:        rand.New(rand.NewSource(seed)),
		keySpace: c.KeySpace,
		readCut:  c.ReadPercent,
		addCut:   c.ReadPercent + c.AddPercent,
	}
	if c.Distribution == DistributionZipfian {
		w.zipf = generator.NewScrambledZipfian(0, c.KeySpace-1, generator.ZipfianConstant)
	}
	return w
}

// next draws the value for the next operation.
func (w *workload) next() uint64 {
	if w.zipf != nil {
		return uint64(w.zipf.Next(w.r))
	}
	return uint64(w.r.Int63n(w.keySpace))
}

// op draws the kind of the next operation according to the configured mix.
func (w *workload) op() opKind {
	p := w.r.Intn(100)
	if p < w.readCut {
		return opRead
	}
	if p < w.addCut {
		return opAdd
	}
	return opRemove
}
