package stress

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ayjmax/cuckooset"
	"github.com/ayjmax/cuckooset/stats"
)

// tally is one worker's private view of the run.
type tally struct {
	reads   int
	hits    int
	adds    int
	added   int
	removes int
	removed int
}

// Result aggregates the outcome of a stress run across all workers.
type Result struct {
	Prefilled int
	Reads     int
	Hits      int
	Adds      int
	Added     int
	Removes   int
	Removed   int
	Elapsed   time.Duration
	FinalSize int
	Capacity  int
	Stats     stats.Stats
}

// TotalOps returns the number of operations executed by the workers.
func (r Result) TotalOps() int {
	return r.Reads + r.Adds + r.Removes
}

// Throughput returns the worker operation rate in operations per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.TotalOps()) / r.Elapsed.Seconds()
}

// Runner drives one stress scenario against a single set.
type Runner struct {
	cfg     Config
	set     *cuckooset.Set[uint64]
	counter *stats.Counter
}

// NewRunner creates a runner with a fresh set configured from cfg.
func NewRunner(cfg Config) (*Runner, error) {
	counter := stats.NewCounter()
	set, err := cuckooset.New[uint64](&cuckooset.Options[uint64]{
		InitialCapacity: cfg.InitialCapacity,
		MaxCapacity:     cfg.MaxCapacity,
		LockStripes:     cfg.LockStripes,
		MaxKicks:        cfg.MaxKicks,
		StatsRecorder:   counter,
	})
	if err != nil {
		return nil, fmt.Errorf("create set: %w", err)
	}

	return &Runner{
		cfg:     cfg,
		set:     set,
		counter: counter,
	}, nil
}

// Set returns the set under test.
func (r *Runner) Set() *cuckooset.Set[uint64] {
	return r.set
}

// Run prefills the set and then executes the configured operation mix across
// the configured number of goroutines. Workers keep local tallies that are
// merged only after all of them have joined.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := r.prefill(ctx, seed); err != nil {
		return Result{}, fmt.Errorf("prefill: %w", err)
	}
	prefilled := r.set.Size()

	tallies := make([]tally, r.cfg.Goroutines)
	perWorker := r.cfg.Operations / r.cfg.Goroutines
	extra := r.cfg.Operations % r.cfg.Goroutines

	start := time.Now()
	eg, _ := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Goroutines; i++ {
		i := i
		ops := perWorker
		if i < extra {
			ops++
		}
		eg.Go(func() error {
			w := newWorkload(r.cfg, seed+int64(i)+1)
			var local tally
			if err := r.work(w, ops, &local); err != nil {
				return err
			}
			tallies[i] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, fmt.Errorf("run workers: %w", err)
	}
	elapsed := time.Since(start)

	res := Result{
		Prefilled: prefilled,
		Elapsed:   elapsed,
		FinalSize: r.set.Size(),
		Capacity:  r.set.Capacity(),
		Stats:     r.counter.Snapshot(),
	}
	for _, t := range tallies {
		res.Reads += t.reads
		res.Hits += t.hits
		res.Adds += t.adds
		res.Added += t.added
		res.Removes += t.removes
		res.Removed += t.removed
	}
	return res, nil
}

func (r *Runner) prefill(ctx context.Context, seed int64) error {
	draw := rand.New(rand.NewSource(seed))
	return r.set.Populate(ctx, r.cfg.Prefill, func() uint64 {
		return uint64(draw.Int63n(r.cfg.KeySpace))
	})
}

func (r *Runner) work(w *workload, ops int, t *tally) error {
	for i := 0; i < ops; i++ {
		value := w.next()
		switch w.op() {
		case opRead:
			t.reads++
			if r.set.Contains(value) {
				t.hits++
			}
		case opAdd:
			t.adds++
			added, err := r.set.Add(value)
			if err != nil {
				return fmt.Errorf("add %d: %w", value, err)
			}
			if added {
				t.added++
			}
		case opRemove:
			t.removes++
			if r.set.Remove(value) {
				t.removed++
			}
		}
	}
	return nil
}
