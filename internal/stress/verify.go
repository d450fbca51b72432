package stress

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/ayjmax/cuckooset"
)

// spotChecks bounds the number of membership probes after the sweep.
const spotChecks = 1000

// Verify checks the set against the run accounting after all workers have
// joined. At quiescence the size must equal the prefill plus the successful
// adds minus the successful removes, a full sweep must observe every value
// exactly once, and swept values must still answer membership checks.
func Verify(set *cuckooset.Set[uint64], res Result) error {
	expected := res.Prefilled + res.Added - res.Removed
	if size := set.Size(); size != expected {
		return fmt.Errorf(
			"size mismatch: got %d, expected %d (%d prefilled + %d added - %d removed)",
			size, expected, res.Prefilled, res.Added, res.Removed,
		)
	}

	mapSize := expected
	if mapSize < 16 {
		mapSize = 16
	}
	seen := swiss.NewMap[uint64, struct{}](uint32(mapSize))

	var dup uint64
	duplicated := false
	set.Range(func(value uint64) bool {
		if _, ok := seen.Get(value); ok {
			dup = value
			duplicated = true
			return false
		}
		seen.Put(value, struct{}{})
		return true
	})
	if duplicated {
		return fmt.Errorf("value %d observed twice during the sweep", dup)
	}
	if seen.Count() != expected {
		return fmt.Errorf("sweep mismatch: observed %d values, expected %d", seen.Count(), expected)
	}

	var missing uint64
	lost := false
	checked := 0
	seen.Iter(func(value uint64, _ struct{}) bool {
		if !set.Contains(value) {
			missing = value
			lost = true
			return true
		}
		checked++
		return checked >= spotChecks
	})
	if lost {
		return fmt.Errorf("value %d lost after the run", missing)
	}

	return nil
}
