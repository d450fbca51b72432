package main

import (
	"github.com/ayjmax/cuckooset"
	"github.com/ayjmax/cuckooset/stats"
)

func main() {
	// Create a new statistics counter
	counter := stats.NewCounter()

	// Initialize the set with a statistics recorder
	set := cuckooset.Must(&cuckooset.Options[int]{
		StatsRecorder: counter, // Attach stats collector to the set
	})

	// Phase 1: Populate the set with test data
	// ----------------------------------------
	// Insert the values 0 through 9
	for i := 0; i < 10; i++ {
		if _, err := set.Add(i); err != nil { // Each Add is recorded in stats
			panic(err)
		}
	}

	// Phase 2: Test membership operations
	// -----------------------------------
	// Successful checks for present values
	for i := 0; i < 10; i++ {
		set.Contains(i) // These will count as hits
	}
	// Check a value that was never added
	set.Contains(10) // This will count as a miss

	// Phase 3: Verify statistics
	// --------------------------
	// Get a snapshot of the current statistics
	snapshot := counter.Snapshot()

	// Validate the hit count (should match the successful checks)
	if snapshot.Hits() != 10 {
		panic("incorrect number of hits")
	}
	// Validate the miss count (should match the failed check)
	if snapshot.Misses() != 1 {
		panic("incorrect number of misses")
	}
	// Validate the add count (should match the insertions)
	if snapshot.Adds() != 10 {
		panic("incorrect number of adds")
	}
}
