package main

import (
	"github.com/ayjmax/cuckooset"
)

func main() {
	// Create a basic set with default configuration
	set := cuckooset.Must(&cuckooset.Options[string]{})

	// Add returns whether the value was new to the set
	added, err := set.Add("apple")
	if err != nil {
		panic(err)
	}
	if !added {
		panic("apple should be new")
	}

	// Adding the same value again is a no-op
	added, err = set.Add("apple")
	if err != nil {
		panic(err)
	}
	if added {
		panic("apple should already be present")
	}

	// Contains inspects at most two slots
	if !set.Contains("apple") {
		panic("apple should be in the set")
	}
	if set.Contains("banana") {
		panic("banana should not be in the set")
	}

	// Remove returns whether the value was present
	if !set.Remove("apple") {
		panic("apple should have been removed")
	}
	if set.Size() != 0 {
		panic("the set should be empty")
	}
}
