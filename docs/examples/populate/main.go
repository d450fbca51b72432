package main

import (
	"context"
	"math/rand"

	"github.com/ayjmax/cuckooset"
)

func main() {
	// Size the set for the target up front to avoid resizes while filling
	set := cuckooset.Must(&cuckooset.Options[uint64]{
		InitialCapacity: 200_000,
	})

	ctx := context.Background()

	// The draw function produces one candidate value per call. Populate
	// keeps drawing until the set reaches the target size or the draw
	// budget runs out, so duplicate draws are fine: they simply do not
	// grow the set.
	r := rand.New(rand.NewSource(42))
	draw := func() uint64 {
		return uint64(r.Int63n(1_000_000))
	}

	if err := set.Populate(ctx, 100_000, draw); err != nil {
		panic(err)
	}

	// The set reached the requested size
	if set.Size() != 100_000 {
		panic("the set should have been filled to the target")
	}
}
