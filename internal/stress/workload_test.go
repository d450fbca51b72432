package stress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkload_Next(t *testing.T) {
	for _, distribution := range []string{DistributionUniform, DistributionZipfian} {
		t.Run(distribution, func(t *testing.T) {
			c := DefaultConfig()
			c.KeySpace = 4096
			c.Prefill = 2048
			c.Distribution = distribution

			w := newWorkload(c, 42)
			for i := 0; i < 10_000; i++ {
				require.Less(t, w.next(), uint64(c.KeySpace))
			}
		})
	}
}

func TestWorkload_Mix(t *testing.T) {
	c := DefaultConfig()

	w := newWorkload(c, 42)
	counts := make(map[opKind]int)
	const ops = 10_000
	for i := 0; i < ops; i++ {
		counts[w.op()]++
	}

	require.Equal(t, ops, counts[opRead]+counts[opAdd]+counts[opRemove])
	require.InDelta(t, ops*c.ReadPercent/100, counts[opRead], 0.05*ops)
	require.InDelta(t, ops*c.AddPercent/100, counts[opAdd], 0.05*ops)
	require.InDelta(t, ops*c.RemovePercent/100, counts[opRemove], 0.05*ops)
}
