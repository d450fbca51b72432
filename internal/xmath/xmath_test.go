package xmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundUpPowerOf2(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		v    uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{1 << 31, 1 << 31},
	} {
		require.Equal(t, test.want, RoundUpPowerOf2(test.v))
	}
}

func TestRoundUpPowerOf264(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		v    uint64
		want uint64
	}{
		{0, 1},
		{1, 1},
		{3, 4},
		{4, 4},
		{math.MaxUint32, 1 << 32},
		{1<<40 + 1, 1 << 41},
		{1 << 62, 1 << 62},
	} {
		require.Equal(t, test.want, RoundUpPowerOf264(test.v))
	}
}
