package isqrt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkpoints/internal/core/isqrt"
	"checkpoints/internal/domain"
)

func TestRoot_PerfectSquares(t *testing.T) {
	cases := map[int]int{1: 1, 9: 3, 16: 4, 144: 12, 10_000: 100}
	for n, want := range cases {
		got, err := isqrt.Root(n)
		require.NoError(t, err, "Root(%d)", n)
		assert.Equal(t, want, got, "Root(%d)", n)
	}
}

func TestRoot_OutOfBounds(t *testing.T) {
	for _, n := range []int{-4, 0, 10_001} {
		_, err := isqrt.Root(n)
		assert.ErrorIs(t, err, domain.OutOfBounds, "Root(%d)", n)
	}
}

func TestRoot_NoRoot(t *testing.T) {
	for _, n := range []int{2, 3, 15, 17, 9_999} {
		_, err := isqrt.Root(n)
		assert.ErrorIs(t, err, domain.NoRoot, "Root(%d)", n)
	}
}

func TestRoot_AgreesWithSquaring(t *testing.T) {
	for n := isqrt.MinInput; n <= isqrt.MaxInput; n++ {
		r, err := isqrt.Root(n)
		if err != nil {
			require.ErrorIs(t, err, domain.NoRoot)
			continue
		}
		require.Equal(t, n, r*r)
	}
}
