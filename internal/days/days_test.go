package days_test

import (
	"aoc/internal/days"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := days.Registry()
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, r.Days())

	for _, d := range r.Days() {
		s, err := r.Get(d)
		require.NoError(t, err)
		require.Equal(t, d, s.Day())
		require.NotEmpty(t, s.Title())
	}
}
