package day06_test

import (
	"aoc/internal/days/day06"
	"aoc/pkg/domain"
	"aoc/pkg/serrors"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `abc

a
b
c

ab
ac

a
a
a
a

b
`

func TestGroupCount(t *testing.T) {
	groups, err := day06.Parse(sample)
	require.NoError(t, err)
	require.Len(t, groups, 5)

	anyone := []int{3, 3, 3, 1, 1}
	everyone := []int{3, 0, 1, 1, 1}
	for i, g := range groups {
		require.Equal(t, anyone[i], g.Count(day06.Anyone), "group %d", i)
		require.Equal(t, everyone[i], g.Count(day06.Everyone), "group %d", i)
	}
}

func TestSolve(t *testing.T) {
	got, err := day06.Puzzle.Solve(context.Background(), sample)
	require.NoError(t, err)
	require.Equal(t, domain.Answer{PartOne: 11, PartTwo: 6}, got)

	_, err = day06.Puzzle.Solve(context.Background(), "ab\n\na1\n")
	require.ErrorIs(t, err, serrors.ErrMalformedInput)
}
