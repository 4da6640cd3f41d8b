package day05_test

import (
	"aoc/internal/days/day05"
	"aoc/pkg/serrors"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeatID(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{"FBFBBFFRLR", 357},
		{"BFFFBBFRRR", 567},
		{"FFFBBBFRRR", 119},
		{"BBFFBBFRLL", 820},
		{"FFFFFFFLLL", 0},
		{"BBBBBBBRRR", 1023},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			got, err := day05.SeatID(tc.code)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"FBFBBFFRL", "FBFBBFFRLRX", "FBFBBFRRLR", "FBFBBFFRLB", "fbfbbffrlr"} {
		_, err := day05.SeatID(bad)
		require.Error(t, err, bad)
	}
}

func TestMissing(t *testing.T) {
	ids := []int{8, 4, 7, 5}
	got, err := day05.Missing(ids)
	require.NoError(t, err)
	require.Equal(t, 6, got)
	require.Equal(t, []int{8, 4, 7, 5}, ids, "input must not be reordered")

	_, err = day05.Missing([]int{3, 1, 2})
	require.ErrorIs(t, err, serrors.ErrNoSolution)
}

func TestHighest(t *testing.T) {
	got, err := day05.Highest([]int{357, 820, 119})
	require.NoError(t, err)
	require.Equal(t, 820, got)

	_, err = day05.Highest(nil)
	require.ErrorIs(t, err, serrors.ErrNoSolution)
}

func TestSolve(t *testing.T) {
	raw := "FFFFFFFRRR\nFFFFFFBLLL\nFFFFFFBLRL\n"
	got, err := day05.Puzzle.Solve(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, 10, got.PartOne)
	require.Equal(t, 9, got.PartTwo)

	_, err = day05.Puzzle.Solve(context.Background(), "FBFBBFFRLR\nXXXXXXXXXX\n")
	require.ErrorIs(t, err, serrors.ErrMalformedInput)
}
