package day03_test

import (
	"aoc/internal/days/day03"
	"aoc/pkg/domain"
	"aoc/pkg/serrors"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
`

func TestTrees(t *testing.T) {
	grid, err := day03.Parse(sample)
	require.NoError(t, err)
	require.Len(t, grid, 11)

	want := []int{2, 7, 3, 4, 2}
	for i, s := range day03.Slopes {
		require.Equal(t, want[i], day03.Trees(grid, s), "slope %+v", s)
	}
	require.Equal(t, 336, day03.TreeProduct(grid, day03.Slopes))
}

func TestTreesWrapsLeft(t *testing.T) {
	grid, err := day03.Parse("..\n.#\n#.\n")
	require.NoError(t, err)

	require.Equal(t, 2, day03.Trees(grid, day03.Slope{Right: -1, Down: 1}))
	require.Zero(t, day03.Trees(grid, day03.Slope{Right: 1, Down: 0}))
	require.Zero(t, day03.Trees([]day03.Row{{}, {}}, day03.Slope{Right: 1, Down: 1}))
}

func TestParseRejects(t *testing.T) {
	_, err := day03.Parse("..#\n.x.\n")
	require.ErrorIs(t, err, serrors.ErrMalformedInput)

	_, err = day03.Parse("..#\n....\n")
	require.ErrorIs(t, err, serrors.ErrMalformedInput)
}

func TestSolve(t *testing.T) {
	got, err := day03.Puzzle.Solve(context.Background(), sample)
	require.NoError(t, err)
	require.Equal(t, domain.Answer{PartOne: 7, PartTwo: 336}, got)
}
