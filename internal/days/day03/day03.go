// Package day03 counts the trees hit while sliding down a map that repeats
// endlessly to the right.
package day03

import (
	"aoc/internal/puzzle"
	"aoc/pkg/input"
	"aoc/pkg/serrors"
	"fmt"
)

// Puzzle is the day 3 solver.
var Puzzle = puzzle.Day[[]Row]{ //nolint: gochecknoglobals
	Number:  3,
	Name:    "Toboggan Trajectory",
	Parse:   Parse,
	PartOne: puzzle.Infallible(func(g []Row) int { return Trees(g, Slope{Right: 3, Down: 1}) }),
	PartTwo: puzzle.Infallible(func(g []Row) int { return TreeProduct(g, Slopes) }),
}

// Tile is a single map square.
type Tile byte

const (
	Open Tile = '.'
	Tree Tile = '#'
)

// Row is one line of the map.
type Row []Tile

// Slope is the step taken on every move.
type Slope struct {
	Right int
	Down  int
}

// Slopes are the trajectories multiplied together in part two.
var Slopes = []Slope{ //nolint: gochecknoglobals
	{Right: 1, Down: 1},
	{Right: 3, Down: 1},
	{Right: 5, Down: 1},
	{Right: 7, Down: 1},
	{Right: 1, Down: 2},
}

// ParseRow classifies every character of line as a tile.
func ParseRow(line string) (Row, error) {
	row := make(Row, len(line))
	for i := range len(line) {
		switch t := Tile(line[i]); t {
		case Open, Tree:
			row[i] = t
		default:
			return nil, fmt.Errorf("unexpected tile %q at column %d", line[i], i+1)
		}
	}

	return row, nil
}

// Parse reads the map. All rows must have the same width.
func Parse(raw string) ([]Row, error) {
	rows, err := input.ParseLines(raw, ParseRow)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	for i, r := range rows {
		if len(r) != len(rows[0]) {
			return nil, serrors.With(serrors.ErrMalformedInput,
				"row %d has width %d, expected %d", i+1, len(r), len(rows[0]))
		}
	}

	return rows, nil
}

// Trees walks from the top-left corner along s, wrapping horizontally in
// either direction, and counts the trees on each square it lands on.
func Trees(grid []Row, s Slope) int {
	if s.Down < 1 {
		return 0
	}

	n := 0
	for y, x := s.Down, s.Right; y < len(grid); y, x = y+s.Down, x+s.Right {
		row := grid[y]
		w := len(row)
		if w > 0 && row[(x%w+w)%w] == Tree {
			n++
		}
	}

	return n
}

// TreeProduct multiplies the tree counts of every slope.
func TreeProduct(grid []Row, slopes []Slope) int {
	p := 1
	for _, s := range slopes {
		p *= Trees(grid, s)
	}

	return p
}
