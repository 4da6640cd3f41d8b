// Package day05 decodes binary space partitioned boarding passes.
package day05

import (
	"aoc/internal/puzzle"
	"aoc/pkg/input"
	"aoc/pkg/serrors"
	"fmt"
	"slices"
)

// Puzzle is the day 5 solver.
var Puzzle = puzzle.Day[[]int]{ //nolint: gochecknoglobals
	Number:  5,
	Name:    "Binary Boarding",
	Parse:   Parse,
	PartOne: Highest,
	PartTwo: Missing,
}

const (
	rowChars = 7
	colChars = 3
)

// SeatID decodes a pass such as "FBFBBFFRLR". The first seven characters
// pick the row (F low, B high), the last three the column (L low, R high);
// together they form the ID row*8+column.
func SeatID(code string) (int, error) {
	if len(code) != rowChars+colChars {
		return 0, fmt.Errorf("expected %d characters, got %d", rowChars+colChars, len(code))
	}

	id := 0
	for i := range len(code) {
		var bit int
		switch c := code[i]; {
		case i < rowChars && c == 'F', i >= rowChars && c == 'L':
			bit = 0
		case i < rowChars && c == 'B', i >= rowChars && c == 'R':
			bit = 1
		default:
			return 0, fmt.Errorf("unexpected %q at position %d", c, i+1)
		}
		id = id<<1 | bit
	}

	return id, nil
}

// Parse decodes one boarding pass per line.
func Parse(raw string) ([]int, error) {
	return input.ParseLines(raw, SeatID)
}

// Highest returns the largest seat ID.
func Highest(ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, serrors.With(serrors.ErrNoSolution, "no boarding passes")
	}

	return slices.Max(ids), nil
}

// Missing returns the single ID absent from an otherwise contiguous run.
func Missing(ids []int) (int, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1]+1 != sorted[i] {
			return sorted[i-1] + 1, nil
		}
	}

	return 0, serrors.With(serrors.ErrNoSolution, "no gap among %d seat IDs", len(ids))
}
