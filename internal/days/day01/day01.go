// Package day01 finds expense report entries that sum to 2020.
package day01

import (
	"aoc/internal/puzzle"
	"aoc/pkg/input"
	"aoc/pkg/serrors"
	"strconv"
)

// Target is the sum the entries must add up to.
const Target = 2020

// Puzzle is the day 1 solver.
var Puzzle = puzzle.Day[[]int]{ //nolint: gochecknoglobals
	Number:  1,
	Name:    "Report Repair",
	Parse:   Parse,
	PartOne: func(entries []int) (int, error) { return Product(entries, 2, Target) },
	PartTwo: func(entries []int) (int, error) { return Product(entries, 3, Target) },
}

// Parse reads one integer per line.
func Parse(raw string) ([]int, error) {
	return input.ParseLines(raw, strconv.Atoi)
}

// Product returns the product of the first count entries, taken at distinct
// positions in input order, whose sum is target.
func Product(entries []int, count, target int) (int, error) {
	if p, ok := search(entries, count, target); ok {
		return p, nil
	}

	return 0, serrors.With(serrors.ErrNoSolution, "no %d entries sum to %d", count, target)
}

func search(entries []int, count, target int) (int, bool) {
	if count == 0 {
		return 1, target == 0
	}
	for i, e := range entries {
		if p, ok := search(entries[i+1:], count-1, target-e); ok {
			return p * e, true
		}
	}

	return 0, false
}
