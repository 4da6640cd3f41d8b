// Package days registers every implemented puzzle.
package days

import (
	"aoc/internal/days/day01"
	"aoc/internal/days/day02"
	"aoc/internal/days/day03"
	"aoc/internal/days/day04"
	"aoc/internal/days/day05"
	"aoc/internal/days/day06"
	"aoc/internal/days/day07"
	"aoc/internal/puzzle"
)

// Registry returns a registry holding all days.
func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(
		day01.Puzzle,
		day02.Puzzle,
		day03.Puzzle,
		day04.Puzzle,
		day05.Puzzle,
		day06.Puzzle,
		day07.Puzzle,
	)
}
