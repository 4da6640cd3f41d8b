// Package day06 tallies the yes-answers of customs declaration groups.
package day06

import (
	"aoc/internal/puzzle"
	"aoc/pkg/input"
	"fmt"
	"math/bits"
	"strings"
)

// Puzzle is the day 6 solver.
var Puzzle = puzzle.Day[[]Group]{ //nolint: gochecknoglobals
	Number:  6,
	Name:    "Custom Customs",
	Parse:   Parse,
	PartOne: puzzle.Infallible(func(g []Group) int { return Sum(g, Anyone) }),
	PartTwo: puzzle.Infallible(func(g []Group) int { return Sum(g, Everyone) }),
}

// Mode selects how one group's answers are combined.
type Mode int

const (
	// Anyone counts questions at least one person answered.
	Anyone Mode = iota
	// Everyone counts questions every person answered.
	Everyone
)

// Group holds one answer set per person, bit i standing for letter 'a'+i.
type Group []uint32

// ParseGroup reads one line per person; only letters a-z are allowed.
func ParseGroup(block string) (Group, error) {
	lines := strings.Split(block, "\n")
	g := make(Group, 0, len(lines))
	for _, l := range lines {
		var set uint32
		for _, c := range l {
			if c < 'a' || c > 'z' {
				return nil, fmt.Errorf("unexpected answer %q", c)
			}
			set |= 1 << (c - 'a')
		}
		g = append(g, set)
	}

	return g, nil
}

// Parse reads groups separated by blank lines.
func Parse(raw string) ([]Group, error) {
	return input.ParseBlocks(raw, ParseGroup)
}

// Count returns the number of questions counted for g under mode.
func (g Group) Count(mode Mode) int {
	if len(g) == 0 {
		return 0
	}

	acc := g[0]
	for _, set := range g[1:] {
		if mode == Everyone {
			acc &= set
		} else {
			acc |= set
		}
	}

	return bits.OnesCount32(acc)
}

// Sum adds up Count over all groups.
func Sum(groups []Group, mode Mode) int {
	total := 0
	for _, g := range groups {
		total += g.Count(mode)
	}

	return total
}
