// Package day02 checks passwords against the policies they were stored with.
package day02

import (
	"aoc/internal/puzzle"
	"aoc/pkg/input"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Puzzle is the day 2 solver.
var Puzzle = puzzle.Day[[]Policy]{ //nolint: gochecknoglobals
	Number:  2,
	Name:    "Password Philosophy",
	Parse:   Parse,
	PartOne: puzzle.Infallible(func(p []Policy) int { return Count(p, Policy.RangeValid) }),
	PartTwo: puzzle.Infallible(func(p []Policy) int { return Count(p, Policy.PositionValid) }),
}

var policyRe = regexp.MustCompile(`^(\d+)-(\d+) (\S): (\S+)$`)

// Policy is one line of the password database: two numbers, a letter and
// the password the policy applies to.
type Policy struct {
	Min      int
	Max      int
	Letter   rune
	Password string
}

// ParsePolicy parses a line such as "1-3 a: abcde".
func ParsePolicy(line string) (Policy, error) {
	m := policyRe.FindStringSubmatch(line)
	if m == nil {
		return Policy{}, errors.New(`expected "min-max letter: password"`)
	}

	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return Policy{}, fmt.Errorf("could not parse min: %w", err)
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return Policy{}, fmt.Errorf("could not parse max: %w", err)
	}
	if lo < 1 || lo > hi {
		return Policy{}, fmt.Errorf("invalid bounds %d-%d", lo, hi)
	}

	return Policy{Min: lo, Max: hi, Letter: []rune(m[3])[0], Password: m[4]}, nil
}

// Parse reads one policy per line.
func Parse(raw string) ([]Policy, error) {
	return input.ParseLines(raw, ParsePolicy)
}

// RangeValid reports whether Letter occurs between Min and Max times.
func (p Policy) RangeValid() bool {
	n := strings.Count(p.Password, string(p.Letter))

	return n >= p.Min && n <= p.Max
}

// PositionValid reports whether exactly one of the 1-based positions Min and
// Max holds Letter. Positions past the end of the password never match.
func (p Policy) PositionValid() bool {
	chars := []rune(p.Password)
	at := func(pos int) bool {
		return pos <= len(chars) && chars[pos-1] == p.Letter
	}

	return at(p.Min) != at(p.Max)
}

// Count returns how many policies satisfy valid.
func Count(policies []Policy, valid func(Policy) bool) int {
	n := 0
	for _, p := range policies {
		if valid(p) {
			n++
		}
	}

	return n
}
