// Package day07 answers questions about luggage rules where bags of one
// color must contain fixed numbers of bags of other colors.
package day07

import (
	"aoc/internal/puzzle"
	"aoc/pkg/input"
	"aoc/pkg/serrors"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Target is the bag both parts ask about.
const Target = "shiny gold"

// Puzzle is the day 7 solver.
var Puzzle = puzzle.Day[Rules]{ //nolint: gochecknoglobals
	Number:  7,
	Name:    "Handy Haversacks",
	Parse:   Parse,
	PartOne: puzzle.Infallible(func(r Rules) int { return r.Containers(Target) }),
	PartTwo: func(r Rules) (int, error) { return r.Inside(Target) },
}

var (
	ruleRe    = regexp.MustCompile(`^(\w+ \w+) bags contain (.+)\.$`)
	contentRe = regexp.MustCompile(`^(\d+) (\w+ \w+) bags?$`)
)

// Content is a required number of bags of one color.
type Content struct {
	Color string
	Count int
}

// Rule lists what a bag of Color must contain.
type Rule struct {
	Color    string
	Contents []Content
}

// Rules maps each bag color to its required contents.
type Rules map[string][]Content

// ParseRule parses a line such as
// "light red bags contain 1 bright white bag, 2 muted yellow bags."
func ParseRule(line string) (Rule, error) {
	m := ruleRe.FindStringSubmatch(line)
	if m == nil {
		return Rule{}, errors.New(`expected "<color> bags contain <contents>."`)
	}

	rule := Rule{Color: m[1]}
	if m[2] == "no other bags" {
		return rule, nil
	}

	for _, clause := range strings.Split(m[2], ",") {
		c := contentRe.FindStringSubmatch(strings.TrimSpace(clause))
		if c == nil {
			return Rule{}, fmt.Errorf("could not parse clause %q", strings.TrimSpace(clause))
		}
		n, err := strconv.Atoi(c[1])
		if err != nil {
			return Rule{}, fmt.Errorf("could not parse count: %w", err)
		}
		rule.Contents = append(rule.Contents, Content{Color: c[2], Count: n})
	}

	return rule, nil
}

// Parse reads one rule per line. Each color may only be defined once.
func Parse(raw string) (Rules, error) {
	list, err := input.ParseLines(raw, ParseRule)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	rules := make(Rules, len(list))
	for _, r := range list {
		if _, dup := rules[r.Color]; dup {
			return nil, serrors.With(serrors.ErrMalformedInput, "color %q defined twice", r.Color)
		}
		rules[r.Color] = r.Contents
	}

	return rules, nil
}

// Containers counts the colors other than target that eventually hold at
// least one target bag. It walks the rules backwards from target, so cycles
// that do not lead to target are never entered.
func (r Rules) Containers(target string) int {
	heldBy := make(map[string][]string, len(r))
	for color, contents := range r {
		for _, c := range contents {
			heldBy[c.Color] = append(heldBy[c.Color], color)
		}
	}

	seen := map[string]bool{target: true}
	queue := []string{target}
	for len(queue) > 0 {
		color := queue[0]
		queue = queue[1:]
		for _, outer := range heldBy[color] {
			if !seen[outer] {
				seen[outer] = true
				queue = append(queue, outer)
			}
		}
	}

	return len(seen) - 1
}

// Inside returns the total number of bags a target bag holds, counting every
// nested level. Colors without a rule hold nothing. A cycle makes the total
// infinite and is reported as malformed input.
func (r Rules) Inside(target string) (int, error) {
	const visiting = -1
	memo := make(map[string]int, len(r))

	var total func(color string) (int, error)
	total = func(color string) (int, error) {
		switch v, ok := memo[color]; {
		case ok && v == visiting:
			return 0, serrors.With(serrors.ErrMalformedInput, "bag %q contains itself", color)
		case ok:
			return v, nil
		}

		memo[color] = visiting
		sum := 0
		for _, c := range r[color] {
			inner, err := total(c.Color)
			if err != nil {
				return 0, err
			}
			sum += c.Count * (1 + inner)
		}
		memo[color] = sum

		return sum, nil
	}

	return total(target)
}
