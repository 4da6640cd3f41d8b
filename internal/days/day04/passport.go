// Package day04 validates passports made of loosely formatted key:value pairs.
package day04

import (
	"aoc/internal/puzzle"
	"aoc/pkg/input"
	"fmt"
	"strings"
)

// Puzzle is the day 4 solver.
var Puzzle = puzzle.Day[[]Passport]{ //nolint: gochecknoglobals
	Number:  4,
	Name:    "Passport Processing",
	Parse:   Parse,
	PartOne: puzzle.Infallible(func(p []Passport) int { return Count(p, RequiredFields()) }),
	PartTwo: puzzle.Infallible(func(p []Passport) int { return Count(p, StrictRules()) }),
}

// Field is a passport key.
type Field string

const (
	BirthYear      Field = "byr"
	IssueYear      Field = "iyr"
	ExpirationYear Field = "eyr"
	Height         Field = "hgt"
	HairColor      Field = "hcl"
	EyeColor       Field = "ecl"
	PassportID     Field = "pid"
	CountryID      Field = "cid"
)

var knownFields = map[Field]bool{ //nolint: gochecknoglobals
	BirthYear: true, IssueYear: true, ExpirationYear: true, Height: true,
	HairColor: true, EyeColor: true, PassportID: true, CountryID: true,
}

// Passport maps each field present in a block to its raw value.
type Passport map[Field]string

// ParsePassport reads a block of whitespace-separated key:value pairs.
func ParsePassport(block string) (Passport, error) {
	p := Passport{}
	for _, pair := range strings.Fields(block) {
		k, v, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("pair %q has no ':'", pair)
		}
		f := Field(k)
		if !knownFields[f] {
			return nil, fmt.Errorf("unknown field %q", k)
		}
		if _, dup := p[f]; dup {
			return nil, fmt.Errorf("field %q given twice", k)
		}
		p[f] = v
	}

	return p, nil
}

// Parse reads passports separated by blank lines.
func Parse(raw string) ([]Passport, error) {
	return input.ParseBlocks(raw, ParsePassport)
}

// Valid reports whether p satisfies every rule.
func (p Passport) Valid(rules []Validator) bool {
	for _, r := range rules {
		v, ok := p[r.Field()]
		if !r.Check(v, ok) {
			return false
		}
	}

	return true
}

// Count returns how many passports satisfy every rule.
func Count(passports []Passport, rules []Validator) int {
	n := 0
	for _, p := range passports {
		if p.Valid(rules) {
			n++
		}
	}

	return n
}
