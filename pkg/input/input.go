// Package input loads puzzle input and turns it into typed records.
//
// Text is split either into lines (one record per non-empty line) or into
// blocks separated by blank lines. Parse then maps every item through a
// per-day rule and stops at the first item that does not fit.
package input

import (
	"aoc/pkg/serrors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path returns the conventional location of a day's input below dir,
// e.g. input/day-07/input.
func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day-%02d", day), "input")
}

// ReadFile returns the contents of path as a string.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnreadable, err, "could not read input %q", path)
	}

	return string(b), nil
}

// Lines splits text into trimmed, non-empty lines, keeping their order.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}

	return lines
}

// Blocks splits text into groups of lines separated by one or more blank
// lines. Lines inside a block are trimmed and joined with "\n".
func Blocks(text string) []string {
	var (
		blocks  []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			flush()

			continue
		}
		current = append(current, l)
	}
	flush()

	return blocks
}

// Parse applies parse to every item in order. The first failure aborts with a
// malformed-input error naming the 1-based item number and its text.
func Parse[T any](items []string, parse func(string) (T, error)) ([]T, error) {
	records := make([]T, 0, len(items))
	for i, item := range items {
		rec, err := parse(item)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "item %d (%q)", i+1, item)
		}
		records = append(records, rec)
	}

	return records, nil
}

// ParseLines is Parse over Lines(text).
func ParseLines[T any](text string, parse func(string) (T, error)) ([]T, error) {
	return Parse(Lines(text), parse)
}

// ParseBlocks is Parse over Blocks(text).
func ParseBlocks[T any](text string, parse func(string) (T, error)) ([]T, error) {
	return Parse(Blocks(text), parse)
}
