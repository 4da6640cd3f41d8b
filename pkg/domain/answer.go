package domain

import "fmt"

// Answer holds the two scalar results computed for a single day.
type Answer struct {
	PartOne int `json:"partOne"`
	PartTwo int `json:"partTwo"`
}

// String renders the answer the way the driver prints it.
func (a Answer) String() string {
	return fmt.Sprintf("Part 1: %d, Part 2: %d", a.PartOne, a.PartTwo)
}

// Result pairs an Answer with the day it was computed for.
type Result struct {
	Day    int    `json:"day"`
	Title  string `json:"title"`
	Answer Answer `json:"answer"`
}

// String renders the result with a zero-padded day prefix.
func (r Result) String() string {
	return fmt.Sprintf("Day %02d: %s", r.Day, r.Answer)
}
