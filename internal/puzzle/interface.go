package puzzle

import (
	"aoc/pkg/domain"
	"context"
)

// Solver computes both answers for one day from that day's raw input text.
//
//go:generate mockgen -package mockpuzzle -source=interface.go -destination=mock/mockpuzzle.go *
type Solver interface {
	// Day is the calendar day the solver belongs to.
	Day() int
	// Title is the puzzle's name.
	Title() string
	// Solve parses raw and returns both answers.
	Solve(ctx context.Context, raw string) (domain.Answer, error)
}
