package puzzle

import (
	"aoc/pkg/domain"
	"context"
	"fmt"
)

// Day adapts a parse function and two reducers into a Solver. The input is
// parsed once and the same value is handed to both parts.
type Day[T any] struct {
	Number  int
	Name    string
	Parse   func(raw string) (T, error)
	PartOne func(T) (int, error)
	PartTwo func(T) (int, error)
}

var _ Solver = Day[int]{}

func (d Day[T]) Day() int { return d.Number }

func (d Day[T]) Title() string { return d.Name }

// Solve parses raw and runs both parts. ctx is only checked between steps,
// since each step is a short in-memory computation.
func (d Day[T]) Solve(ctx context.Context, raw string) (domain.Answer, error) {
	parsed, err := d.Parse(raw)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("could not parse input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, err //nolint: wrapcheck
	}

	one, err := d.PartOne(parsed)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("could not solve part one: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, err //nolint: wrapcheck
	}

	two, err := d.PartTwo(parsed)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("could not solve part two: %w", err)
	}

	return domain.Answer{PartOne: one, PartTwo: two}, nil
}

// Infallible lifts a reducer that cannot fail into the shape Day expects.
func Infallible[T any](f func(T) int) func(T) (int, error) {
	return func(v T) (int, error) { return f(v), nil }
}
