package domain_test

import (
	"aoc/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnswerString(t *testing.T) {
	a := domain.Answer{PartOne: 514579, PartTwo: 241861950}
	require.Equal(t, "Part 1: 514579, Part 2: 241861950", a.String())
}

func TestResultString(t *testing.T) {
	r := domain.Result{Day: 7, Answer: domain.Answer{PartOne: 4, PartTwo: 32}}
	require.Equal(t, "Day 07: Part 1: 4, Part 2: 32", r.String())
}
