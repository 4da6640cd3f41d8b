package serrors_test

import (
	"aoc/pkg/serrors"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrUnreadable,
		serrors.ErrMalformedInput,
		serrors.ErrNoSolution,
		serrors.ErrUnknownDay,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("file missing")

	e1 := serrors.With(serrors.ErrUnknownDay, "day %d is not registered", 42)
	require.Equal(t, "day 42 is not registered", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUnreadable, base, "reading input")
	require.Equal(t, "reading input: file missing", e2.Error())

	e3 := &serrors.Error{}
	require.Equal(t, "unknown error", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	_, cause := strconv.Atoi("x")
	e := serrors.Wrap(serrors.ErrMalformedInput, cause, "line 3")

	require.ErrorIs(t, e, serrors.ErrMalformedInput)
	require.ErrorIs(t, e, strconv.ErrSyntax)
	require.NotErrorIs(t, e, serrors.ErrNoSolution)

	wrapped := fmt.Errorf("solving day 1: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrMalformedInput)
}

func TestAsExtractsCause(t *testing.T) {
	_, cause := strconv.Atoi("x")
	e := serrors.Wrap(serrors.ErrMalformedInput, cause, "line 3")

	var numErr *strconv.NumError
	require.ErrorAs(t, e, &numErr)
	require.Equal(t, "x", numErr.Num)
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", serrors.With(serrors.ErrNoSolution, "nothing sums to 2020"))
	require.Equal(t, serrors.ErrNoSolution, serrors.KindOf(err))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
}
