package metrics_test

import (
	"aoc/pkg/metrics"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	s := metrics.NewSolve()
	s.Observe(1, 2*time.Millisecond, nil)
	s.Observe(1, 3*time.Millisecond, errors.New("boom"))
	s.Observe(2, time.Millisecond, nil)

	n, err := testutil.GatherAndCount(s.Registry(), "aoc_solve_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	want := `
# HELP aoc_solve_failures_total Number of solves that ended with an error.
# TYPE aoc_solve_failures_total counter
aoc_solve_failures_total{day="1"} 1
`
	require.NoError(t, testutil.GatherAndCompare(s.Registry(), strings.NewReader(want), "aoc_solve_failures_total"))
}

func TestWriteTextfile(t *testing.T) {
	s := metrics.NewSolve()
	s.Observe(5, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "aoc.prom")
	require.NoError(t, s.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `aoc_solve_duration_seconds_count{day="5"} 1`)
}
