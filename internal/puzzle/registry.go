package puzzle

import (
	"aoc/pkg/serrors"
	"fmt"
	"slices"
)

// Registry maps day numbers to their solvers.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns a registry holding solvers.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	r.Register(solvers...)

	return r
}

// Register adds solvers. Registering the same day twice is a programming
// error and panics.
func (r *Registry) Register(solvers ...Solver) {
	for _, s := range solvers {
		if _, dup := r.solvers[s.Day()]; dup {
			panic(fmt.Sprintf("puzzle: day %d registered twice", s.Day()))
		}
		r.solvers[s.Day()] = s
	}
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, serrors.With(serrors.ErrUnknownDay, "no solver registered for day %d", day)
	}

	return s, nil
}

// Days returns all registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}
