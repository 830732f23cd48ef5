package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacktrackingSolverFindsAllSolutions(t *testing.T) {
	// (x1 ∨ x2) ∧ (¬x1 ∨ ¬x2): exactly two satisfying assignments.
	clauses := []Clause{{1, 2}, {-1, -2}}

	solver := NewBacktrackingSolver()
	solutions, err := solver.Solve(2, clauses)
	require.NoError(t, err)
	require.Len(t, solutions, 2)

	seen := map[[2]int]bool{}
	for _, s := range solutions {
		seen[[2]int{s[0], s[1]}] = true
	}
	assert.True(t, seen[[2]int{1, -2}])
	assert.True(t, seen[[2]int{-1, 2}])
}

func TestBacktrackingSolverUnsatisfiableReturnsEmpty(t *testing.T) {
	clauses := []Clause{{1}, {-1}}

	solver := NewBacktrackingSolver()
	solutions, err := solver.Solve(1, clauses)
	require.NoError(t, err)
	assert.Empty(t, solutions)
	assert.NotNil(t, solutions)
}

func TestBacktrackingSolverNoClausesAllowsEverything(t *testing.T) {
	solver := NewBacktrackingSolver()
	solutions, err := solver.Solve(2, nil)
	require.NoError(t, err)
	assert.Len(t, solutions, 4)
}
