package scheduler

import (
	"runtime"
	"sync"
)

// Clause is a disjunction of signed SAT literals; a positive literal n
// means "section n chosen", a negative literal means "section n not
// chosen".
type Clause []int

// Encode builds the CNF clause set for sections against busyTimes:
// component-coverage clauses (choose at least one section per course
// component), self-exclusion unary clauses (a section that conflicts
// with busy times alone can never be chosen), and pairwise conflict
// clauses (no two conflicting sections chosen together).
func Encode(sections []Section, busyTimes []Section) []Clause {
	idx := NewSATIndex(sections)

	var clauses []Clause
	clauses = append(clauses, componentCoverageClauses(sections, idx)...)
	clauses = append(clauses, selfExclusionClauses(sections, busyTimes, idx)...)
	clauses = append(clauses, encodeConflictClauses(sections, busyTimes, idx)...)
	return clauses
}

// componentCoverageClauses requires at least one chosen section per
// distinct (course, component) group, preserving first-seen group order.
func componentCoverageClauses(sections []Section, idx *SATIndex) []Clause {
	groups := make(map[string]Clause)
	var order []string
	for _, s := range sections {
		key := s.componentKey()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], idx.IndexOf(s))
	}

	clauses := make([]Clause, 0, len(order))
	for _, key := range order {
		clauses = append(clauses, groups[key])
	}
	return clauses
}

// selfExclusionClauses emits (¬n) for every section n whose own blocks
// overlap a busy time, checked independently of every other section —
// see DESIGN.md's Open Question decision on this clause.
func selfExclusionClauses(sections []Section, busyTimes []Section, idx *SATIndex) []Clause {
	busyOnly := NewSchedule(nil, busyTimes, nil)

	var clauses []Clause
	for _, s := range sections {
		if busyOnly.Conflicts(s) {
			clauses = append(clauses, Clause{-idx.IndexOf(s)})
		}
	}
	return clauses
}

// encodeConflictClauses emits (¬a ∨ ¬b) for every ordered pair of
// distinct candidate sections that conflict with each other, either
// directly or once busy times are accounted for. The O(n²) pair
// enumeration is split across GOMAXPROCS workers, each handling a
// round-robin slice of the outer index; per-worker clause buffers are
// merged back in worker order so the result is deterministic regardless
// of goroutine scheduling.
func encodeConflictClauses(sections []Section, busyTimes []Section, idx *SATIndex) []Clause {
	n := len(sections)
	if n < 2 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	buffers := make([][]Clause, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			var local []Clause
			for i := worker; i < n; i += workers {
				a := sections[i]
				for j := i + 1; j < n; j++ {
					b := sections[j]
					if pairConflicts(a, b, busyTimes) {
						local = append(local, Clause{-idx.IndexOf(a), -idx.IndexOf(b)})
					}
				}
			}
			buffers[worker] = local
		}(w)
	}
	wg.Wait()

	var clauses []Clause
	for _, buf := range buffers {
		clauses = append(clauses, buf...)
	}
	return clauses
}

// pairConflicts reports whether sections a and b can never coexist: they
// belong to the same course component, a conflicts with the busy times
// alone, or b conflicts with a schedule holding the busy times plus a.
// The test runs in that one direction only, matching the source's
// directional scratch-schedule test.
func pairConflicts(a, b Section, busyTimes []Section) bool {
	if a.Course == b.Course && a.Component == b.Component {
		return true
	}

	scratch := NewSchedule(nil, busyTimes, nil)
	if scratch.Conflicts(a) {
		return true
	}
	scratch.AddSection(a)
	return scratch.Conflicts(b)
}
