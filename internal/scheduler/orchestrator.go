package scheduler

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// DefaultNumSchedules is how many ranked schedules Generate returns when
// the caller doesn't request a specific count.
const DefaultNumSchedules = 50

// CatalogPort is the read-only section catalog the orchestrator consumes,
// declared consumer-side so any adapter (in-memory, Postgres, ...) can
// satisfy it without the core importing a storage package.
type CatalogPort interface {
	// CourseComponents returns, for each distinct component of every
	// course in courseIDs, the sections offered for it in term. single
	// signals the caller is asking about exactly one elective course in
	// isolation; currentStatus asks for live enrollment status rather
	// than a cached snapshot.
	CourseComponents(ctx context.Context, term string, courseIDs []string, single bool, currentStatus bool) ([][]Section, error)
	// ScheduleIdentifier returns a stable identifier for schedule, used
	// as the condenser's "more like this" reference.
	ScheduleIdentifier(schedule *Schedule) string
}

// ElectiveGroup is a set of alternative elective courses; the orchestrator
// solves each course in the group independently, against the mandatory
// section pool, rather than requiring all of them at once.
type ElectiveGroup struct {
	Courses []string
}

// GenerateParams is everything Generate needs to produce ranked
// schedules for one student.
type GenerateParams struct {
	Term         string
	Institution  string
	Courses      []string
	BusyTimes    []Section
	Electives    []ElectiveGroup
	Preferences  Preferences
	NumRequested int
}

// Orchestrator runs the full generate pipeline: fetch candidate sections,
// encode, solve, decode, condense, rank, and truncate.
type Orchestrator struct {
	catalog CatalogPort
	solver  Solver
	logger  *zap.Logger
}

// NewOrchestrator wires an orchestrator. A nil solver defaults to
// BacktrackingSolver; a nil logger defaults to a no-op logger.
func NewOrchestrator(catalog CatalogPort, solver Solver, logger *zap.Logger) *Orchestrator {
	if solver == nil {
		solver = NewBacktrackingSolver()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{catalog: catalog, solver: solver, logger: logger}
}

// Generate returns ranked schedules for params, descending by overall
// score, truncated to params.NumRequested (DefaultNumSchedules when
// unset or non-positive). A missing term yields an empty result; the
// caller decides whether that should surface as a validation error.
func (o *Orchestrator) Generate(ctx context.Context, params GenerateParams) ([]*Schedule, error) {
	if params.Term == "" {
		o.logger.Error("schedule generation request is missing a term")
		return nil, nil
	}
	if len(params.Courses) == 0 && len(params.Electives) == 0 {
		o.logger.Error("schedule generation request has no courses or electives")
		return nil, nil
	}

	var mandatoryPool []Section
	if len(params.Courses) > 0 {
		groups, err := o.catalog.CourseComponents(ctx, params.Term, params.Courses, false, params.Preferences.CurrentStatus)
		if err != nil {
			return nil, err
		}
		mandatoryPool = filterByStatus(flatten(groups), params.Preferences.ObeyStatus)
	}

	var schedules []*Schedule
	totalGenerated := 0

	mandatorySchedules, err := o.solvePool(mandatoryPool, params.BusyTimes, params.Preferences)
	if err != nil {
		return nil, err
	}
	schedules = append(schedules, mandatorySchedules...)
	totalGenerated += len(mandatorySchedules)

	for _, group := range params.Electives {
		for _, course := range group.Courses {
			groups, err := o.catalog.CourseComponents(ctx, params.Term, []string{course}, true, params.Preferences.CurrentStatus)
			if err != nil {
				return nil, err
			}
			electiveCandidates := filterByStatus(flatten(groups), params.Preferences.ObeyStatus)
			electivePool := append(append([]Section(nil), mandatoryPool...), electiveCandidates...)

			electiveSchedules, err := o.solvePool(electivePool, params.BusyTimes, params.Preferences)
			if err != nil {
				return nil, err
			}
			schedules = append(schedules, electiveSchedules...)
			totalGenerated += len(electiveSchedules)
		}
	}

	if len(schedules) == 0 {
		o.logger.Info("schedule generation produced no candidates", zap.String("term", params.Term))
		return schedules, nil
	}

	condensed := Condense(schedules, o.catalog.ScheduleIdentifier)
	sort.SliceStable(condensed, func(i, j int) bool {
		return condensed[i].OverallScore() > condensed[j].OverallScore()
	})

	numRequested := params.NumRequested
	if numRequested <= 0 {
		numRequested = DefaultNumSchedules
	}
	if numRequested > len(condensed) {
		numRequested = len(condensed)
	}

	o.logger.Debug("schedule generation summary",
		zap.String("term", params.Term),
		zap.Int("returned", numRequested),
		zap.Int("condensed", len(condensed)),
		zap.Int("generated", totalGenerated),
	)

	return condensed[:numRequested], nil
}

// solvePool runs one encode/solve/decode cycle over a candidate section
// pool, returning one Schedule per satisfying SAT assignment.
func (o *Orchestrator) solvePool(sections []Section, busyTimes []Section, preferences Preferences) ([]*Schedule, error) {
	if len(sections) == 0 {
		return nil, nil
	}

	clauses := Encode(sections, busyTimes)
	idx := NewSATIndex(sections)

	solutions, err := o.solver.Solve(idx.Len(), clauses)
	if err != nil {
		return nil, err
	}

	schedules := make([]*Schedule, 0, len(solutions))
	for _, solution := range solutions {
		schedules = append(schedules, Decode(solution, idx, busyTimes, preferences))
	}
	return schedules, nil
}

// filterByStatus drops sections marked cancelled (ClassStatus "X") or
// closed (EnrollStatus "C") when obeyStatus is set. A section with no
// status info at all is always kept; status only excludes what it
// explicitly flags.
func filterByStatus(sections []Section, obeyStatus bool) []Section {
	if !obeyStatus {
		return sections
	}
	kept := make([]Section, 0, len(sections))
	for _, sec := range sections {
		if sec.ClassStatus != nil && *sec.ClassStatus == "X" {
			continue
		}
		if sec.EnrollStatus != nil && *sec.EnrollStatus == "C" {
			continue
		}
		kept = append(kept, sec)
	}
	return kept
}

func flatten(groups [][]Section) []Section {
	var out []Section
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
