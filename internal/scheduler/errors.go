package scheduler

import "errors"

// Sentinel errors for the core's failure cases.
var (
	// ErrMissingTerm names a generate request that carries no term.
	// Orchestrator.Generate does not return it: it logs that case and
	// returns an empty result with a nil error.
	ErrMissingTerm = errors.New("scheduler: term is required")
	// ErrMissingCourses names a generate request with neither mandatory
	// courses nor elective groups. Orchestrator.Generate does not return
	// it: it logs that case and returns an empty result with a nil error.
	ErrMissingCourses = errors.New("scheduler: courses or electives are required")
	// ErrMalformedSection is returned when a section's day/startTime/endTime
	// triple is incomplete; callers treat this as a skip-placement signal.
	ErrMalformedSection = errors.New("scheduler: section missing day, startTime or endTime")
	// ErrMalformedTime is returned when a time string does not match the
	// HH:MM AM|PM grammar, or carries an hour outside 01..12.
	ErrMalformedTime = errors.New("scheduler: time string is malformed")
	// ErrMalformedDay is returned when a day letter is outside MTWRF.
	ErrMalformedDay = errors.New("scheduler: day letter is malformed")
)
