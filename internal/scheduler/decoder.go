package scheduler

// Decode turns one satisfying SAT assignment into a concrete Schedule by
// adding the section behind every positive literal, in literal order.
func Decode(solution []int, idx *SATIndex, busyTimes []Section, preferences Preferences) *Schedule {
	sched := NewSchedule(nil, busyTimes, &preferences)
	for _, literal := range solution {
		if literal > 0 {
			sched.AddSection(idx.SectionAt(literal))
		}
	}
	return sched
}
