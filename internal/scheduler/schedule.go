package scheduler

import (
	"fmt"
	"strings"
)

// Schedule is a student's in-progress or finished weekly plan: the
// sections chosen so far, the busy times that constrain them, the
// derived timetable, and the preferences used to score it.
type Schedule struct {
	Sections     []Section
	BusyTimes    []Section
	Timetable    *Timetable
	MoreLikeThis []string
	Preferences  Preferences

	scorer *Scorer
}

// NewSchedule builds an empty schedule and adds the given sections and
// busy times to it in order. A nil preferences pointer gets
// DefaultPreferences.
func NewSchedule(sections, busyTimes []Section, preferences *Preferences) *Schedule {
	prefs := DefaultPreferences()
	if preferences != nil {
		prefs = *preferences
	}
	s := &Schedule{
		Timetable:   NewTimetable(),
		Preferences: prefs,
	}
	s.scorer = NewScorer(s)
	for _, busy := range busyTimes {
		s.AddBusyTime(busy)
	}
	for _, section := range sections {
		s.AddSection(section)
	}
	return s
}

// AddSection places section on the timetable best-effort and always
// records it in s.Sections, even when placement fails (a section with no
// meeting time, e.g. an async component, still belongs to the schedule).
func (s *Schedule) AddSection(section Section) *Schedule {
	marker := len(s.Sections)
	_ = s.attemptAddToTimetable(section, marker)
	s.Sections = append(s.Sections, section)
	s.invalidate()
	return s
}

// AddBusyTime places busy on the timetable and records it only when
// placement succeeds; a malformed busy time is dropped rather than
// silently tracked with no effect on the grid.
func (s *Schedule) AddBusyTime(busy Section) *Schedule {
	if err := s.attemptAddToTimetable(busy, int(Busy)); err != nil {
		return s
	}
	s.BusyTimes = append(s.BusyTimes, busy)
	s.invalidate()
	return s
}

// attemptAddToTimetable parses section's day/startTime/endTime and marks
// every block they cover, for every day letter in section.Day.
func (s *Schedule) attemptAddToTimetable(section Section, marker int) error {
	if section.Day == nil || section.StartTime == nil || section.EndTime == nil {
		return ErrMalformedSection
	}
	startBlock, err := BlockOf(*section.StartTime)
	if err != nil {
		return err
	}
	endBlock, err := BlockOf(*section.EndTime)
	if err != nil {
		return err
	}
	for i := 0; i < len(*section.Day); i++ {
		day, err := DayOf((*section.Day)[i])
		if err != nil {
			return err
		}
		s.Timetable.Place(day, startBlock, endBlock, marker)
	}
	return nil
}

func (s *Schedule) invalidate() {
	s.scorer = NewScorer(s)
}

// Clone returns a fresh schedule built from copies of s's sections, busy
// times, and preferences. MoreLikeThis is intentionally not carried over:
// a clone starts as its own, unmerged candidate.
func (s *Schedule) Clone() *Schedule {
	sections := append([]Section(nil), s.Sections...)
	busyTimes := append([]Section(nil), s.BusyTimes...)
	prefs := s.Preferences
	return NewSchedule(sections, busyTimes, &prefs)
}

// OverallScore returns the schedule's weighted preference score.
func (s *Schedule) OverallScore() float64 {
	return s.scorer.Read("overall")
}

// Scores returns every named preference score plus "overall".
func (s *Schedule) Scores() map[string]float64 {
	return s.scorer.ReadAll()
}

// String renders a compact, human-readable summary for test failures; it
// is not a documented output format.
func (s *Schedule) String() string {
	parts := make([]string, 0, len(s.Sections))
	for _, sec := range s.Sections {
		parts = append(parts, sec.AsString)
	}
	return fmt.Sprintf("Schedule[%s] overall=%.3f", strings.Join(parts, ", "), s.OverallScore())
}
