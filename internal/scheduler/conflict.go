package scheduler

// Conflicts reports whether adding section to the schedule would collide
// with a block already occupied (a timetable conflict) or with another of
// the schedule's own sections through an auto-enroll dependency link (a
// dependency conflict). Either kind is sufficient; the check is
// short-circuiting in the same order the source checks them.
func (s *Schedule) Conflicts(section Section) bool {
	return s.hasTimetableConflict(section) || s.hasDependencyConflict(section)
}

// hasTimetableConflict builds a scratch schedule containing only section
// and ANDs its bitmap against s's per day: any overlap is a conflict.
// Using a scratch schedule (rather than inspecting section's raw fields
// directly) keeps the block-arithmetic and malformed-time handling in one
// place.
func (s *Schedule) hasTimetableConflict(section Section) bool {
	scratch := &Schedule{Timetable: NewTimetable()}
	scratch.attemptAddToTimetable(section, 0)

	for day := 0; day < NumDays; day++ {
		if s.Timetable.Bitmap[day]&scratch.Timetable.Bitmap[day] != 0 {
			return true
		}
	}
	return false
}

// hasDependencyConflict reports a conflict when section and an already
// scheduled section of the same course but a different component are
// linked by an auto-enroll rule that section does not satisfy.
func (s *Schedule) hasDependencyConflict(section Section) bool {
	for _, other := range s.Sections {
		if other.Course != section.Course || other.Component == section.Component {
			continue
		}
		if section.AutoEnroll == nil && other.AutoEnroll == nil {
			continue
		}
		related := eqStrPtr(section.AutoEnrollComponent, other.Component) ||
			eqStrPtr(other.AutoEnrollComponent, section.Component)
		if !related {
			continue
		}
		satisfied := eqStrPtr(section.AutoEnroll, other.Section) ||
			eqStrPtr(other.AutoEnroll, section.Section)
		if satisfied {
			continue
		}
		return true
	}
	return false
}

// eqStrPtr reports whether p is non-nil and equal to v.
func eqStrPtr(p *string, v string) bool {
	return p != nil && *p == v
}
