package scheduler

func strPtr(s string) *string { return &s }

// section is a convenience constructor for fixture sections in tests.
func section(course, component, sectionNum, day, start, end string) Section {
	return Section{
		Course:    course,
		Component: component,
		Section:   sectionNum,
		AsString:  course + " " + component + " " + sectionNum,
		Day:       strPtr(day),
		StartTime: strPtr(start),
		EndTime:   strPtr(end),
	}
}
