package scheduler

// Section is one offered component of a course — a lecture, lab, or
// seminar slot a student could enroll in. Day/StartTime/EndTime and the
// auto-enroll linkage fields are optional: a section with no meeting time
// (an online asynchronous component, for instance) carries nil here
// rather than a sentinel string.
type Section struct {
	Course    string
	Component string
	Section   string
	AsString  string

	Day       *string
	StartTime *string
	EndTime   *string

	AutoEnroll          *string
	AutoEnrollComponent *string

	ClassStatus  *string
	EnrollStatus *string
}

// componentKey groups sections belonging to the same course component,
// e.g. all LEC sections of CMPUT 174.
func (s Section) componentKey() string {
	return s.Course + "\x00" + s.Component
}
