// Package dto holds the request/response shapes for the HTTP scheduler
// surface, validated with go-playground/validator the way the teacher
// validates its own request payloads.
package dto

// SectionRequest is the wire shape of a busy-time block: day/startTime/
// endTime are required, matching spec.md's busy-times contract (no
// course/component identity, just blocked time).
type SectionRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// ElectiveGroupRequest is one group of alternative elective courses.
type ElectiveGroupRequest struct {
	Courses []string `json:"courses" validate:"required,min=1,dive,required"`
}

// PreferencesRequest mirrors spec.md's recognized preference options;
// weights default to 1 when omitted (applied by the service layer when
// it converts a request into scheduler.GenerateParams).
type PreferencesRequest struct {
	NoMarathons   *int `json:"no-marathons"`
	DayClasses    *int `json:"day-classes"`
	StartEarly    *int `json:"start-early"`
	CurrentStatus bool `json:"current-status"`
	ObeyStatus    bool `json:"obey-status"`
}

// GenerateRequest instructs the orchestrator to build ranked schedules
// for one student.
type GenerateRequest struct {
	Term        string                  `json:"term" validate:"required"`
	Institution string                  `json:"institution"`
	Courses     []string                `json:"courses"`
	BusyTimes   []SectionRequest        `json:"busy-times"`
	Electives   []ElectiveGroupRequest  `json:"electives"`
	Preferences PreferencesRequest      `json:"preferences"`
	NumRequested int                    `json:"numRequested" validate:"omitempty,min=1,max=200"`
}

// ScheduleSectionResponse is one accepted section in a ranked schedule.
type ScheduleSectionResponse struct {
	Course    string  `json:"course"`
	Component string  `json:"component"`
	Section   string  `json:"section"`
	AsString  string  `json:"asString"`
	Day       *string `json:"day,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// ScheduleResponse is one ranked schedule in a generate response.
type ScheduleResponse struct {
	Sections      []ScheduleSectionResponse `json:"sections"`
	MoreLikeThis  []string                  `json:"more_like_this"`
	OverallScore  float64                   `json:"overall_score"`
}

// GenerateResponse wraps the ranked schedule list.
type GenerateResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// SaveScheduleRequest persists one ranked schedule (identified by the
// asString of each of its sections) as a draft the student can return to.
type SaveScheduleRequest struct {
	StudentID string           `json:"studentId" validate:"required"`
	Term      string           `json:"term" validate:"required"`
	Sections  []ScheduleSectionResponse `json:"sections" validate:"required,min=1"`
	Score     float64          `json:"score"`
}

// SavedScheduleQuery filters a student's saved schedules by term.
type SavedScheduleQuery struct {
	StudentID string `form:"studentId" json:"studentId" validate:"required"`
	Term      string `form:"term" json:"term" validate:"required"`
}
