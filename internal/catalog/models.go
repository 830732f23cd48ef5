// Package catalog implements the scheduler's CatalogPort outside the
// core: an in-memory fixture adapter and a Postgres-backed adapter, plus
// the saved-schedule persistence lifecycle.
package catalog

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/classtime-scheduler/internal/scheduler"
)

// SectionRecord is a persisted row backing one offered course component,
// shaped after the teacher's section/slot models (day-of-week, time
// range, course/component/section identifiers, auto-enroll linkage,
// status columns).
type SectionRecord struct {
	ID          string `db:"id" json:"id"`
	Term        string `db:"term" json:"term"`
	Institution string `db:"institution" json:"institution"`
	Course      string `db:"course" json:"course"`
	Component   string `db:"component" json:"component"`
	Section     string `db:"section" json:"section"`
	AsString    string `db:"as_string" json:"asString"`

	Day       *string `db:"day" json:"day,omitempty"`
	StartTime *string `db:"start_time" json:"startTime,omitempty"`
	EndTime   *string `db:"end_time" json:"endTime,omitempty"`
	Room      *string `db:"room" json:"room,omitempty"`

	AutoEnroll          *string `db:"auto_enroll" json:"autoEnroll,omitempty"`
	AutoEnrollComponent *string `db:"auto_enroll_component" json:"autoEnrollComponent,omitempty"`

	ClassStatus  *string `db:"class_status" json:"classStatus,omitempty"`
	EnrollStatus *string `db:"enroll_status" json:"enrollStatus,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ToSection converts a persisted record into the core's Section value.
func (r SectionRecord) ToSection() scheduler.Section {
	return scheduler.Section{
		Course:              r.Course,
		Component:           r.Component,
		Section:             r.Section,
		AsString:            r.AsString,
		Day:                 r.Day,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		AutoEnroll:          r.AutoEnroll,
		AutoEnrollComponent: r.AutoEnrollComponent,
		ClassStatus:         r.ClassStatus,
		EnrollStatus:        r.EnrollStatus,
	}
}

// SavedScheduleStatus is the lifecycle state of a saved schedule, mirroring
// the teacher's draft/publish status enum.
type SavedScheduleStatus string

const (
	// SavedScheduleStatusDraft is the default status for a newly saved
	// schedule: the student can still delete it.
	SavedScheduleStatusDraft SavedScheduleStatus = "DRAFT"
	// SavedScheduleStatusSaved marks a schedule the student has committed
	// to; it is no longer deletable through the ordinary flow.
	SavedScheduleStatusSaved SavedScheduleStatus = "SAVED"
)

// SavedSection is the subset of section detail a saved schedule retains
// so it can be re-rendered (e.g. as a PDF) without a second catalog
// round-trip.
type SavedSection struct {
	Course    string  `json:"course"`
	Component string  `json:"component"`
	Section   string  `json:"section"`
	AsString  string  `json:"asString"`
	Day       *string `json:"day,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// SavedSchedule is a student's persisted choice among a prior Generate
// call's ranked results, versioned per student+term the way the teacher
// versions semester schedules.
type SavedSchedule struct {
	ID        string              `db:"id" json:"id"`
	StudentID string              `db:"student_id" json:"studentId"`
	Term      string              `db:"term" json:"term"`
	Version   int                 `db:"version" json:"version"`
	Status    SavedScheduleStatus `db:"status" json:"status"`
	Sections  types.JSONText      `db:"sections" json:"sections"`
	Score     float64             `db:"score" json:"score"`
	Meta      types.JSONText      `db:"meta" json:"meta"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt time.Time           `db:"updated_at" json:"updated_at"`
}

// DecodeSavedSections unmarshals a saved schedule's section payload.
func DecodeSavedSections(raw types.JSONText) ([]SavedSection, error) {
	var sections []SavedSection
	if len(raw) == 0 {
		return sections, nil
	}
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}
