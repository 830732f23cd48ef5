package scheduler

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog is a minimal CatalogPort fixture for orchestrator tests.
type fakeCatalog struct {
	byCourse map[string][][]Section
}

func (f *fakeCatalog) CourseComponents(_ context.Context, _ string, courseIDs []string, _ bool, _ bool) ([][]Section, error) {
	var groups [][]Section
	for _, c := range courseIDs {
		groups = append(groups, f.byCourse[c]...)
	}
	return groups, nil
}

func (f *fakeCatalog) ScheduleIdentifier(s *Schedule) string {
	var parts []string
	for _, sec := range s.Sections {
		parts = append(parts, sec.AsString)
	}
	return strings.Join(parts, "|")
}

func TestOrchestratorGenerateMandatoryOnly(t *testing.T) {
	lec1 := section("CMPUT 174", "LEC", "A1", "M", "09:00 AM", "10:00 AM")
	lec2 := section("CMPUT 174", "LEC", "A2", "T", "09:00 AM", "10:00 AM")
	catalog := &fakeCatalog{byCourse: map[string][][]Section{
		"CMPUT 174": {{lec1, lec2}},
	}}

	orch := NewOrchestrator(catalog, nil, nil)
	results, err := orch.Generate(context.Background(), GenerateParams{
		Term:    "2026-FALL",
		Courses: []string{"CMPUT 174"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.GreaterOrEqual(t, results[0].OverallScore(), results[1].OverallScore())
}

func TestOrchestratorGenerateElectiveIsolation(t *testing.T) {
	mandatory := section("CMPUT 174", "LEC", "A1", "M", "09:00 AM", "10:00 AM")
	electiveA := section("PHIL 100", "LEC", "B1", "M", "09:00 AM", "10:00 AM") // conflicts
	electiveB := section("HIST 100", "LEC", "C1", "T", "01:00 PM", "02:00 PM")

	catalog := &fakeCatalog{byCourse: map[string][][]Section{
		"CMPUT 174": {{mandatory}},
		"PHIL 100":  {{electiveA}},
		"HIST 100":  {{electiveB}},
	}}

	orch := NewOrchestrator(catalog, nil, nil)
	results, err := orch.Generate(context.Background(), GenerateParams{
		Term:    "2026-FALL",
		Courses: []string{"CMPUT 174"},
		Electives: []ElectiveGroup{
			{Courses: []string{"PHIL 100", "HIST 100"}},
		},
	})
	require.NoError(t, err)

	// PHIL 100's only section conflicts with the mandatory lecture, so no
	// schedule containing it can be produced; HIST 100 does not conflict.
	found := false
	for _, r := range results {
		for _, s := range r.Sections {
			if s.Course == "HIST 100" {
				found = true
			}
			assert.NotEqual(t, "PHIL 100", s.Course)
		}
	}
	assert.True(t, found, "expected at least one schedule containing the non-conflicting elective")
}

func TestOrchestratorGenerateMissingTermReturnsEmpty(t *testing.T) {
	orch := NewOrchestrator(&fakeCatalog{}, nil, nil)
	results, err := orch.Generate(context.Background(), GenerateParams{
		Courses: []string{"CMPUT 174"},
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestOrchestratorGenerateMissingCoursesReturnsEmpty(t *testing.T) {
	orch := NewOrchestrator(&fakeCatalog{}, nil, nil)
	results, err := orch.Generate(context.Background(), GenerateParams{
		Term: "2026-FALL",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestOrchestratorGenerateObeyStatusExcludesClosedSections(t *testing.T) {
	open := section("CMPUT 174", "LEC", "A1", "M", "09:00 AM", "10:00 AM")
	cancelled := section("CMPUT 174", "LEC", "A2", "T", "09:00 AM", "10:00 AM")
	cancelled.ClassStatus = strPtr("X")
	closed := section("CMPUT 174", "LEC", "A3", "W", "09:00 AM", "10:00 AM")
	closed.EnrollStatus = strPtr("C")

	catalog := &fakeCatalog{byCourse: map[string][][]Section{
		"CMPUT 174": {{open, cancelled, closed}},
	}}

	orch := NewOrchestrator(catalog, nil, nil)
	results, err := orch.Generate(context.Background(), GenerateParams{
		Term:        "2026-FALL",
		Courses:     []string{"CMPUT 174"},
		Preferences: Preferences{ObeyStatus: true},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A1", results[0].Sections[0].Section)
}

func TestOrchestratorGenerateTruncatesToNumRequested(t *testing.T) {
	lec1 := section("CMPUT 174", "LEC", "A1", "M", "09:00 AM", "10:00 AM")
	lec2 := section("CMPUT 174", "LEC", "A2", "T", "09:00 AM", "10:00 AM")
	catalog := &fakeCatalog{byCourse: map[string][][]Section{
		"CMPUT 174": {{lec1, lec2}},
	}}

	orch := NewOrchestrator(catalog, nil, nil)
	results, err := orch.Generate(context.Background(), GenerateParams{
		Term:         "2026-FALL",
		Courses:      []string{"CMPUT 174"},
		NumRequested: 1,
	})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
