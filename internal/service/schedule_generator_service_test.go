package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/classtime-scheduler/internal/catalog"
	"github.com/noah-isme/classtime-scheduler/internal/dto"
	"github.com/noah-isme/classtime-scheduler/internal/scheduler"
)

func strPtr(s string) *string { return &s }

func TestScheduleGeneratorServiceGenerateReturnsRankedSchedules(t *testing.T) {
	cat := catalog.NewMemoryCatalog(
		catalog.SectionRecord{
			Term: "2026-FALL", Course: "CMPUT 174", Component: "LEC", Section: "A1",
			AsString: "CMPUT 174 LEC A1", Day: strPtr("M"), StartTime: strPtr("09:00 AM"), EndTime: strPtr("10:00 AM"),
		},
		catalog.SectionRecord{
			Term: "2026-FALL", Course: "CMPUT 174", Component: "LEC", Section: "A2",
			AsString: "CMPUT 174 LEC A2", Day: strPtr("T"), StartTime: strPtr("09:00 AM"), EndTime: strPtr("10:00 AM"),
		},
	)
	orch := scheduler.NewOrchestrator(cat, nil, nil)
	svc := NewScheduleGeneratorService(orch, nil, nil, 0, nil, nil, nil, nil)

	resp, cacheHit, err := svc.Generate(context.Background(), dto.GenerateRequest{
		Term:    "2026-FALL",
		Courses: []string{"CMPUT 174"},
	})
	require.NoError(t, err)
	assert.False(t, cacheHit)
	require.Len(t, resp.Schedules, 2)
}

func TestScheduleGeneratorServiceGenerateRejectsMissingTerm(t *testing.T) {
	cat := catalog.NewMemoryCatalog()
	orch := scheduler.NewOrchestrator(cat, nil, nil)
	svc := NewScheduleGeneratorService(orch, nil, nil, 0, nil, nil, nil, nil)

	_, _, err := svc.Generate(context.Background(), dto.GenerateRequest{
		Courses: []string{"CMPUT 174"},
	})
	assert.Error(t, err)
}
