package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/classtime-scheduler/internal/scheduler"
)

func TestScheduleIdentifierIsOrderIndependent(t *testing.T) {
	a := scheduler.NewSchedule([]scheduler.Section{
		{AsString: "CMPUT 174 LEC A1"},
		{AsString: "MATH 100 LEC D1"},
	}, nil, nil)
	b := scheduler.NewSchedule([]scheduler.Section{
		{AsString: "MATH 100 LEC D1"},
		{AsString: "CMPUT 174 LEC A1"},
	}, nil, nil)

	assert.Equal(t, scheduleIdentifier(a), scheduleIdentifier(b))
}

func TestScheduleIdentifierDiffersForDifferentSections(t *testing.T) {
	a := scheduler.NewSchedule([]scheduler.Section{{AsString: "CMPUT 174 LEC A1"}}, nil, nil)
	b := scheduler.NewSchedule([]scheduler.Section{{AsString: "CMPUT 174 LEC A2"}}, nil, nil)

	assert.NotEqual(t, scheduleIdentifier(a), scheduleIdentifier(b))
}
