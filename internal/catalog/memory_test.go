package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMemoryCatalogCourseComponentsGroupsByComponent(t *testing.T) {
	cat := NewMemoryCatalog(
		SectionRecord{Term: "2026-FALL", Course: "CMPUT 174", Component: "LEC", Section: "A1", AsString: "CMPUT 174 LEC A1"},
		SectionRecord{Term: "2026-FALL", Course: "CMPUT 174", Component: "LEC", Section: "A2", AsString: "CMPUT 174 LEC A2"},
		SectionRecord{Term: "2026-FALL", Course: "CMPUT 174", Component: "LAB", Section: "B1", AsString: "CMPUT 174 LAB B1"},
		SectionRecord{Term: "2026-WINTER", Course: "CMPUT 174", Component: "LEC", Section: "C1", AsString: "other term"},
		SectionRecord{Term: "2026-FALL", Course: "MATH 100", Component: "LEC", Section: "D1", AsString: "MATH 100 LEC D1"},
	)

	groups, err := cat.CourseComponents(context.Background(), "2026-FALL", []string{"CMPUT 174"}, false, true)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	var total int
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, 3, total)
}

func TestMemoryCatalogCourseComponentsPreservesStatusRegardlessOfCurrentStatusFlag(t *testing.T) {
	cat := NewMemoryCatalog(
		SectionRecord{
			Term: "2026-FALL", Course: "CMPUT 174", Component: "LEC", Section: "A1",
			AsString: "CMPUT 174 LEC A1", ClassStatus: strPtr("A"), EnrollStatus: strPtr("O"),
		},
	)

	groups, err := cat.CourseComponents(context.Background(), "2026-FALL", []string{"CMPUT 174"}, false, false)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
	require.NotNil(t, groups[0][0].ClassStatus)
	assert.Equal(t, "A", *groups[0][0].ClassStatus)
}

func TestMemoryCatalogSeedAppendsFixtures(t *testing.T) {
	cat := NewMemoryCatalog()
	cat.Seed(SectionRecord{Term: "2026-FALL", Course: "CMPUT 174", Component: "LEC", Section: "A1", AsString: "CMPUT 174 LEC A1"})

	groups, err := cat.CourseComponents(context.Background(), "2026-FALL", []string{"CMPUT 174"}, false, true)
	require.NoError(t, err)
	require.Len(t, groups, 1)
}

func TestMemoryCatalogCourseComponentsNoMatchReturnsEmpty(t *testing.T) {
	cat := NewMemoryCatalog()
	groups, err := cat.CourseComponents(context.Background(), "2026-FALL", []string{"CMPUT 174"}, false, true)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
