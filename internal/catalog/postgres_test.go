package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestPostgresCatalogCourseComponentsGroupsAndScrubsStatus(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	cat := NewPostgresCatalog(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "term", "institution", "course", "component", "section", "as_string",
		"day", "start_time", "end_time", "room", "auto_enroll", "auto_enroll_component",
		"class_status", "enroll_status", "created_at", "updated_at",
	}).AddRow(
		"s1", "2026-FALL", "ualberta", "CMPUT 174", "LEC", "A1", "CMPUT 174 LEC A1",
		"M", "09:00 AM", "10:00 AM", nil, nil, nil,
		"A", "O", now, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).WillReturnRows(rows)

	groups, err := cat.CourseComponents(context.Background(), "2026-FALL", []string{"CMPUT 174"}, false, false)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
	assert.Nil(t, groups[0][0].ClassStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCatalogCourseComponentsEmptyCourseIDsSkipsQuery(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	cat := NewPostgresCatalog(db)

	groups, err := cat.CourseComponents(context.Background(), "2026-FALL", nil, false, true)
	require.NoError(t, err)
	assert.Nil(t, groups)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedScheduleRepositoryCreateVersionedAssignsNextVersion(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	repo := NewSavedScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(version), 0) + 1 FROM saved_schedules WHERE student_id = $1 AND term = $2")).
		WithArgs("student-1", "2026-FALL").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO saved_schedules")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	saved := &SavedSchedule{StudentID: "student-1", Term: "2026-FALL", Score: 0.75}
	err := repo.CreateVersioned(context.Background(), nil, saved, []SavedSection{
		{Course: "CMPUT 174", Component: "LEC", Section: "A1", AsString: "CMPUT 174 LEC A1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Version)
	assert.Equal(t, SavedScheduleStatusDraft, saved.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedScheduleRepositoryCreateVersionedRequiresStudentAndTerm(t *testing.T) {
	db, _, cleanup := newCatalogMock(t)
	defer cleanup()
	repo := NewSavedScheduleRepository(db)

	err := repo.CreateVersioned(context.Background(), nil, &SavedSchedule{}, nil)
	assert.Error(t, err)
}
