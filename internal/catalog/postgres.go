package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/classtime-scheduler/internal/scheduler"
)

// PostgresCatalog is a sqlx/lib-pq backed scheduler.CatalogPort, adapted
// from the teacher's ScheduleRepository query-building style.
type PostgresCatalog struct {
	db *sqlx.DB
}

// NewPostgresCatalog wires a catalog against an existing connection pool.
func NewPostgresCatalog(db *sqlx.DB) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

const selectSectionsColumns = `id, term, institution, course, component, section, as_string,
	day, start_time, end_time, room, auto_enroll, auto_enroll_component,
	class_status, enroll_status, created_at, updated_at`

// CourseComponents loads every section offered in term for courseIDs,
// grouped by (course, component). currentStatus controls whether the
// live class/enroll status columns are surfaced or scrubbed, matching
// the distinction the teacher's repository makes between a live read and
// a cached one.
func (c *PostgresCatalog) CourseComponents(ctx context.Context, term string, courseIDs []string, single bool, currentStatus bool) ([][]scheduler.Section, error) {
	_ = single
	if len(courseIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT %s FROM sections WHERE term = ? AND course IN (?) ORDER BY course, component, section`, selectSectionsColumns),
		term, courseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("build course components query: %w", err)
	}
	query = c.db.Rebind(query)

	var records []SectionRecord
	if err := c.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("query course components: %w", err)
	}

	byComponent := make(map[string][]scheduler.Section)
	var order []string
	for _, rec := range records {
		if !currentStatus {
			rec.ClassStatus = nil
			rec.EnrollStatus = nil
		}
		key := rec.Course + "\x00" + rec.Component
		if _, ok := byComponent[key]; !ok {
			order = append(order, key)
		}
		byComponent[key] = append(byComponent[key], rec.ToSection())
	}
	sort.Strings(order)

	groups := make([][]scheduler.Section, 0, len(order))
	for _, key := range order {
		groups = append(groups, byComponent[key])
	}
	return groups, nil
}

// ScheduleIdentifier returns a stable identifier for schedule.
func (c *PostgresCatalog) ScheduleIdentifier(schedule *scheduler.Schedule) string {
	return scheduleIdentifier(schedule)
}
