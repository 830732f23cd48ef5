package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/noah-isme/classtime-scheduler/internal/scheduler"
)

// MemoryCatalog is an in-memory scheduler.CatalogPort backed by fixture
// records, used by tests and local demos in place of Postgres.
type MemoryCatalog struct {
	mu       sync.RWMutex
	sections []SectionRecord
}

// NewMemoryCatalog builds a catalog seeded with the given records.
func NewMemoryCatalog(sections ...SectionRecord) *MemoryCatalog {
	return &MemoryCatalog{sections: sections}
}

// Seed adds more fixture records to the catalog.
func (c *MemoryCatalog) Seed(sections ...SectionRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sections = append(c.sections, sections...)
}

// CourseComponents returns, for each requested course offered in term, its
// sections grouped by component. single and currentStatus are accepted
// for interface parity with PostgresCatalog; an in-memory fixture has no
// live-status distinction to make.
func (c *MemoryCatalog) CourseComponents(_ context.Context, term string, courseIDs []string, single bool, currentStatus bool) ([][]scheduler.Section, error) {
	_ = single
	_ = currentStatus

	c.mu.RLock()
	defer c.mu.RUnlock()

	wanted := make(map[string]bool, len(courseIDs))
	for _, id := range courseIDs {
		wanted[id] = true
	}

	byComponent := make(map[string][]scheduler.Section)
	var order []string
	for _, rec := range c.sections {
		if rec.Term != term || !wanted[rec.Course] {
			continue
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
func (c *MemoryCatalog) ScheduleIdentifier(schedule *scheduler.Schedule) string {
	return scheduleIdentifier(schedule)
}
