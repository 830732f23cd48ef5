package catalog

import (
	"sort"
	"strings"

	"github.com/noah-isme/classtime-scheduler/internal/scheduler"
)

// scheduleIdentifier returns a stable identifier for a schedule, built
// from its sections' asString values sorted ascending. Both catalog
// adapters use this for the condenser's "more like this" references.
func scheduleIdentifier(schedule *scheduler.Schedule) string {
	ids := make([]string, 0, len(schedule.Sections))
	for _, sec := range schedule.Sections {
		ids = append(ids, sec.AsString)
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
