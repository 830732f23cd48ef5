package scheduler

import (
	"math/bits"
	"sort"
)

// similarityThreshold is the minimum similarity at which two schedules
// are treated as duplicates during condensation.
const similarityThreshold = 1.00

// Condense sorts schedules ascending by (overall score, bitmap) and walks
// them with a lag/lead pair of pointers, folding every schedule that is
// similar enough to lag into lag's MoreLikeThis list (identified via
// identifier) instead of keeping it as its own entry. The result is
// returned in the same ascending order the walk used; callers that want
// a ranked list re-sort afterward.
func Condense(schedules []*Schedule, identifier func(*Schedule) string) []*Schedule {
	sorted := make([]*Schedule, len(schedules))
	copy(sorted, schedules)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].OverallScore(), sorted[j].OverallScore()
		if si != sj {
			return si < sj
		}
		return bitmapLess(sorted[i].Timetable.Bitmap, sorted[j].Timetable.Bitmap)
	})

	if len(sorted) == 0 {
		return sorted
	}

	kept := make([]bool, len(sorted))
	kept[0] = true
	lag, lead := 0, 1
	for lead < len(sorted) {
		if isSimilar(sorted[lag], sorted[lead]) {
			sorted[lag].MoreLikeThis = append(sorted[lag].MoreLikeThis, identifier(sorted[lead]))
		} else {
			lag = lead
			kept[lag] = true
		}
		lead++
	}

	result := make([]*Schedule, 0, len(sorted))
	for i, s := range sorted {
		if kept[i] {
			result = append(result, s)
		}
	}
	return result
}

func bitmapLess(a, b [NumDays]uint64) bool {
	for day := 0; day < NumDays; day++ {
		if a[day] != b[day] {
			return a[day] < b[day]
		}
	}
	return false
}

func isSimilar(a, b *Schedule) bool {
	return similarity(a, b) >= similarityThreshold
}

func similarity(a, b *Schedule) float64 {
	return 1 - difference(a, b)
}

// difference is the fraction of a's scheduled blocks that differ from b's,
// per day, via XOR popcount. When a has no scheduled blocks at all, the
// source falls back to b's total scheduled-block count rather than
// dividing by zero; that fallback is reproduced here.
func difference(a, b *Schedule) float64 {
	scheduledBlocks := 0
	for day := 0; day < NumDays; day++ {
		scheduledBlocks += bits.OnesCount64(a.Timetable.Bitmap[day])
	}
	if scheduledBlocks == 0 {
		otherBlocks := 0
		for day := 0; day < NumDays; day++ {
			otherBlocks += bits.OnesCount64(b.Timetable.Bitmap[day])
		}
		return float64(otherBlocks)
	}

	diff := 0.0
	for day := 0; day < NumDays; day++ {
		xor := a.Timetable.Bitmap[day] ^ b.Timetable.Bitmap[day]
		diff += float64(bits.OnesCount64(xor)) / 2.0
	}
	return diff / float64(scheduledBlocks)
}
