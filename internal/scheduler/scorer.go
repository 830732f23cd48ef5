package scheduler

import "math/bits"

// Scorer lazily computes and caches a schedule's named preference scores.
// A zero-weighted criterion is never evaluated, matching the short-circuit
// the source takes when a weight is explicitly 0.
type Scorer struct {
	schedule *Schedule
	cache    map[string]float64
}

// NewScorer wires a scorer to its owning schedule.
func NewScorer(s *Schedule) *Scorer {
	return &Scorer{schedule: s}
}

// Read returns a single named score (or "overall"), computing the full
// set on first use.
func (sc *Scorer) Read(name string) float64 {
	sc.update()
	return sc.cache[name]
}

// ReadAll returns every named score plus "overall".
func (sc *Scorer) ReadAll() map[string]float64 {
	sc.update()
	out := make(map[string]float64, len(sc.cache))
	for k, v := range sc.cache {
		out[k] = v
	}
	return out
}

func (sc *Scorer) update() {
	if sc.cache != nil {
		return
	}
	sc.cache = map[string]float64{"overall": 0}
	if len(sc.schedule.Sections) == 0 {
		return
	}

	overall := 0.0
	for _, name := range []string{"no-marathons", "day-classes", "start-early"} {
		w := sc.weight(name)
		value := 0.0
		if w != 0 {
			value = float64(w) * sc.score(name)
		}
		sc.cache[name] = value
		overall += value
	}
	sc.cache["overall"] = overall
}

func (sc *Scorer) weight(name string) int {
	p := sc.schedule.Preferences
	switch name {
	case "no-marathons":
		return p.NoMarathons
	case "day-classes":
		return p.DayClasses
	case "start-early":
		return p.StartEarly
	default:
		return 0
	}
}

func (sc *Scorer) score(name string) float64 {
	switch name {
	case "no-marathons":
		return sc.noMarathons()
	case "day-classes":
		return sc.dayClasses()
	case "start-early":
		return sc.startEarly()
	default:
		return 0
	}
}

const (
	decentSumOfLongest   = 30
	decentAverageLength  = 4.0
	decentEarlyStartBlock = 18
)

// nightZone flags every block outside the daytime window, carried over
// bit-for-bit from the source constant (16 leading + 14 trailing set
// bits across the 48-block day).
const nightZone uint64 = 0b111111111111111100000000000000000011111111111111

func (sc *Scorer) noMarathons() float64 {
	sumOfLongest := 0
	sumOfAverages := 0.0
	for day := 0; day < NumDays; day++ {
		sumOfLongest += longestRun(sc.schedule.Timetable.Bitmap[day])
		sumOfAverages += averageSession(sc.schedule.Timetable.Grid[day][:])
	}
	averageLength := sumOfAverages / NumDays
	return 0.5 * (float64(decentSumOfLongest-sumOfLongest) + (decentAverageLength - averageLength))
}

// longestRun finds the longest run of consecutive set bits in bitmap via
// the shift-and-AND idiom: each iteration keeps only bits that are part
// of a run at least one bit longer than the last.
func longestRun(bitmap uint64) int {
	longest := 0
	for bitmap != 0 {
		bitmap &= bitmap << 1
		longest++
	}
	return longest
}

// averageSession sums the lengths of the occupied runs in dayGrid that
// an Open block terminates and divides by the number of Open blocks
// (each Open block counts as the end of a run, possibly of length 0; a
// run reaching the last block is not counted). A day with no Open block
// at all (fully booked or fully busy) divides by zero here exactly as
// the source does: its own zero-guard assigns to a misspelled local
// (`num_session` instead of `num_sessions`) and so never actually
// prevents the division. That is reproduced deliberately — see
// DESIGN.md's Open Question decision on this scorer — rather than
// silently "fixed", which would change the score such a day receives
// relative to the source. A fully-open day scores 0.
func averageSession(dayGrid []int) float64 {
	sessionLength := 0
	sessionLengths := 0
	numSessions := 0
	for _, block := range dayGrid {
		if block != int(Open) {
			sessionLength++
		} else {
			sessionLengths += sessionLength
			numSessions++
			sessionLength = 0
		}
	}
	return float64(sessionLengths) / float64(numSessions)
}

func (sc *Scorer) dayClasses() float64 {
	total := 0
	for day := 0; day < NumDays; day++ {
		total += bits.OnesCount64(sc.schedule.Timetable.Bitmap[day] & nightZone)
	}
	avg := float64(total) / NumDays
	return 1.5 * (0 - avg)
}

func (sc *Scorer) startEarly() float64 {
	total := 0
	count := 0
	for day := 0; day < NumDays; day++ {
		grid := sc.schedule.Timetable.Grid[day]
		for block, mark := range grid {
			if mark != int(Open) && mark != int(Busy) {
				total += block
				count++
				break
			}
		}
	}
	if count == 0 {
		return 0
	}
	avg := float64(total) / float64(count)
	return decentEarlyStartBlock - avg
}
