package scheduling

import "time"

const (
	// partialBlockThresholdMinutes is the per-day tolerance: a day loses its
	// usability only once at least four working hours are blocked. Minor
	// interruptions do not disqualify a whole day.
	partialBlockThresholdMinutes = 4 * 60

	// slotStepMinutes aligns hourly-mode candidate starts to the half hour.
	slotStepMinutes = 30
)

// strictDayBlocked decides whether a calendar day is unusable in strict
// mode: a full-day block, a non-working weekday, or at least the
// partial-block threshold of working minutes lost to blocked intervals.
// The threshold is inclusive: exactly four blocked hours block the day.
func strictDayBlocked(day time.Time, week ResolvedWeek, bs blockSet, loc *time.Location) bool {
	if bs.days[dayKey(day)] {
		return true
	}
	rd := week[day.Weekday()]
	if !rd.Working {
		return true
	}
	winStart := fromZonedTime(minutesIntoDay(day, rd.StartMinutes), loc)
	winEnd := fromZonedTime(minutesIntoDay(day, rd.EndMinutes), loc)
	return blockedMinutesWithin(winStart, winEnd, bs.intervals) >= partialBlockThresholdMinutes
}

// multiDayBlocked decides whether a day is unusable in multi-resource mode:
// a non-working weekday, or fewer than minResources members individually
// free that day.
func multiDayBlocked(day time.Time, week ResolvedWeek, members map[string]*memberBlocks, minResources int) bool {
	if !week[day.Weekday()].Working {
		return true
	}
	return freeMemberCount(members, day) < minResources
}

// enumerateSlotStarts lists half-hour-aligned candidate start minutes within
// the day's working window for which a slot of slotMinutes still fits.
func enumerateSlotStarts(rd ResolvedDay, slotMinutes int) []int {
	if !rd.Working || slotMinutes <= 0 {
		return nil
	}
	start := rd.StartMinutes
	if rem := start % slotStepMinutes; rem != 0 {
		start += slotStepMinutes - rem
	}
	var starts []int
	for ; start+slotMinutes <= rd.EndMinutes; start += slotStepMinutes {
		starts = append(starts, start)
	}
	return starts
}

// slotFreeStrict reports whether an absolute slot range avoids every merged
// blocked interval.
func slotFreeStrict(start, end time.Time, bs blockSet) bool {
	return !intersectsAny(start, end, bs.intervals)
}

// slotOverlapFraction samples the slot every 30 minutes and returns the
// fraction of samples at which at least minResources members are
// simultaneously free.
func slotOverlapFraction(start, end time.Time, members map[string]*memberBlocks, minResources int) float64 {
	if !end.After(start) {
		return 0
	}
	samples, hits := 0, 0
	for t := start; t.Before(end); t = t.Add(slotStepMinutes * time.Minute) {
		samples++
		free := 0
		for _, mb := range members {
			if mb.freeAt(t) {
				free++
			}
		}
		if free >= minResources {
			hits++
		}
	}
	return float64(hits) / float64(samples)
}

// meetsOverlap converts a fraction to the percentage gate.
func meetsOverlap(fraction float64, minOverlapPercentage int) bool {
	return fraction*100 >= float64(minOverlapPercentage)
}
