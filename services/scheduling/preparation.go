package scheduling

import (
	"math"
	"time"

	"planora/models"
)

// iterationCapDays bounds every forward day-walk in the engine to roughly
// two years, so a single query can never run unbounded even without caller
// cancellation. Exceeding it is a fatal, logged error for the request.
const iterationCapDays = 730

// earliestBookableInstant advances from now (zoned) by the preparation lead
// time. A lead time in hours is added directly. A lead time in days walks
// forward one day at a time, counting only weekdays that are not company
// holidays, and lands on the start of the day after the last counted
// preparation day.
func earliestBookableInstant(now time.Time, prep *models.Duration, holidays map[string]bool) (time.Time, error) {
	if prep == nil || prep.Value <= 0 {
		return now, nil
	}
	if prep.Unit == models.UnitHours {
		return now.Add(time.Duration(prep.Value * float64(time.Hour))), nil
	}

	target := int(math.Ceil(prep.Value))
	counted := 0
	day := startOfZonedDay(now).AddDate(0, 0, 1)
	for i := 0; i < iterationCapDays; i++ {
		if isPreparationDay(day, holidays) {
			counted++
			if counted == target {
				return day.AddDate(0, 0, 1), nil
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, &IterationCapError{Target: target, Iterations: iterationCapDays, Cursor: day}
}

// isPreparationDay reports whether a day consumes preparation lead time:
// a weekday that is not a company holiday.
func isPreparationDay(day time.Time, holidays map[string]bool) bool {
	wd := day.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !holidays[dayKey(day)]
}
