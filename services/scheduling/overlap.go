package scheduling

import "time"

// windowOverlapPercentage measures team availability across the execution
// window in days mode: starting at the candidate day, it walks the next
// executionDays working days (per the strict week) and returns the fraction
// of them on which at least minResources members are individually free.
// The walk shares the global iteration cap.
func windowOverlapPercentage(
	candidate time.Time,
	executionDays int,
	week ResolvedWeek,
	members map[string]*memberBlocks,
	minResources int,
) (float64, error) {
	if executionDays <= 0 {
		return 0, nil
	}
	counted, hits := 0, 0
	day := candidate
	for i := 0; i < iterationCapDays; i++ {
		if week[day.Weekday()].Working {
			counted++
			if freeMemberCount(members, day) >= minResources {
				hits++
			}
			if counted == executionDays {
				return float64(hits) / float64(counted), nil
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return 0, &IterationCapError{Target: executionDays, Iterations: iterationCapDays, Cursor: day}
}
