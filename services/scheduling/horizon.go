package scheduling

import "time"

const (
	// proposalHorizonDays bounds the main proposal search.
	proposalHorizonDays = 180
	// windowHorizonDays bounds the primary/secondary project-window lookup.
	windowHorizonDays = 90
)

// dayCursor yields successive zoned day starts up to a fixed horizon. The
// cap is a structural property of the cursor, not a counter scattered
// through the search loops.
type dayCursor struct {
	day       time.Time
	remaining int
}

func newDayCursor(start time.Time, horizonDays int) *dayCursor {
	return &dayCursor{day: startOfZonedDay(start), remaining: horizonDays}
}

// next returns the next day start, or false once the horizon is exhausted.
func (c *dayCursor) next() (time.Time, bool) {
	if c.remaining <= 0 {
		return time.Time{}, false
	}
	day := c.day
	c.day = c.day.AddDate(0, 0, 1)
	c.remaining--
	return day, true
}
