package scheduling

import (
	"time"

	"go.uber.org/zap"

	"planora/utils"
)

// The engine does all day and slot arithmetic on "zoned" values: a zoned
// value's UTC calendar fields equal the wall-clock reading in the target
// zone at that instant. Plain UTC field math (start-of-day, add-N-days) is
// then correct regardless of the zone, and values are converted back to real
// instants only at the boundary. The offset is recomputed per instant, so
// arithmetic across a DST transition stays correct.

// loadLocation resolves an IANA zone name, falling back to UTC.
func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		utils.GetLogger().Warn("unknown time zone, falling back to UTC",
			zap.String("timeZone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

// toZonedTime converts an absolute instant to its zoned representation.
func toZonedTime(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC)
}

// fromZonedTime converts a zoned representation back to the absolute instant,
// reading the zoned value's UTC fields as wall clock in loc.
func fromZonedTime(z time.Time, loc *time.Location) time.Time {
	return time.Date(z.Year(), z.Month(), z.Day(),
		z.Hour(), z.Minute(), z.Second(), z.Nanosecond(), loc)
}

// startOfZonedDay truncates a zoned value to midnight.
func startOfZonedDay(z time.Time) time.Time {
	return time.Date(z.Year(), z.Month(), z.Day(), 0, 0, 0, 0, time.UTC)
}

// dayKey formats a zoned value as its calendar date key.
func dayKey(z time.Time) string {
	return z.Format("2006-01-02")
}

func minutesIntoDay(day time.Time, minutes int) time.Time {
	return day.Add(time.Duration(minutes) * time.Minute)
}
