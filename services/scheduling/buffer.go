package scheduling

import (
	"math"
	"time"

	"planora/models"
)

// bufferWindow is a computed post-execution hold period, in zoned time.
type bufferWindow struct {
	start, end time.Time
}

// computeBufferWindow extends an execution end (zoned) by the buffer
// duration, consuming only valid working time.
//
// An hour buffer starts exactly at execution end when execution was hourly,
// or on the day after execution end when execution was in days, and then
// consumes buffer hours against working hours while skipping blocked days.
// A day buffer starts on the day after execution end and advances the
// required number of unblocked working days, landing on the last day's
// configured end-of-day time.
func computeBufferWindow(
	execEnd time.Time,
	execUnit models.DurationUnit,
	buf *models.Duration,
	week ResolvedWeek,
	blocked func(day time.Time) bool,
) (*bufferWindow, error) {
	if buf == nil || buf.Value <= 0 {
		return nil, nil
	}

	if buf.Unit == models.UnitDays {
		target := int(math.Ceil(buf.Value))
		counted := 0
		var start time.Time
		day := startOfZonedDay(execEnd).AddDate(0, 0, 1)
		for i := 0; i < iterationCapDays; i++ {
			if !blocked(day) {
				rd := week[day.Weekday()]
				if counted == 0 {
					start = minutesIntoDay(day, rd.StartMinutes)
				}
				counted++
				if counted == target {
					return &bufferWindow{start: start, end: minutesIntoDay(day, rd.EndMinutes)}, nil
				}
			}
			day = day.AddDate(0, 0, 1)
		}
		return nil, &IterationCapError{Target: target, Iterations: iterationCapDays, Cursor: day}
	}

	// Hour buffer.
	remaining := int(math.Round(buf.Hours() * 60))
	cursor := execEnd
	if execUnit == models.UnitDays {
		cursor = startOfZonedDay(execEnd).AddDate(0, 0, 1)
	}
	var start time.Time
	started := false
	for i := 0; i < iterationCapDays; i++ {
		day := startOfZonedDay(cursor)
		if blocked(day) {
			cursor = day.AddDate(0, 0, 1)
			continue
		}
		rd := week[day.Weekday()]
		from := rd.StartMinutes
		if cursorMinute := int(cursor.Sub(day) / time.Minute); cursorMinute > from {
			from = cursorMinute
		}
		avail := rd.EndMinutes - from
		if avail <= 0 {
			cursor = day.AddDate(0, 0, 1)
			continue
		}
		if !started {
			start = minutesIntoDay(day, from)
			started = true
		}
		if avail >= remaining {
			return &bufferWindow{start: start, end: minutesIntoDay(day, from+remaining)}, nil
		}
		remaining -= avail
		cursor = day.AddDate(0, 0, 1)
	}
	return nil, &IterationCapError{Target: remaining, Iterations: iterationCapDays, Cursor: cursor}
}
