package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"planora/models"
)

const (
	defaultDayStartMinutes = 9 * 60  // 09:00
	defaultDayEndMinutes   = 17 * 60 // 17:00
)

// ResolvedDay is one weekday of a fully resolved working-hours pattern,
// with times parsed into minutes from midnight.
type ResolvedDay struct {
	Working      bool
	StartMinutes int
	EndMinutes   int
}

// ResolvedWeek holds one ResolvedDay per weekday, indexed by time.Weekday.
type ResolvedWeek [7]ResolvedDay

// DefaultWorkingWeek is the system fallback pattern: Monday through Friday,
// 09:00 to 17:00.
func DefaultWorkingWeek() ResolvedWeek {
	var week ResolvedWeek
	for wd := time.Monday; wd <= time.Friday; wd++ {
		week[wd] = ResolvedDay{Working: true, StartMinutes: defaultDayStartMinutes, EndMinutes: defaultDayEndMinutes}
	}
	return week
}

// ResolveWeeklyAvailability merges a possibly-partial weekly pattern with the
// given defaults into a complete week. Weekdays missing from the pattern keep
// the default entry; a declared day with end at or before start is rejected
// as not working.
func ResolveWeeklyAvailability(weekly map[time.Weekday]models.DayPattern, defaults ResolvedWeek) ResolvedWeek {
	week := defaults
	for wd, pattern := range weekly {
		if wd < time.Sunday || wd > time.Saturday {
			continue
		}
		if !pattern.Available {
			week[wd] = ResolvedDay{}
			continue
		}
		start := defaults[wd].StartMinutes
		end := defaults[wd].EndMinutes
		if !defaults[wd].Working {
			start, end = defaultDayStartMinutes, defaultDayEndMinutes
		}
		if pattern.Start != "" {
			if m, err := parseClockMinutes(pattern.Start); err == nil {
				start = m
			}
		}
		if pattern.End != "" {
			if m, err := parseClockMinutes(pattern.End); err == nil {
				end = m
			}
		}
		if end <= start {
			week[wd] = ResolvedDay{}
			continue
		}
		week[wd] = ResolvedDay{Working: true, StartMinutes: start, EndMinutes: end}
	}
	return week
}

// parseClockMinutes parses an "HH:mm" wall-clock string into minutes from
// midnight.
func parseClockMinutes(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return hours*60 + minutes, nil
}
