package scheduling

import (
	"fmt"
	"math"
	"time"

	"planora/models"
)

// FindProjectWindow is the simpler project-level "first feasible window"
// lookup. It runs over a 90-day horizon with an explicit primary resource —
// the member whose own availability starts earliest — and requires every
// other assigned member to be free on at least the overlap percentage of the
// primary's available days inside the candidate window.
//
// With preferShortest false the earliest qualifying window of any length
// between the execution-day count and the maximum throughput slack is
// returned; with preferShortest true the window with the greatest total
// primary availability and the shortest qualifying length wins.
func FindProjectWindow(in ProposalInput, preferShortest bool) (*models.ScheduleWindow, error) {
	sc, err := newScheduleContext(in, defaultOverlapPctWindow)
	if err != nil {
		return nil, nil
	}

	prepEnd, err := earliestBookableInstant(sc.now, sc.eff.Preparation, sc.holidays)
	if err != nil {
		logIterationCap(err, sc)
		return nil, err
	}
	firstDay := searchStartDay(prepEnd)

	execValue := sc.eff.Execution.Value
	if sc.eff.Execution.Unit == models.UnitHours {
		// Hourly projects occupy a single day from this lookup's viewpoint.
		execValue = 1
	}
	execDays := int(math.Ceil(execValue))
	maxLen := int(math.Ceil(earliestSlackFactor * execValue))

	primary := sc.pickPrimary(firstDay)
	if primary == nil {
		return nil, nil
	}
	primaryFree := freeDays(primary, firstDay, windowHorizonDays)
	if len(primaryFree) < execDays {
		return nil, nil
	}

	type candidate struct {
		start        time.Time
		length       int
		primaryAvail int
		execDays     []time.Time
	}
	var best *candidate
	better := func(a, b *candidate) bool {
		if !preferShortest {
			if !a.start.Equal(b.start) {
				return a.start.Before(b.start)
			}
			return a.length < b.length
		}
		if a.primaryAvail != b.primaryAvail {
			return a.primaryAvail > b.primaryAvail
		}
		if a.length != b.length {
			return a.length < b.length
		}
		return a.start.Before(b.start)
	}

	for _, start := range primaryFree {
		for length := execDays; length <= maxLen; length++ {
			windowEnd := start.AddDate(0, 0, length)
			var inWindow []time.Time
			for _, d := range primaryFree {
				if !d.Before(start) && d.Before(windowEnd) {
					inWindow = append(inWindow, d)
				}
			}
			if len(inWindow) < execDays {
				continue
			}
			if !sc.secondariesQualify(primary, inWindow) {
				continue
			}
			c := &candidate{start: start, length: length, primaryAvail: len(inWindow), execDays: inWindow[:execDays]}
			if best == nil || better(c, best) {
				best = c
			}
			if !preferShortest {
				break
			}
		}
		if best != nil && !preferShortest {
			break
		}
	}
	if best == nil {
		return nil, nil
	}
	return sc.buildWindow(primary, best.execDays)
}

// pickPrimary returns the member whose earliest free day comes first,
// scanning members in project order for determinism.
func (sc *scheduleContext) pickPrimary(firstDay time.Time) *memberBlocks {
	var primary *memberBlocks
	var primaryDay time.Time
	for _, id := range sc.project.TeamMemberIDs {
		mb, ok := sc.members[id]
		if !ok {
			continue
		}
		days := freeDays(mb, firstDay, windowHorizonDays)
		if len(days) == 0 {
			continue
		}
		if primary == nil || days[0].Before(primaryDay) {
			primary = mb
			primaryDay = days[0]
		}
	}
	return primary
}

// freeDays lists the member's individually unblocked days over the horizon.
func freeDays(mb *memberBlocks, firstDay time.Time, horizonDays int) []time.Time {
	var days []time.Time
	cursor := newDayCursor(firstDay, horizonDays)
	for {
		day, ok := cursor.next()
		if !ok {
			return days
		}
		if !mb.dayBlocked(day) {
			days = append(days, day)
		}
	}
}

// secondariesQualify checks every non-primary member against the overlap
// percentage of the primary's available days.
func (sc *scheduleContext) secondariesQualify(primary *memberBlocks, primaryDays []time.Time) bool {
	for _, mb := range sc.members {
		if mb == primary {
			continue
		}
		free := 0
		for _, day := range primaryDays {
			if !mb.dayBlocked(day) {
				free++
			}
		}
		if !meetsOverlap(float64(free)/float64(len(primaryDays)), sc.eff.MinOverlapPercentage) {
			return false
		}
	}
	return true
}

func (sc *scheduleContext) buildWindow(primary *memberBlocks, execDays []time.Time) (*models.ScheduleWindow, error) {
	startDay := execDays[0]
	endDay := execDays[len(execDays)-1]
	startZ := minutesIntoDay(startDay, primary.week[startDay.Weekday()].StartMinutes)
	execEndZ := minutesIntoDay(endDay, primary.week[endDay.Weekday()].EndMinutes)

	win := &models.ScheduleWindow{
		ScheduledStartDate:        fromZonedTime(startZ, sc.loc),
		ScheduledExecutionEndDate: fromZonedTime(execEndZ, sc.loc),
		AssignedTeamMembers:       sc.project.TeamMemberIDs,
	}
	bw, err := computeBufferWindow(execEndZ, models.UnitDays, sc.eff.Buffer, primary.week, primary.dayBlocked)
	if err != nil {
		logIterationCap(err, sc)
		return nil, err
	}
	if bw != nil {
		bufferStart := fromZonedTime(bw.start, sc.loc)
		bufferEnd := fromZonedTime(bw.end, sc.loc)
		unit := sc.eff.Buffer.Unit
		win.ScheduledBufferStartDate = &bufferStart
		win.ScheduledBufferEndDate = &bufferEnd
		win.ScheduledBufferUnit = &unit
	}
	return win, nil
}

// BuildScheduleWindow derives the concrete window for a validated candidate
// date (and start time in hourly mode) for the booking-creation flow.
// Callers are expected to run ValidateSelection first; absent or unusable
// input yields a nil window.
func BuildScheduleWindow(in ProposalInput, date string, startTime string) (*models.ScheduleWindow, error) {
	sc, err := newScheduleContext(in, defaultOverlapPctProposals)
	if err != nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, nil
	}
	day := startOfZonedDay(parsed)
	blocked := sc.dayBlockedFn()

	if sc.eff.Execution.Unit == models.UnitHours {
		startMinute, err := parseClockMinutes(startTime)
		if err != nil {
			return nil, nil
		}
		execMinutes := int(math.Round(sc.eff.Execution.Value * 60))
		startZ := minutesIntoDay(day, startMinute)
		execEndZ := startZ.Add(time.Duration(execMinutes) * time.Minute)
		win := &models.ScheduleWindow{
			ScheduledStartDate:        fromZonedTime(startZ, sc.loc),
			ScheduledExecutionEndDate: fromZonedTime(execEndZ, sc.loc),
			ScheduledStartTime:        formatClockMinutes(startMinute),
			ScheduledEndTime:          formatClockMinutes(startMinute + execMinutes),
			AssignedTeamMembers:       sc.project.TeamMemberIDs,
		}
		if err := attachBuffer(win, sc, execEndZ, models.UnitHours, blocked); err != nil {
			return nil, err
		}
		return win, nil
	}

	execDays := int(math.Ceil(sc.eff.Execution.Value))
	endDay, _, err := advanceExecutionDays(day, execDays, blocked)
	if err != nil {
		logIterationCap(err, sc)
		return nil, err
	}
	startZ := minutesIntoDay(day, sc.week[day.Weekday()].StartMinutes)
	execEndZ := minutesIntoDay(endDay, sc.week[endDay.Weekday()].EndMinutes)
	win := &models.ScheduleWindow{
		ScheduledStartDate:        fromZonedTime(startZ, sc.loc),
		ScheduledExecutionEndDate: fromZonedTime(execEndZ, sc.loc),
		AssignedTeamMembers:       sc.project.TeamMemberIDs,
	}
	if err := attachBuffer(win, sc, execEndZ, models.UnitDays, blocked); err != nil {
		return nil, err
	}
	return win, nil
}

func attachBuffer(win *models.ScheduleWindow, sc *scheduleContext, execEndZ time.Time, execUnit models.DurationUnit, blocked func(day time.Time) bool) error {
	bw, err := computeBufferWindow(execEndZ, execUnit, sc.eff.Buffer, sc.week, blocked)
	if err != nil {
		logIterationCap(err, sc)
		return err
	}
	if bw == nil {
		return nil
	}
	bufferStart := fromZonedTime(bw.start, sc.loc)
	bufferEnd := fromZonedTime(bw.end, sc.loc)
	unit := sc.eff.Buffer.Unit
	win.ScheduledBufferStartDate = &bufferStart
	win.ScheduledBufferEndDate = &bufferEnd
	win.ScheduledBufferUnit = &unit
	return nil
}

func formatClockMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
