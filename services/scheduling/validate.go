package scheduling

import (
	"math"
	"time"

	"planora/models"
)

// ValidateSelection re-applies the search predicates to a client-chosen
// date (and start time, for hourly projects) and confirms it is still valid
// before a booking is created. Every failure comes back as a reason string;
// only an iteration-cap blowup is returned as an error.
func ValidateSelection(in ProposalInput, date string, startTime string) (models.ValidationResult, error) {
	sc, err := newScheduleContext(in, defaultOverlapPctProposals)
	if err != nil {
		return models.ValidationResult{Valid: false, Reason: err.Error()}, nil
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return models.ValidationResult{Valid: false, Reason: "invalid date format, expected YYYY-MM-DD"}, nil
	}
	day := startOfZonedDay(parsed)

	prepEnd, err := earliestBookableInstant(sc.now, sc.eff.Preparation, sc.holidays)
	if err != nil {
		logIterationCap(err, sc)
		return models.ValidationResult{}, err
	}

	if sc.eff.Execution.Unit == models.UnitHours {
		return sc.validateHourSelection(day, startTime, prepEnd)
	}
	return sc.validateDaySelection(day, prepEnd)
}

func (sc *scheduleContext) validateDaySelection(day, prepEnd time.Time) (models.ValidationResult, error) {
	if day.Before(searchStartDay(prepEnd)) {
		return models.ValidationResult{Valid: false, Reason: "selected date is before the preparation lead time"}, nil
	}
	if sc.multi() {
		if multiDayBlocked(day, sc.week, sc.members, sc.eff.MinResources) {
			return models.ValidationResult{Valid: false, Reason: "not enough team members are available on the selected day"}, nil
		}
		execDays := int(math.Ceil(sc.eff.Execution.Value))
		frac, err := windowOverlapPercentage(day, execDays, sc.week, sc.members, sc.eff.MinResources)
		if err != nil {
			logIterationCap(err, sc)
			return models.ValidationResult{}, err
		}
		if !meetsOverlap(frac, sc.eff.MinOverlapPercentage) {
			return models.ValidationResult{Valid: false, Reason: "insufficient team availability across the execution window"}, nil
		}
		return models.ValidationResult{Valid: true}, nil
	}
	if strictDayBlocked(day, sc.week, sc.blocks, sc.loc) {
		return models.ValidationResult{Valid: false, Reason: "selected day is blocked"}, nil
	}
	return models.ValidationResult{Valid: true}, nil
}

func (sc *scheduleContext) validateHourSelection(day time.Time, startTime string, prepEnd time.Time) (models.ValidationResult, error) {
	startMinute, err := parseClockMinutes(startTime)
	if err != nil {
		return models.ValidationResult{Valid: false, Reason: "invalid start time, expected HH:mm"}, nil
	}
	if startMinute%slotStepMinutes != 0 {
		return models.ValidationResult{Valid: false, Reason: "start time must be aligned to the half hour"}, nil
	}

	rd := sc.week[day.Weekday()]
	if !rd.Working {
		return models.ValidationResult{Valid: false, Reason: "selected day is not a working day"}, nil
	}
	if !sc.multi() && sc.blocks.days[dayKey(day)] {
		return models.ValidationResult{Valid: false, Reason: "selected day is blocked"}, nil
	}

	execMinutes := int(math.Round(sc.eff.Execution.Value * 60))
	if startMinute < rd.StartMinutes || startMinute+execMinutes > rd.EndMinutes {
		return models.ValidationResult{Valid: false, Reason: "selected time falls outside working hours"}, nil
	}

	slotStartZ := minutesIntoDay(day, startMinute)
	if slotStartZ.Before(prepEnd) {
		return models.ValidationResult{Valid: false, Reason: "selected time is before the preparation lead time"}, nil
	}
	slotEndZ := slotStartZ.Add(time.Duration(execMinutes) * time.Minute)
	startAbs := fromZonedTime(slotStartZ, sc.loc)
	endAbs := fromZonedTime(slotEndZ, sc.loc)

	if sc.multi() {
		frac := slotOverlapFraction(startAbs, endAbs, sc.members, sc.eff.MinResources)
		if !meetsOverlap(frac, sc.eff.MinOverlapPercentage) {
			return models.ValidationResult{Valid: false, Reason: "insufficient team overlap for the selected slot"}, nil
		}
	} else if !slotFreeStrict(startAbs, endAbs, sc.blocks) {
		return models.ValidationResult{Valid: false, Reason: "selected time slot is blocked"}, nil
	}

	if sc.eff.Buffer != nil {
		bw, err := computeBufferWindow(slotEndZ, models.UnitHours, sc.eff.Buffer, sc.week, sc.dayBlockedFn())
		if err != nil {
			logIterationCap(err, sc)
			return models.ValidationResult{}, err
		}
		if bw != nil && !sc.multi() && sameZonedDay(bw.start, bw.end) &&
			!slotFreeStrict(fromZonedTime(bw.start, sc.loc), fromZonedTime(bw.end, sc.loc), sc.blocks) {
			return models.ValidationResult{Valid: false, Reason: "buffer window after the selected slot is blocked"}, nil
		}
	}

	return models.ValidationResult{Valid: true}, nil
}
