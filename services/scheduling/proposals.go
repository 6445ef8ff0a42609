package scheduling

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"planora/models"
	"planora/utils"
)

const (
	// earliestSlackFactor admits a candidate as "earliest" while its
	// throughput stays within execution plus 100% slack.
	earliestSlackFactor = 2.0
	// shortestSlackFactor admits a candidate as "shortest throughput" only
	// within execution plus 20% slack.
	shortestSlackFactor = 1.2
)

// ComputeScheduleProposals walks forward over a 180-day horizon and returns
// the earliest feasible window and the shortest-elapsed-time feasible window
// for the project, or nil when the project has no resources or no execution
// duration.
func ComputeScheduleProposals(in ProposalInput) (*models.ScheduleProposals, error) {
	sc, err := newScheduleContext(in, defaultOverlapPctProposals)
	if err != nil {
		// Absent or malformed input is "no availability", not an error.
		return nil, nil
	}

	prepEnd, err := earliestBookableInstant(sc.now, sc.eff.Preparation, sc.holidays)
	if err != nil {
		logIterationCap(err, sc)
		return nil, err
	}

	if sc.eff.Execution.Unit == models.UnitHours {
		return sc.searchHours(prepEnd)
	}
	return sc.searchDays(prepEnd)
}

// searchStartDay is the first candidate day after the preparation lead time.
// A mid-day lead-time end pushes day-granular work to the next day.
func searchStartDay(prepEnd time.Time) time.Time {
	day := startOfZonedDay(prepEnd)
	if prepEnd.Equal(day) {
		return day
	}
	return day.AddDate(0, 0, 1)
}

func (sc *scheduleContext) searchDays(prepEnd time.Time) (*models.ScheduleProposals, error) {
	execValue := sc.eff.Execution.Value
	execDays := int(math.Ceil(execValue))
	firstDay := searchStartDay(prepEnd)
	blocked := sc.dayBlockedFn()

	result := &models.ScheduleProposals{
		Mode:                 models.ModeDays,
		EarliestBookableDate: fromZonedTime(firstDay, sc.loc),
	}

	var earliest, shortest *models.Proposal
	bestThroughput := 0
	cursor := newDayCursor(firstDay, proposalHorizonDays)
	for {
		day, ok := cursor.next()
		if !ok {
			break
		}
		if blocked(day) {
			continue
		}
		if sc.multi() {
			frac, err := windowOverlapPercentage(day, execDays, sc.week, sc.members, sc.eff.MinResources)
			if err != nil {
				logIterationCap(err, sc)
				return nil, err
			}
			if !meetsOverlap(frac, sc.eff.MinOverlapPercentage) {
				continue
			}
		}

		endDay, throughput, err := advanceExecutionDays(day, execDays, blocked)
		if err != nil {
			logIterationCap(err, sc)
			return nil, err
		}

		if earliest == nil && float64(throughput) <= earliestSlackFactor*execValue {
			p, err := sc.buildDayProposal(day, endDay, blocked)
			if err != nil {
				logIterationCap(err, sc)
				return nil, err
			}
			earliest = p
		}
		if float64(throughput) <= shortestSlackFactor*execValue && (shortest == nil || throughput < bestThroughput) {
			p, err := sc.buildDayProposal(day, endDay, blocked)
			if err != nil {
				logIterationCap(err, sc)
				return nil, err
			}
			shortest = p
			bestThroughput = throughput
		}
		// A throughput equal to the execution-day count cannot be beaten.
		if earliest != nil && shortest != nil && bestThroughput == execDays {
			break
		}
	}

	result.EarliestProposal = earliest
	result.ShortestThroughputProposal = shortest
	return result, nil
}

// advanceExecutionDays walks forward from the candidate day until the
// required number of unblocked working days has been consumed. Throughput is
// the calendar-day span from candidate through completion, inclusive.
func advanceExecutionDays(start time.Time, executionDays int, blocked func(day time.Time) bool) (time.Time, int, error) {
	counted := 0
	day := start
	for i := 0; i < iterationCapDays; i++ {
		if !blocked(day) {
			counted++
			if counted == executionDays {
				throughput := int(day.Sub(start)/(24*time.Hour)) + 1
				return day, throughput, nil
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, 0, &IterationCapError{Target: executionDays, Iterations: iterationCapDays, Cursor: day}
}

func (sc *scheduleContext) buildDayProposal(startDay, endDay time.Time, blocked func(day time.Time) bool) (*models.Proposal, error) {
	startZ := minutesIntoDay(startDay, sc.week[startDay.Weekday()].StartMinutes)
	execEndZ := minutesIntoDay(endDay, sc.week[endDay.Weekday()].EndMinutes)
	endZ := execEndZ
	bw, err := computeBufferWindow(execEndZ, models.UnitDays, sc.eff.Buffer, sc.week, blocked)
	if err != nil {
		return nil, err
	}
	if bw != nil {
		endZ = bw.end
	}
	return &models.Proposal{
		Start:        fromZonedTime(startZ, sc.loc),
		ExecutionEnd: fromZonedTime(execEndZ, sc.loc),
		End:          fromZonedTime(endZ, sc.loc),
	}, nil
}

func (sc *scheduleContext) searchHours(prepEnd time.Time) (*models.ScheduleProposals, error) {
	execMinutes := int(math.Round(sc.eff.Execution.Value * 60))
	blocked := sc.dayBlockedFn()

	result := &models.ScheduleProposals{
		Mode:                 models.ModeHours,
		EarliestBookableDate: fromZonedTime(prepEnd, sc.loc),
	}

	cursor := newDayCursor(startOfZonedDay(prepEnd), proposalHorizonDays)
	for {
		day, ok := cursor.next()
		if !ok {
			break
		}
		rd := sc.week[day.Weekday()]
		if !rd.Working {
			continue
		}
		if !sc.multi() && sc.blocks.days[dayKey(day)] {
			continue
		}

		for _, startMinute := range enumerateSlotStarts(rd, execMinutes) {
			slotStartZ := minutesIntoDay(day, startMinute)
			if slotStartZ.Before(prepEnd) {
				continue
			}
			slotEndZ := slotStartZ.Add(time.Duration(execMinutes) * time.Minute)
			startAbs := fromZonedTime(slotStartZ, sc.loc)
			endAbs := fromZonedTime(slotEndZ, sc.loc)

			if sc.multi() {
				frac := slotOverlapFraction(startAbs, endAbs, sc.members, sc.eff.MinResources)
				if !meetsOverlap(frac, sc.eff.MinOverlapPercentage) {
					continue
				}
			} else if !slotFreeStrict(startAbs, endAbs, sc.blocks) {
				continue
			}

			endZ := slotEndZ
			if sc.eff.Buffer != nil {
				bw, err := computeBufferWindow(slotEndZ, models.UnitHours, sc.eff.Buffer, sc.week, blocked)
				if err != nil {
					logIterationCap(err, sc)
					return nil, err
				}
				if bw != nil {
					if !sc.multi() && sameZonedDay(bw.start, bw.end) &&
						!slotFreeStrict(fromZonedTime(bw.start, sc.loc), fromZonedTime(bw.end, sc.loc), sc.blocks) {
						continue
					}
					endZ = bw.end
				}
			}

			// Execution is intra-day, so the first usable slot is both the
			// earliest and the shortest-throughput proposal.
			p := &models.Proposal{
				Start:        startAbs,
				ExecutionEnd: endAbs,
				End:          fromZonedTime(endZ, sc.loc),
			}
			result.EarliestProposal = p
			result.ShortestThroughputProposal = p
			return result, nil
		}
	}
	return result, nil
}

func sameZonedDay(a, b time.Time) bool {
	return startOfZonedDay(a).Equal(startOfZonedDay(b))
}

func logIterationCap(err error, sc *scheduleContext) {
	var capErr *IterationCapError
	if !errors.As(err, &capErr) {
		return
	}
	utils.GetLogger().Error("scheduling walk exceeded iteration cap",
		zap.String("projectId", sc.project.ID),
		zap.Int("target", capErr.Target),
		zap.Int("iterations", capErr.Iterations),
		zap.Time("cursor", capErr.Cursor),
	)
}
