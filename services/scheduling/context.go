package scheduling

import (
	"errors"
	"time"

	"planora/models"
)

const (
	// defaultOverlapPctProposals is the authoritative multi-resource default
	// for the main proposal search.
	defaultOverlapPctProposals = 90
	// defaultOverlapPctWindow is the default for the primary/secondary
	// project-window lookup, kept separate deliberately.
	defaultOverlapPctWindow = 70
)

var (
	errNoResources = errors.New("project has no schedulable resources")
	errNoExecution = errors.New("project has no execution duration")
)

// ProposalInput is the immutable snapshot one scheduling query computes
// over. The engine reads it once and mutates nothing.
type ProposalInput struct {
	Project         *models.Project
	SubProjectIndex int // -1 selects the project level
	Members         []models.TeamMember
	Company         *models.CompanyCalendar
	Bookings        []models.Booking
	CustomerBlocks  *models.CustomerBlocks
	Now             time.Time
}

// scheduleContext bundles everything resolved once per query: effective
// durations, the professional's zone and resolved week, the strict block
// view and, in multi-resource mode, the per-member views.
type scheduleContext struct {
	project   *models.Project
	eff       models.EffectiveDurations
	loc       *time.Location
	week      ResolvedWeek
	blocks    blockSet
	members   map[string]*memberBlocks
	multiMode bool // minResources > 1 with more than one member
	holidays  map[string]bool
	now       time.Time // zoned
}

// newScheduleContext resolves one query's inputs. Absent-input conditions
// (no members, no execution duration) and malformed subproject indices come
// back as plain errors for the caller to map to "no availability" or a
// validation reason.
func newScheduleContext(in ProposalInput, defaultOverlapPct int) (*scheduleContext, error) {
	if in.Project == nil || len(in.Members) == 0 || len(in.Project.TeamMemberIDs) == 0 {
		return nil, errNoResources
	}
	eff, err := ResolveEffectiveDurations(in.Project, in.SubProjectIndex, defaultOverlapPct)
	if err != nil {
		return nil, err
	}
	if eff.Execution == nil {
		return nil, errNoExecution
	}

	professional := &in.Members[0]
	for i := range in.Members {
		if in.Members[i].ID == in.Project.ProfessionalID {
			professional = &in.Members[i]
			break
		}
	}
	loc := loadLocation(professional.TimeZone)

	sc := &scheduleContext{
		project:   in.Project,
		eff:       eff,
		loc:       loc,
		week:      ResolveWeeklyAvailability(professional.Weekly, DefaultWorkingWeek()),
		blocks:    assembleBlocked(in.Company, in.Members, in.Bookings, in.CustomerBlocks, loc),
		members:   assembleMemberBlocks(in.Project, in.Members, in.Company, in.Bookings, in.CustomerBlocks, loc),
		multiMode: eff.MinResources > 1 && len(in.Members) > 1,
		holidays:  in.Company.HolidayDates(),
		now:       toZonedTime(in.Now, loc),
	}
	return sc, nil
}

func (sc *scheduleContext) multi() bool {
	return sc.multiMode
}

// dayBlockedFn returns the day predicate matching the query's mode.
func (sc *scheduleContext) dayBlockedFn() func(day time.Time) bool {
	if sc.multi() {
		return func(day time.Time) bool {
			return multiDayBlocked(day, sc.week, sc.members, sc.eff.MinResources)
		}
	}
	return func(day time.Time) bool {
		return strictDayBlocked(day, sc.week, sc.blocks, sc.loc)
	}
}
