package scheduling

import (
	"time"

	"planora/models"
)

// memberBlocks is the per-member view used in multi-resource mode: the
// member's own resolved week and time zone plus every block that affects
// them.
type memberBlocks struct {
	member *models.TeamMember
	week   ResolvedWeek
	loc    *time.Location
	blocks blockSet
}

// dayBlocked applies the strict single-day rule to one member: full-day
// block, non-working weekday, or at least the partial-block threshold of
// working minutes lost to intervals.
func (mb *memberBlocks) dayBlocked(day time.Time) bool {
	if mb.blocks.days[dayKey(day)] {
		return true
	}
	rd := mb.week[day.Weekday()]
	if !rd.Working {
		return true
	}
	winStart := fromZonedTime(minutesIntoDay(day, rd.StartMinutes), mb.loc)
	winEnd := fromZonedTime(minutesIntoDay(day, rd.EndMinutes), mb.loc)
	return blockedMinutesWithin(winStart, winEnd, mb.blocks.intervals) >= partialBlockThresholdMinutes
}

// freeAt reports whether the member is free at an absolute instant: the day
// is not fully blocked for them, the instant falls inside their working
// window, and no blocked interval covers it.
func (mb *memberBlocks) freeAt(instant time.Time) bool {
	zoned := toZonedTime(instant, mb.loc)
	day := startOfZonedDay(zoned)
	if mb.blocks.days[dayKey(day)] {
		return false
	}
	rd := mb.week[day.Weekday()]
	if !rd.Working {
		return false
	}
	minute := int(zoned.Sub(day) / time.Minute)
	if minute < rd.StartMinutes || minute >= rd.EndMinutes {
		return false
	}
	return !intersectsAny(instant, instant.Add(time.Minute), mb.blocks.intervals)
}

// assembleMemberBlocks builds the per-member views. Company-level and
// customer blocks are seeded into every member before personal and booking
// blocks are layered on. A booking's interval is attributed only to the
// members it actually affects: the explicit assignment list when present,
// else the booking's own professional, else — when the booking references
// this exact project with no assignment at all — every member on the
// project. The last fallback supports legacy records and must be preserved.
func assembleMemberBlocks(
	project *models.Project,
	members []models.TeamMember,
	company *models.CompanyCalendar,
	bookings []models.Booking,
	customer *models.CustomerBlocks,
	loc *time.Location,
) map[string]*memberBlocks {
	byID := make(map[string]*memberBlocks, len(members))
	for i := range members {
		m := &members[i]
		// Wall-clock fields are interpreted in the professional's zone for
		// the whole team, not per member.
		mb := &memberBlocks{
			member: m,
			week:   ResolveWeeklyAvailability(m.Weekly, DefaultWorkingWeek()),
			loc:    loc,
			blocks: newBlockSet(),
		}
		if company != nil {
			for _, day := range company.BlockedDates {
				mb.blocks.addDay(day)
			}
			for _, r := range company.BlockedRanges {
				mb.blocks.addDateRange(r, loc)
			}
		}
		mb.blocks.addCustomer(customer, loc)
		for _, day := range m.BlockedDates {
			mb.blocks.addDay(day)
		}
		for _, r := range m.BlockedRanges {
			mb.blocks.addDateRange(r, loc)
		}
		byID[m.ID] = mb
	}

	for i := range bookings {
		b := &bookings[i]
		if !b.Active() {
			continue
		}
		for _, id := range bookingAffectedMembers(project, b) {
			if mb, ok := byID[id]; ok {
				mb.blocks.addBooking(b)
			}
		}
	}
	return byID
}

// bookingAffectedMembers resolves which members a booking occupies.
func bookingAffectedMembers(project *models.Project, b *models.Booking) []string {
	if len(b.AssignedTeamMemberIDs) > 0 {
		return b.AssignedTeamMemberIDs
	}
	if b.ProfessionalID != "" {
		return []string{b.ProfessionalID}
	}
	if project != nil && b.ProjectID == project.ID {
		return project.TeamMemberIDs
	}
	return nil
}

// freeMemberCount counts members not individually blocked on the day.
func freeMemberCount(members map[string]*memberBlocks, day time.Time) int {
	free := 0
	for _, mb := range members {
		if !mb.dayBlocked(day) {
			free++
		}
	}
	return free
}
