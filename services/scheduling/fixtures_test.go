package scheduling

import (
	"time"

	"planora/models"
)

// testNow is a Monday mid-morning, so "tomorrow" is a plain working Tuesday.
var testNow = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

func durationOf(value float64, unit models.DurationUnit) *models.Duration {
	return &models.Duration{Value: value, Unit: unit}
}

func timePtr(t time.Time) *time.Time { return &t }

func testMember(id string) models.TeamMember {
	return models.TeamMember{ID: id, Name: "member " + id}
}

func testProject(memberIDs []string, exec *models.Duration) *models.Project {
	return &models.Project{
		ID:                "proj-1",
		Name:              "deck restoration",
		ProfessionalID:    memberIDs[0],
		ExecutionDuration: exec,
		TeamMemberIDs:     memberIDs,
		MinResources:      1,
	}
}

func testInput(project *models.Project, members ...models.TeamMember) ProposalInput {
	return ProposalInput{
		Project:         project,
		SubProjectIndex: -1,
		Members:         members,
		Now:             testNow,
	}
}

// utcDay returns midnight UTC of the given date.
func utcDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func utcAt(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// activeBooking builds a pending booking occupying [start, execEnd) for the
// given professional.
func activeBooking(professionalID string, start, execEnd time.Time) models.Booking {
	return models.Booking{
		ID:                    "bk-" + professionalID + start.Format("0102"),
		ProfessionalID:        professionalID,
		Status:                models.BookingPending,
		ScheduledStart:        timePtr(start),
		ScheduledExecutionEnd: timePtr(execEnd),
	}
}
