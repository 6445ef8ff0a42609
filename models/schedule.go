package models

import "time"

// ScheduleMode says whether a project's execution duration is expressed in
// hours (intra-day slots) or days.
type ScheduleMode string

const (
	ModeHours ScheduleMode = "hours"
	ModeDays  ScheduleMode = "days"
)

// Proposal is one candidate execution window. End includes the buffer when
// the project has one; ExecutionEnd never does.
type Proposal struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	ExecutionEnd time.Time `json:"executionEnd"`
}

// ScheduleProposals is the engine's answer to "when can this project run".
type ScheduleProposals struct {
	Mode                       ScheduleMode `json:"mode"`
	EarliestBookableDate       time.Time    `json:"earliestBookableDate"`
	EarliestProposal           *Proposal    `json:"earliestProposal,omitempty"`
	ShortestThroughputProposal *Proposal    `json:"shortestThroughputProposal,omitempty"`
}

// ValidationResult reports whether a client-chosen date/time is still
// schedulable. Reason is a human-readable string on failure.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ScheduleWindow is the concrete window chosen for a specific candidate date,
// consumed by the booking-creation flow.
type ScheduleWindow struct {
	ScheduledStartDate        time.Time     `json:"scheduledStartDate"`
	ScheduledExecutionEndDate time.Time     `json:"scheduledExecutionEndDate"`
	ScheduledBufferStartDate  *time.Time    `json:"scheduledBufferStartDate,omitempty"`
	ScheduledBufferEndDate    *time.Time    `json:"scheduledBufferEndDate,omitempty"`
	ScheduledBufferUnit       *DurationUnit `json:"scheduledBufferUnit,omitempty"`
	ScheduledStartTime        string        `json:"scheduledStartTime,omitempty"` // "HH:mm", hours mode only
	ScheduledEndTime          string        `json:"scheduledEndTime,omitempty"`   // "HH:mm", hours mode only
	AssignedTeamMembers       []string      `json:"assignedTeamMembers"`
}
