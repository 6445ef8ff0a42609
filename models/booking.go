package models

import "time"

// BookingStatus is the lifecycle status of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRefunded  BookingStatus = "refunded"
)

// Terminal reports whether the booking no longer occupies anyone's time.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingCompleted, BookingCancelled, BookingRefunded:
		return true
	}
	return false
}

// Booking is an existing commitment that occupies one or more team members.
// The repository layer normalizes legacy field duplicates into the canonical
// fields below, so the engine never branches on which field name is present.
type Booking struct {
	ID                    string        `bson:"id" json:"id"`
	ProjectID             string        `bson:"projectId" json:"projectId"`
	ProfessionalID        string        `bson:"professionalId" json:"professionalId"`
	Status                BookingStatus `bson:"status" json:"status"`
	ScheduledStart        *time.Time    `bson:"scheduledStartDate,omitempty" json:"scheduledStartDate,omitempty"`
	ScheduledExecutionEnd *time.Time    `bson:"scheduledExecutionEndDate,omitempty" json:"scheduledExecutionEndDate,omitempty"`
	ScheduledBufferStart  *time.Time    `bson:"scheduledBufferStartDate,omitempty" json:"scheduledBufferStartDate,omitempty"`
	ScheduledBufferEnd    *time.Time    `bson:"scheduledBufferEndDate,omitempty" json:"scheduledBufferEndDate,omitempty"`
	AssignedTeamMemberIDs []string      `bson:"assignedTeamMemberIds,omitempty" json:"assignedTeamMemberIds,omitempty"`
}

// Active reports whether this booking blocks availability: non-terminal
// status, a scheduled start, and at least one usable end instant.
func (b *Booking) Active() bool {
	if b.Status.Terminal() {
		return false
	}
	if b.ScheduledStart == nil {
		return false
	}
	return b.ScheduledExecutionEnd != nil || b.ScheduledBufferEnd != nil
}
