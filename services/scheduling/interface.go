package scheduling

import (
	"context"

	"planora/models"
)

// SchedulingService answers availability questions for a project: candidate
// execution windows, validation of a client-chosen date, and the concrete
// window handed to the booking-creation flow.
type SchedulingService interface {
	GetScheduleProposals(ctx context.Context, projectID string, subProjectIndex int, customer *models.CustomerBlocks) (*models.ScheduleProposals, error)
	ValidateSelection(ctx context.Context, projectID string, subProjectIndex int, date, startTime string, customer *models.CustomerBlocks) (models.ValidationResult, error)
	FindProjectWindow(ctx context.Context, projectID string, preferShortest bool) (*models.ScheduleWindow, error)
	BuildScheduleWindow(ctx context.Context, projectID string, subProjectIndex int, date, startTime string) (*models.ScheduleWindow, error)
}
