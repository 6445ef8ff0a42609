package schedulingRepo

import (
	"context"

	"planora/models"
)

// ProjectRepository loads project records for scheduling queries.
type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*models.Project, error)
}

// TeamRepository loads team member records and the company-wide calendar
// declared on the owner record.
type TeamRepository interface {
	GetMembers(ctx context.Context, ids []string) ([]models.TeamMember, error)
	GetCompanyCalendar(ctx context.Context, professionalID string) (*models.CompanyCalendar, error)
}

// BookingRepository loads the active bookings that can block a project's
// availability: any non-terminal booking touching the project or one of its
// assigned members. Legacy field duplicates are normalized before the
// records leave this layer.
type BookingRepository interface {
	GetActive(ctx context.Context, projectID string, memberIDs []string) ([]models.Booking, error)
}
