package scheduling

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	schedulingRepo "planora/database/repository/scheduling"
	"planora/models"
	"planora/utils"
)

// DefaultSchedulingEngine is the production implementation. It loads the
// records for one query, hands them to the pure compute functions and
// returns the result; nothing is cached or mutated between calls.
type DefaultSchedulingEngine struct {
	ProjectRepo schedulingRepo.ProjectRepository
	TeamRepo    schedulingRepo.TeamRepository
	BookingRepo schedulingRepo.BookingRepository
	Now         func() time.Time // defaults to time.Now
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

// loadInput reads one immutable snapshot of everything a query needs.
func (se *DefaultSchedulingEngine) loadInput(ctx context.Context, projectID string, subProjectIndex int, customer *models.CustomerBlocks) (*ProposalInput, error) {
	logger := utils.GetLogger()

	project, err := se.ProjectRepo.GetByID(ctx, projectID)
	if err != nil {
		logger.Error("scheduling: failed to load project",
			zap.String("projectId", projectID), zap.Error(err))
		return nil, fmt.Errorf("load project: %w", err)
	}

	members, err := se.TeamRepo.GetMembers(ctx, project.TeamMemberIDs)
	if err != nil {
		logger.Error("scheduling: failed to load team members",
			zap.String("projectId", projectID), zap.Error(err))
		return nil, fmt.Errorf("load team members: %w", err)
	}

	company, err := se.TeamRepo.GetCompanyCalendar(ctx, project.ProfessionalID)
	if err != nil {
		logger.Error("scheduling: failed to load company calendar",
			zap.String("projectId", projectID), zap.Error(err))
		return nil, fmt.Errorf("load company calendar: %w", err)
	}

	bookings, err := se.BookingRepo.GetActive(ctx, project.ID, project.TeamMemberIDs)
	if err != nil {
		logger.Error("scheduling: failed to load bookings",
			zap.String("projectId", projectID), zap.Error(err))
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	return &ProposalInput{
		Project:         project,
		SubProjectIndex: subProjectIndex,
		Members:         members,
		Company:         company,
		Bookings:        bookings,
		CustomerBlocks:  customer,
		Now:             se.now(),
	}, nil
}

func (se *DefaultSchedulingEngine) GetScheduleProposals(ctx context.Context, projectID string, subProjectIndex int, customer *models.CustomerBlocks) (*models.ScheduleProposals, error) {
	in, err := se.loadInput(ctx, projectID, subProjectIndex, customer)
	if err != nil {
		return nil, err
	}
	return ComputeScheduleProposals(*in)
}

func (se *DefaultSchedulingEngine) ValidateSelection(ctx context.Context, projectID string, subProjectIndex int, date, startTime string, customer *models.CustomerBlocks) (models.ValidationResult, error) {
	in, err := se.loadInput(ctx, projectID, subProjectIndex, customer)
	if err != nil {
		return models.ValidationResult{}, err
	}
	return ValidateSelection(*in, date, startTime)
}

func (se *DefaultSchedulingEngine) FindProjectWindow(ctx context.Context, projectID string, preferShortest bool) (*models.ScheduleWindow, error) {
	in, err := se.loadInput(ctx, projectID, -1, nil)
	if err != nil {
		return nil, err
	}
	return FindProjectWindow(*in, preferShortest)
}

func (se *DefaultSchedulingEngine) BuildScheduleWindow(ctx context.Context, projectID string, subProjectIndex int, date, startTime string) (*models.ScheduleWindow, error) {
	in, err := se.loadInput(ctx, projectID, subProjectIndex, nil)
	if err != nil {
		return nil, err
	}
	return BuildScheduleWindow(*in, date, startTime)
}
