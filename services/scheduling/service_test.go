package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora/models"
)

type fakeProjectRepo struct {
	project *models.Project
	err     error
}

func (r *fakeProjectRepo) GetByID(_ context.Context, _ string) (*models.Project, error) {
	return r.project, r.err
}

type fakeTeamRepo struct {
	members []models.TeamMember
	company *models.CompanyCalendar
}

func (r *fakeTeamRepo) GetMembers(_ context.Context, _ []string) ([]models.TeamMember, error) {
	return r.members, nil
}

func (r *fakeTeamRepo) GetCompanyCalendar(_ context.Context, _ string) (*models.CompanyCalendar, error) {
	return r.company, nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (r *fakeBookingRepo) GetActive(_ context.Context, _ string, _ []string) ([]models.Booking, error) {
	return r.bookings, nil
}

func newTestEngine(project *models.Project, members []models.TeamMember, bookings []models.Booking) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		ProjectRepo: &fakeProjectRepo{project: project},
		TeamRepo:    &fakeTeamRepo{members: members, company: &models.CompanyCalendar{}},
		BookingRepo: &fakeBookingRepo{bookings: bookings},
		Now:         func() time.Time { return testNow },
	}
}

func TestEngine_GetScheduleProposals(t *testing.T) {
	project := testProject([]string{"m1"}, durationOf(2, models.UnitDays))
	engine := newTestEngine(project, []models.TeamMember{testMember("m1")}, nil)

	res, err := engine.GetScheduleProposals(context.Background(), "proj-1", -1, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.EarliestProposal.Start.Equal(utcAt(2026, time.January, 6, 9, 0)))
}

func TestEngine_ValidateSelection(t *testing.T) {
	project := testProject([]string{"m1"}, durationOf(2, models.UnitDays))
	engine := newTestEngine(project, []models.TeamMember{testMember("m1")}, nil)

	res, err := engine.ValidateSelection(context.Background(), "proj-1", -1, "2026-01-06", "", nil)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestEngine_FindProjectWindow(t *testing.T) {
	project := testProject([]string{"m1"}, durationOf(2, models.UnitDays))
	engine := newTestEngine(project, []models.TeamMember{testMember("m1")}, nil)

	win, err := engine.FindProjectWindow(context.Background(), "proj-1", false)
	require.NoError(t, err)
	require.NotNil(t, win)
	assert.True(t, win.ScheduledStartDate.Equal(utcAt(2026, time.January, 6, 9, 0)))
}

func TestEngine_BuildScheduleWindow(t *testing.T) {
	project := testProject([]string{"m1"}, durationOf(2, models.UnitHours))
	engine := newTestEngine(project, []models.TeamMember{testMember("m1")}, nil)

	win, err := engine.BuildScheduleWindow(context.Background(), "proj-1", -1, "2026-01-06", "10:00")
	require.NoError(t, err)
	require.NotNil(t, win)
	assert.Equal(t, "10:00", win.ScheduledStartTime)
}

func TestEngine_WrapsRepositoryErrors(t *testing.T) {
	loadErr := errors.New("connection reset")
	engine := &DefaultSchedulingEngine{
		ProjectRepo: &fakeProjectRepo{err: loadErr},
		TeamRepo:    &fakeTeamRepo{},
		BookingRepo: &fakeBookingRepo{},
	}

	_, err := engine.GetScheduleProposals(context.Background(), "proj-1", -1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
}

func TestEngine_SatisfiesInterface(t *testing.T) {
	var _ SchedulingService = (*DefaultSchedulingEngine)(nil)
}
