package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora/models"
)

func TestFindProjectWindow_SingleMember(t *testing.T) {
	project := testProject([]string{"m1"}, durationOf(2, models.UnitDays))
	project.BufferDuration = durationOf(1, models.UnitDays)

	win, err := FindProjectWindow(testInput(project, testMember("m1")), false)
	require.NoError(t, err)
	require.NotNil(t, win)

	assert.True(t, win.ScheduledStartDate.Equal(utcAt(2026, time.January, 6, 9, 0)))
	assert.True(t, win.ScheduledExecutionEndDate.Equal(utcAt(2026, time.January, 7, 17, 0)))
	assert.Equal(t, []string{"m1"}, win.AssignedTeamMembers)

	require.NotNil(t, win.ScheduledBufferStartDate)
	require.NotNil(t, win.ScheduledBufferEndDate)
	require.NotNil(t, win.ScheduledBufferUnit)
	assert.True(t, win.ScheduledBufferStartDate.Equal(utcAt(2026, time.January, 8, 9, 0)))
	assert.True(t, win.ScheduledBufferEndDate.Equal(utcAt(2026, time.January, 8, 17, 0)))
	assert.Equal(t, models.UnitDays, *win.ScheduledBufferUnit)
}

func TestFindProjectWindow_PrimaryIsEarliestFreeMember(t *testing.T) {
	// m1 is out Tuesday, so m2 becomes the primary. A two-day window over
	// Tue-Wed gives m1 only 50% of the primary's free days; the window has to
	// stretch to four days before m1 clears the 70% default.
	m1 := testMember("m1")
	m1.BlockedDates = []string{"2026-01-06"}
	project := testProject([]string{"m1", "m2"}, durationOf(2, models.UnitDays))

	win, err := FindProjectWindow(testInput(project, m1, testMember("m2")), false)
	require.NoError(t, err)
	require.NotNil(t, win)

	assert.True(t, win.ScheduledStartDate.Equal(utcAt(2026, time.January, 6, 9, 0)))
	assert.True(t, win.ScheduledExecutionEndDate.Equal(utcAt(2026, time.January, 7, 17, 0)))
	assert.Equal(t, []string{"m1", "m2"}, win.AssignedTeamMembers)
}

func TestFindProjectWindow_NoPrimaryAvailability(t *testing.T) {
	m := testMember("m1")
	m.Weekly = map[time.Weekday]models.DayPattern{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		m.Weekly[wd] = models.DayPattern{Available: false}
	}
	project := testProject([]string{"m1"}, durationOf(2, models.UnitDays))

	win, err := FindProjectWindow(testInput(project, m), false)
	require.NoError(t, err)
	assert.Nil(t, win)
}

func TestFindProjectWindow_AbsentInput(t *testing.T) {
	win, err := FindProjectWindow(ProposalInput{Now: testNow}, false)
	require.NoError(t, err)
	assert.Nil(t, win)
}

func TestBuildScheduleWindow_DaysMode(t *testing.T) {
	project := testProject([]string{"m1"}, durationOf(2, models.UnitDays))
	project.BufferDuration = durationOf(1, models.UnitDays)
	in := testInput(project, testMember("m1"))

	win, err := BuildScheduleWindow(in, "2026-01-07", "")
	require.NoError(t, err)
	require.NotNil(t, win)

	assert.True(t, win.ScheduledStartDate.Equal(utcAt(2026, time.January, 7, 9, 0)))
	assert.True(t, win.ScheduledExecutionEndDate.Equal(utcAt(2026, time.January, 8, 17, 0)))
	assert.Empty(t, win.ScheduledStartTime)
	require.NotNil(t, win.ScheduledBufferStartDate)
	assert.True(t, win.ScheduledBufferStartDate.Equal(utcAt(2026, time.January, 9, 9, 0)))
	assert.True(t, win.ScheduledBufferEndDate.Equal(utcAt(2026, time.January, 9, 17, 0)))
}

func TestBuildScheduleWindow_DaysModeSkipsBlockedDays(t *testing.T) {
	m := testMember("m1")
	m.BlockedDates = []string{"2026-01-07"}
	project := testProject([]string{"m1"}, durationOf(2, models.UnitDays))

	win, err := BuildScheduleWindow(testInput(project, m), "2026-01-06", "")
	require.NoError(t, err)
	require.NotNil(t, win)

	// Execution runs Tue and Thu around the blocked Wednesday.
	assert.True(t, win.ScheduledStartDate.Equal(utcAt(2026, time.January, 6, 9, 0)))
	assert.True(t, win.ScheduledExecutionEndDate.Equal(utcAt(2026, time.January, 8, 17, 0)))
}

func TestBuildScheduleWindow_HoursMode(t *testing.T) {
	project := testProject([]string{"m1"}, durationOf(2, models.UnitHours))
	project.BufferDuration = durationOf(1, models.UnitHours)
	in := testInput(project, testMember("m1"))

	win, err := BuildScheduleWindow(in, "2026-01-06", "10:00")
	require.NoError(t, err)
	require.NotNil(t, win)

	assert.True(t, win.ScheduledStartDate.Equal(utcAt(2026, time.January, 6, 10, 0)))
	assert.True(t, win.ScheduledExecutionEndDate.Equal(utcAt(2026, time.January, 6, 12, 0)))
	assert.Equal(t, "10:00", win.ScheduledStartTime)
	assert.Equal(t, "12:00", win.ScheduledEndTime)
	require.NotNil(t, win.ScheduledBufferStartDate)
	assert.True(t, win.ScheduledBufferStartDate.Equal(utcAt(2026, time.January, 6, 12, 0)))
	assert.True(t, win.ScheduledBufferEndDate.Equal(utcAt(2026, time.January, 6, 13, 0)))
	assert.Equal(t, models.UnitHours, *win.ScheduledBufferUnit)
}

func TestBuildScheduleWindow_MalformedInputYieldsNil(t *testing.T) {
	project := testProject([]string{"m1"}, durationOf(2, models.UnitHours))
	in := testInput(project, testMember("m1"))

	win, err := BuildScheduleWindow(in, "garbage", "10:00")
	require.NoError(t, err)
	assert.Nil(t, win)

	win, err = BuildScheduleWindow(in, "2026-01-06", "garbage")
	require.NoError(t, err)
	assert.Nil(t, win)

	win, err = BuildScheduleWindow(ProposalInput{Now: testNow}, "2026-01-06", "10:00")
	require.NoError(t, err)
	assert.Nil(t, win)
}

func TestFormatClockMinutes(t *testing.T) {
	assert.Equal(t, "09:00", formatClockMinutes(9*60))
	assert.Equal(t, "13:30", formatClockMinutes(13*60+30))
	assert.Equal(t, "00:00", formatClockMinutes(0))
}
