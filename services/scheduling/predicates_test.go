package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"planora/models"
)

func TestStrictDayBlocked_PartialBlockThresholdIsInclusive(t *testing.T) {
	day := utcDay(2026, time.January, 6) // Tuesday
	week := DefaultWorkingWeek()

	fourHours := newBlockSet()
	fourHours.addInterval(utcAt(2026, time.January, 6, 9, 0), utcAt(2026, time.January, 6, 13, 0), models.ReasonBooking)
	assert.True(t, strictDayBlocked(day, week, fourHours, time.UTC), "exactly four blocked hours must block the day")

	justUnder := newBlockSet()
	justUnder.addInterval(utcAt(2026, time.January, 6, 9, 0), utcAt(2026, time.January, 6, 12, 59), models.ReasonBooking)
	assert.False(t, strictDayBlocked(day, week, justUnder, time.UTC), "239 blocked minutes must leave the day usable")
}

func TestStrictDayBlocked_OverlappingIntervalsCountOnce(t *testing.T) {
	day := utcDay(2026, time.January, 6)
	week := DefaultWorkingWeek()

	// 09:00-11:00 and 10:00-13:00 merge to 09:00-13:00, exactly four hours.
	bs := newBlockSet()
	bs.addInterval(utcAt(2026, time.January, 6, 9, 0), utcAt(2026, time.January, 6, 11, 0), models.ReasonBooking)
	bs.addInterval(utcAt(2026, time.January, 6, 10, 0), utcAt(2026, time.January, 6, 13, 0), models.ReasonBooking)
	assert.True(t, strictDayBlocked(day, week, bs, time.UTC))

	// Shrinking either piece below the merged threshold frees the day.
	bs2 := newBlockSet()
	bs2.addInterval(utcAt(2026, time.January, 6, 9, 0), utcAt(2026, time.January, 6, 11, 0), models.ReasonBooking)
	bs2.addInterval(utcAt(2026, time.January, 6, 10, 0), utcAt(2026, time.January, 6, 12, 30), models.ReasonBooking)
	assert.False(t, strictDayBlocked(day, week, bs2, time.UTC))
}

func TestStrictDayBlocked_IgnoresMinutesOutsideWorkingWindow(t *testing.T) {
	day := utcDay(2026, time.January, 6)
	week := DefaultWorkingWeek()

	bs := newBlockSet()
	bs.addInterval(utcAt(2026, time.January, 6, 17, 0), utcAt(2026, time.January, 6, 23, 0), models.ReasonBooking)
	assert.False(t, strictDayBlocked(day, week, bs, time.UTC))
}

func TestStrictDayBlocked_NonWorkingAndFullDay(t *testing.T) {
	week := DefaultWorkingWeek()
	empty := newBlockSet()

	assert.True(t, strictDayBlocked(utcDay(2026, time.January, 10), week, empty, time.UTC)) // Saturday

	blocked := newBlockSet()
	blocked.addDay("2026-01-06")
	assert.True(t, strictDayBlocked(utcDay(2026, time.January, 6), week, blocked, time.UTC))
}

func TestEnumerateSlotStarts(t *testing.T) {
	rd := ResolvedDay{Working: true, StartMinutes: 9 * 60, EndMinutes: 17 * 60}

	starts := enumerateSlotStarts(rd, 180)
	assert.Equal(t, 9*60, starts[0])
	assert.Equal(t, 14*60, starts[len(starts)-1]) // 14:00 + 3h = 17:00 still fits
	assert.Len(t, starts, 11)

	// Unaligned window start rounds up to the next half hour.
	odd := ResolvedDay{Working: true, StartMinutes: 9*60 + 15, EndMinutes: 12 * 60}
	starts = enumerateSlotStarts(odd, 60)
	assert.Equal(t, 9*60+30, starts[0])

	assert.Nil(t, enumerateSlotStarts(ResolvedDay{}, 60))
	assert.Nil(t, enumerateSlotStarts(rd, 0))
}

func TestMeetsOverlap(t *testing.T) {
	assert.True(t, meetsOverlap(0.9, 90))
	assert.True(t, meetsOverlap(1.0, 90))
	assert.False(t, meetsOverlap(0.89, 90))
}

// With one member and minResources 1, the multi-resource day predicate must
// agree with the strict one for every kind of block.
func TestDayPredicates_AgreeForSingleResource(t *testing.T) {
	m := testMember("m1")
	m.BlockedDates = []string{"2026-01-07"}
	project := testProject([]string{"m1"}, durationOf(2, models.UnitDays))
	bookings := []models.Booking{
		activeBooking("m1", utcAt(2026, time.January, 8, 9, 0), utcAt(2026, time.January, 8, 17, 0)),
	}

	week := ResolveWeeklyAvailability(m.Weekly, DefaultWorkingWeek())
	bs := assembleBlocked(nil, []models.TeamMember{m}, bookings, nil, time.UTC)
	members := assembleMemberBlocks(project, []models.TeamMember{m}, nil, bookings, nil, time.UTC)

	for day := utcDay(2026, time.January, 5); day.Before(utcDay(2026, time.January, 19)); day = day.AddDate(0, 0, 1) {
		assert.Equal(t,
			strictDayBlocked(day, week, bs, time.UTC),
			multiDayBlocked(day, week, members, 1),
			day.Format("2006-01-02"))
	}
}
