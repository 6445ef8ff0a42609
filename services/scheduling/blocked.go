package scheduling

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"planora/models"
)

// blockSet is one resource view of everything that makes time unavailable:
// whole-day block keys plus absolute blocked intervals.
type blockSet struct {
	days      map[string]bool
	intervals []models.BlockedInterval
}

func newBlockSet() blockSet {
	return blockSet{days: make(map[string]bool)}
}

func (bs *blockSet) addDay(key string) {
	bs.days[key] = true
}

func (bs *blockSet) addInterval(start, end time.Time, reason models.BlockReason) {
	if !end.After(start) {
		return
	}
	bs.intervals = append(bs.intervals, models.BlockedInterval{
		BlockID: uuid.NewString(),
		Start:   start,
		End:     end,
		Reason:  reason,
	})
}

// addDateRange expands an inclusive date range into one absolute interval
// covering midnight of the first day through midnight after the last.
func (bs *blockSet) addDateRange(r models.DateRange, loc *time.Location) {
	start, err1 := time.Parse("2006-01-02", r.Start)
	end, err2 := time.Parse("2006-01-02", r.End)
	if err1 != nil || err2 != nil || end.Before(start) {
		return
	}
	bs.addInterval(fromZonedTime(start, loc), fromZonedTime(end.AddDate(0, 0, 1), loc), models.ReasonNone)
}

func (bs *blockSet) addCustomer(customer *models.CustomerBlocks, loc *time.Location) {
	if customer == nil {
		return
	}
	for _, day := range customer.FullDays {
		bs.addDay(day)
	}
	for _, w := range customer.Windows {
		day, err := time.Parse("2006-01-02", w.Date)
		if err != nil {
			continue
		}
		startMin, err1 := parseClockMinutes(w.Start)
		endMin, err2 := parseClockMinutes(w.End)
		if err1 != nil || err2 != nil || endMin <= startMin {
			continue
		}
		bs.addInterval(
			fromZonedTime(minutesIntoDay(day, startMin), loc),
			fromZonedTime(minutesIntoDay(day, endMin), loc),
			models.ReasonCustomerBlock,
		)
	}
}

// addBooking contributes the booking's execution span and, when present, its
// buffer span.
func (bs *blockSet) addBooking(b *models.Booking) {
	if !b.Active() {
		return
	}
	if b.ScheduledExecutionEnd != nil {
		bs.addInterval(*b.ScheduledStart, *b.ScheduledExecutionEnd, models.ReasonBooking)
	}
	if b.ScheduledBufferEnd != nil {
		bufferStart := b.ScheduledBufferStart
		if bufferStart == nil {
			if b.ScheduledExecutionEnd != nil {
				bufferStart = b.ScheduledExecutionEnd
			} else {
				bufferStart = b.ScheduledStart
			}
		}
		bs.addInterval(*bufferStart, *b.ScheduledBufferEnd, models.ReasonBookingBuffer)
	}
}

// assembleBlocked merges every blocking source into the single strict view:
// company and personal full-day blocks, company and personal date ranges,
// every active booking touching the project or an assigned member, and the
// ephemeral customer blocks when supplied.
func assembleBlocked(
	company *models.CompanyCalendar,
	members []models.TeamMember,
	bookings []models.Booking,
	customer *models.CustomerBlocks,
	loc *time.Location,
) blockSet {
	bs := newBlockSet()

	if company != nil {
		for _, day := range company.BlockedDates {
			bs.addDay(day)
		}
		for _, r := range company.BlockedRanges {
			bs.addDateRange(r, loc)
		}
	}
	for i := range members {
		for _, day := range members[i].BlockedDates {
			bs.addDay(day)
		}
		for _, r := range members[i].BlockedRanges {
			bs.addDateRange(r, loc)
		}
	}
	for i := range bookings {
		bs.addBooking(&bookings[i])
	}
	bs.addCustomer(customer, loc)
	return bs
}

// timeRange is a half-open absolute span used by the overlap math.
type timeRange struct {
	start, end time.Time
}

// mergeRanges sorts and coalesces overlapping or touching ranges.
func mergeRanges(ranges []timeRange) []timeRange {
	if len(ranges) <= 1 {
		return ranges
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start.Before(ranges[j].start) })
	merged := ranges[:1]
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if !r.start.After(last.end) {
			if r.end.After(last.end) {
				last.end = r.end
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// blockedMinutesWithin clips the intervals to [winStart, winEnd), merges the
// clipped pieces and returns the total blocked minutes inside the window.
func blockedMinutesWithin(winStart, winEnd time.Time, intervals []models.BlockedInterval) int {
	var clipped []timeRange
	for _, iv := range intervals {
		start, end := iv.Start, iv.End
		if start.Before(winStart) {
			start = winStart
		}
		if end.After(winEnd) {
			end = winEnd
		}
		if end.After(start) {
			clipped = append(clipped, timeRange{start, end})
		}
	}
	total := 0
	for _, r := range mergeRanges(clipped) {
		total += int(r.end.Sub(r.start) / time.Minute)
	}
	return total
}

// intersectsAny reports whether [start, end) overlaps any interval.
func intersectsAny(start, end time.Time, intervals []models.BlockedInterval) bool {
	for _, iv := range intervals {
		if start.Before(iv.End) && iv.Start.Before(end) {
			return true
		}
	}
	return false
}
