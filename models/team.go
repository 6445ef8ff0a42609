package models

import "time"

// DayPattern is one weekday entry of a member's declared working hours.
// Start and End are "HH:mm" wall-clock strings in the member's time zone.
type DayPattern struct {
	Available bool   `bson:"available" json:"available"`
	Start     string `bson:"start,omitempty" json:"start,omitempty"` // e.g. "09:00"
	End       string `bson:"end,omitempty" json:"end,omitempty"`     // e.g. "17:00"
}

// TeamMember is a schedulable resource (the professional or an employee).
type TeamMember struct {
	ID            string                      `bson:"id" json:"id"`
	Name          string                      `bson:"name" json:"name"`
	TimeZone      string                      `bson:"timeZone,omitempty" json:"timeZone,omitempty"` // IANA name, default UTC
	Weekly        map[time.Weekday]DayPattern `bson:"weekly,omitempty" json:"weekly,omitempty"`
	BlockedDates  []string                    `bson:"blockedDates,omitempty" json:"blockedDates,omitempty"` // "2006-01-02"
	BlockedRanges []DateRange                 `bson:"blockedRanges,omitempty" json:"blockedRanges,omitempty"`
}

// DateRange is an inclusive range of blocked dates.
type DateRange struct {
	Start   string `bson:"start" json:"start"` // "2006-01-02"
	End     string `bson:"end" json:"end"`     // "2006-01-02"
	Holiday bool   `bson:"holiday,omitempty" json:"holiday,omitempty"`
}

// CompanyCalendar carries the company-wide blocks declared on the owner
// record. They apply to every team member.
type CompanyCalendar struct {
	BlockedDates  []string    `bson:"blockedDates,omitempty" json:"blockedDates,omitempty"`
	BlockedRanges []DateRange `bson:"blockedRanges,omitempty" json:"blockedRanges,omitempty"`
}

// HolidayDates returns the set of dates inside ranges flagged as holidays.
// Only whole days matter for preparation-day counting, so the expansion is
// done up front.
func (c *CompanyCalendar) HolidayDates() map[string]bool {
	holidays := make(map[string]bool)
	if c == nil {
		return holidays
	}
	for _, r := range c.BlockedRanges {
		if !r.Holiday {
			continue
		}
		start, err1 := time.Parse("2006-01-02", r.Start)
		end, err2 := time.Parse("2006-01-02", r.End)
		if err1 != nil || err2 != nil || end.Before(start) {
			continue
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			holidays[d.Format("2006-01-02")] = true
		}
	}
	return holidays
}
