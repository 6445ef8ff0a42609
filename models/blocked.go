package models

import "time"

// BlockReason tags why an interval is blocked. The empty reason marks
// profile-declared date ranges.
type BlockReason string

const (
	ReasonNone          BlockReason = ""
	ReasonBooking       BlockReason = "booking"
	ReasonBookingBuffer BlockReason = "booking-buffer"
	ReasonCustomerBlock BlockReason = "customer-block"
)

// BlockedInterval is an absolute-time span during which a resource is
// unavailable.
type BlockedInterval struct {
	BlockID string      `bson:"blockId" json:"blockId"`
	Start   time.Time   `bson:"start" json:"start"`
	End     time.Time   `bson:"end" json:"end"`
	Reason  BlockReason `bson:"reason,omitempty" json:"reason,omitempty"`
}

// TimeWindow is a wall-clock window on a single date.
type TimeWindow struct {
	Date  string `bson:"date" json:"date"`   // "2006-01-02"
	Start string `bson:"start" json:"start"` // "HH:mm"
	End   string `bson:"end" json:"end"`     // "HH:mm"
}

// CustomerBlocks is an ephemeral candidate set of extra blocks supplied only
// for preview/validation calls. It augments resource-derived blocks and is
// never persisted.
type CustomerBlocks struct {
	FullDays []string     `json:"fullDays,omitempty"` // "2006-01-02"
	Windows  []TimeWindow `json:"windows,omitempty"`
}
