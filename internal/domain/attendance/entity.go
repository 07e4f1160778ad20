package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent  Status = "present"
	StatusAbsent   Status = "absent"
	StatusInactive Status = "inactive"
)

// InactiveNote is the fixed note recorded for inactive-day entries.
const InactiveNote = "Worker inactive"

// SegmentMode records how a split-shift segment's hours were derived.
type SegmentMode string

const (
	SegmentModeTime  SegmentMode = "time"
	SegmentModeHours SegmentMode = "hours"
)

// Segment is one independently rated sub-interval of a split-shift day.
// HoursWorked and Total are derived, never entered directly.
type Segment struct {
	Mode        SegmentMode     `json:"mode"`
	StartTime   *time.Time      `json:"start_time,omitempty"`
	EndTime     *time.Time      `json:"end_time,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Total       decimal.Decimal `json:"total"`
}

// Attendance is one worker-day. Unique per (WorkerID, calendar date).
type Attendance struct {
	ID             string
	WorkerID       string
	Date           time.Time // calendar date, time-of-day always midnight
	Status         Status
	StartTime      *time.Time
	EndTime        *time.Time
	RestMinutes    int
	MissingMinutes int
	Rate           *decimal.Decimal
	Segments       []Segment
	Note           string
	Remarks        string
	HoursWorked    decimal.Decimal
	Total          decimal.Decimal
	IsSettled      bool
	SettlementID   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	WorkerName *string
}
