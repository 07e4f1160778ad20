package settlement

import (
	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PendingSummary is the aggregate view of everything unsettled for a worker.
type PendingSummary struct {
	AttendanceTotal decimal.Decimal `json:"attendance_total"`
	AdvancesTotal   decimal.Decimal `json:"advances_total"`
	ExtrasTotal     decimal.Decimal `json:"extras_total"`
	NetPending      decimal.Decimal `json:"net_pending"`
	HoursWorked     decimal.Decimal `json:"hours_worked"`
	AttendanceCount int             `json:"attendance_count"`
	AdvancesCount   int             `json:"advances_count"`
	ExtrasCount     int             `json:"extras_count"`

	// Suggested settlement range: min/max date key over every pending entry.
	// Nil when nothing is pending.
	SuggestedStartDate *string `json:"suggested_start_date"`
	SuggestedEndDate   *string `json:"suggested_end_date"`
}

// SummarizePending aggregates unsettled entries into totals and the suggested
// settlement range. Absent and inactive attendance contributes dates but no
// money.
func SummarizePending(attendances []attendance.Attendance, advances []advance.Advance, extras []extra.Extra) PendingSummary {
	s := PendingSummary{
		AttendanceTotal: decimal.Zero,
		AdvancesTotal:   decimal.Zero,
		ExtrasTotal:     decimal.Zero,
		HoursWorked:     decimal.Zero,
	}

	var minKey, maxKey string
	observe := func(key string) {
		if minKey == "" || key < minKey {
			minKey = key
		}
		if key > maxKey {
			maxKey = key
		}
	}

	for _, a := range attendances {
		observe(validator.DateKey(a.Date))
		s.AttendanceCount++
		if a.Status == attendance.StatusPresent {
			s.AttendanceTotal = s.AttendanceTotal.Add(a.Total)
			s.HoursWorked = s.HoursWorked.Add(a.HoursWorked)
		}
	}
	for _, a := range advances {
		observe(validator.DateKey(a.Date))
		s.AdvancesCount++
		s.AdvancesTotal = s.AdvancesTotal.Add(a.Amount)
	}
	for _, e := range extras {
		observe(validator.DateKey(e.Date))
		s.ExtrasCount++
		s.ExtrasTotal = s.ExtrasTotal.Add(e.Amount)
	}

	s.NetPending = s.AttendanceTotal.Sub(s.AdvancesTotal).Sub(s.ExtrasTotal)

	if minKey != "" {
		s.SuggestedStartDate = &minKey
		s.SuggestedEndDate = &maxKey
	}
	return s
}
