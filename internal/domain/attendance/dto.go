package attendance

import (
	"time"

	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SegmentRequest is one split-shift segment as submitted by the client.
type SegmentRequest struct {
	StartTime   *time.Time       `json:"start_time,omitempty"`
	EndTime     *time.Time       `json:"end_time,omitempty"`
	HoursWorked *decimal.Decimal `json:"hours_worked,omitempty"`
	Rate        decimal.Decimal  `json:"rate"`
}

type CreateAttendanceRequest struct {
	WorkerID       string           `json:"worker_id"`
	Date           string           `json:"date"`
	Status         string           `json:"status"`
	StartTime      *time.Time       `json:"start_time,omitempty"`
	EndTime        *time.Time       `json:"end_time,omitempty"`
	RestMinutes    int              `json:"rest_minutes"`
	MissingMinutes int              `json:"missing_minutes"`
	Rate           *decimal.Decimal `json:"rate,omitempty"`
	Segments       []SegmentRequest `json:"segments,omitempty"`
	Note           string           `json:"note,omitempty"`
	Remarks        string           `json:"remarks,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if r.Status == "" {
		r.Status = string(StatusPresent)
	}
	switch Status(r.Status) {
	case StatusPresent:
		if len(r.Segments) == 0 {
			if r.StartTime == nil || r.EndTime == nil {
				errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start and end time are required for present status"})
			}
			if r.Rate == nil {
				errs = append(errs, validator.ValidationError{Field: "rate", Message: "is required for present status"})
			} else if r.Rate.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: "rate", Message: "must not be negative"})
			}
		}
		if r.RestMinutes < 0 {
			errs = append(errs, validator.ValidationError{Field: "rest_minutes", Message: "must not be negative"})
		}
		if r.MissingMinutes < 0 {
			errs = append(errs, validator.ValidationError{Field: "missing_minutes", Message: "must not be negative"})
		}
	case StatusAbsent:
		if validator.IsEmpty(r.Note) {
			errs = append(errs, validator.ValidationError{Field: "note", Message: "is required for absent status"})
		}
	case StatusInactive:
		// note is forced server-side
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'absent' or 'inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID             string
	Status         string           `json:"status"`
	StartTime      *time.Time       `json:"start_time,omitempty"`
	EndTime        *time.Time       `json:"end_time,omitempty"`
	RestMinutes    int              `json:"rest_minutes"`
	MissingMinutes int              `json:"missing_minutes"`
	Rate           *decimal.Decimal `json:"rate,omitempty"`
	Segments       []SegmentRequest `json:"segments,omitempty"`
	Note           string           `json:"note,omitempty"`
	Remarks        string           `json:"remarks,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status == "" {
		r.Status = string(StatusPresent)
	}
	switch Status(r.Status) {
	case StatusPresent:
		if len(r.Segments) == 0 {
			if r.StartTime == nil || r.EndTime == nil {
				errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start and end time are required for present status"})
			}
			if r.Rate == nil {
				errs = append(errs, validator.ValidationError{Field: "rate", Message: "is required for present status"})
			} else if r.Rate.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: "rate", Message: "must not be negative"})
			}
		}
		if r.RestMinutes < 0 {
			errs = append(errs, validator.ValidationError{Field: "rest_minutes", Message: "must not be negative"})
		}
		if r.MissingMinutes < 0 {
			errs = append(errs, validator.ValidationError{Field: "missing_minutes", Message: "must not be negative"})
		}
	case StatusAbsent:
		if validator.IsEmpty(r.Note) {
			errs = append(errs, validator.ValidationError{Field: "note", Message: "is required for absent status"})
		}
	case StatusInactive:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'absent' or 'inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeRequest struct {
	StartDate string
	EndDate   string
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if len(errs) == 0 && r.EndDate < r.StartDate {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SegmentResponse struct {
	Mode        string          `json:"mode"`
	StartTime   *time.Time      `json:"start_time,omitempty"`
	EndTime     *time.Time      `json:"end_time,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Total       decimal.Decimal `json:"total"`
}

type AttendanceResponse struct {
	ID             string            `json:"id"`
	WorkerID       string            `json:"worker_id"`
	WorkerName     string            `json:"worker_name,omitempty"`
	Date           string            `json:"date"`
	Status         string            `json:"status"`
	StartTime      *time.Time        `json:"start_time,omitempty"`
	EndTime        *time.Time        `json:"end_time,omitempty"`
	RestMinutes    int               `json:"rest_minutes"`
	MissingMinutes int               `json:"missing_minutes"`
	Rate           *decimal.Decimal  `json:"rate,omitempty"`
	Segments       []SegmentResponse `json:"segments,omitempty"`
	Note           string            `json:"note,omitempty"`
	Remarks        string            `json:"remarks,omitempty"`
	HoursWorked    decimal.Decimal   `json:"hours_worked"`
	Total          decimal.Decimal   `json:"total"`
	IsSettled      bool              `json:"is_settled"`
	SettlementID   *string           `json:"settlement_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ToResponse converts an Attendance entity into its API shape.
func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID,
		WorkerID:       a.WorkerID,
		Date:           validator.DateKey(a.Date),
		Status:         string(a.Status),
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
		RestMinutes:    a.RestMinutes,
		MissingMinutes: a.MissingMinutes,
		Rate:           a.Rate,
		Note:           a.Note,
		Remarks:        a.Remarks,
		HoursWorked:    a.HoursWorked,
		Total:          a.Total,
		IsSettled:      a.IsSettled,
		SettlementID:   a.SettlementID,
		CreatedAt:      a.CreatedAt,
	}
	if a.WorkerName != nil {
		resp.WorkerName = *a.WorkerName
	}
	for _, s := range a.Segments {
		resp.Segments = append(resp.Segments, SegmentResponse{
			Mode:        string(s.Mode),
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Rate:        s.Rate,
			HoursWorked: s.HoursWorked,
			Total:       s.Total,
		})
	}
	return resp
}
