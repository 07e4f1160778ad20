package settlement

import (
	"time"

	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SettleRequest struct {
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	PaidAmount *decimal.Decimal `json:"paid_amount,omitempty"`
	Note       string           `json:"note,omitempty"`
}

func (r *SettleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if len(errs) == 0 && r.EndDate < r.StartDate {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.PaidAmount != nil && r.PaidAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "paid_amount", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthWiseSettleRequest struct {
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	IncludeTillToday bool             `json:"include_till_today"`
	PaidAmount       *decimal.Decimal `json:"paid_amount,omitempty"`
	Note             string           `json:"note,omitempty"`
}

func (r *MonthWiseSettleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if len(errs) == 0 && r.EndDate < r.StartDate {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.PaidAmount != nil && r.PaidAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "paid_amount", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WalletRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

type SettlementResponse struct {
	ID              string           `json:"id"`
	WorkerID        string           `json:"worker_id"`
	WorkerName      string           `json:"worker_name,omitempty"`
	StartDate       string           `json:"start_date"`
	EndDate         string           `json:"end_date"`
	AttendanceTotal decimal.Decimal  `json:"attendance_total"`
	AdvancesTotal   decimal.Decimal  `json:"advances_total"`
	ExtrasTotal     decimal.Decimal  `json:"extras_total"`
	NetAmount       decimal.Decimal  `json:"net_amount"`
	PaidAmount      *decimal.Decimal `json:"paid_amount,omitempty"`
	WalletDeposit   decimal.Decimal  `json:"wallet_deposit"`
	Note            string           `json:"note,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func ToResponse(s Settlement) SettlementResponse {
	resp := SettlementResponse{
		ID:              s.ID,
		WorkerID:        s.WorkerID,
		StartDate:       validator.DateKey(s.StartDate),
		EndDate:         validator.DateKey(s.EndDate),
		AttendanceTotal: s.AttendanceTotal,
		AdvancesTotal:   s.AdvancesTotal,
		ExtrasTotal:     s.ExtrasTotal,
		NetAmount:       s.NetAmount,
		PaidAmount:      s.PaidAmount,
		WalletDeposit:   s.WalletDeposit,
		Note:            s.Note,
		CreatedAt:       s.CreatedAt,
	}
	if s.WorkerName != nil {
		resp.WorkerName = *s.WorkerName
	}
	return resp
}

// WalletResponse pairs the recorded wallet settlement with the balance after
// the operation.
type WalletResponse struct {
	Settlement    SettlementResponse `json:"settlement"`
	WalletBalance decimal.Decimal    `json:"wallet_balance"`
}

// LastSettlementResponse feeds period pickers: the end of the last period
// settlement and the day after it as the suggested next start.
type LastSettlementResponse struct {
	EndDate            *string `json:"end_date"`
	SuggestedStartDate *string `json:"suggested_start_date"`
}

// MonthWiseSummaryResponse is the preview for a month-wise settlement.
type MonthWiseSummaryResponse struct {
	Rows   []StatementRow  `json:"entries"`
	Totals StatementTotals `json:"totals"`
}
