package advance

import (
	"time"

	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdvanceRequest struct {
	WorkerID string          `json:"worker_id"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdvanceRequest struct {
	ID     string
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

func (r *UpdateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID           string          `json:"id"`
	WorkerID     string          `json:"worker_id"`
	WorkerName   string          `json:"worker_name,omitempty"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	IsSettled    bool            `json:"is_settled"`
	SettlementID *string         `json:"settlement_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func ToResponse(a Advance) AdvanceResponse {
	resp := AdvanceResponse{
		ID:           a.ID,
		WorkerID:     a.WorkerID,
		Date:         validator.DateKey(a.Date),
		Amount:       a.Amount,
		Note:         a.Note,
		IsSettled:    a.IsSettled,
		SettlementID: a.SettlementID,
		CreatedAt:    a.CreatedAt,
	}
	if a.WorkerName != nil {
		resp.WorkerName = *a.WorkerName
	}
	return resp
}
