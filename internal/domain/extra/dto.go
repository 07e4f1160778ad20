package extra

import (
	"time"

	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateExtraRequest struct {
	WorkerID string          `json:"worker_id"`
	Date     string          `json:"date"`
	Item     string          `json:"item"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

func (r *CreateExtraRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Item) {
		errs = append(errs, validator.ValidationError{Field: "item", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateExtraRequest struct {
	ID     string
	Date   string          `json:"date"`
	Item   string          `json:"item"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

func (r *UpdateExtraRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Item) {
		errs = append(errs, validator.ValidationError{Field: "item", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExtraResponse struct {
	ID           string          `json:"id"`
	WorkerID     string          `json:"worker_id"`
	WorkerName   string          `json:"worker_name,omitempty"`
	Date         string          `json:"date"`
	Item         string          `json:"item"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	IsSettled    bool            `json:"is_settled"`
	SettlementID *string         `json:"settlement_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func ToResponse(e Extra) ExtraResponse {
	resp := ExtraResponse{
		ID:           e.ID,
		WorkerID:     e.WorkerID,
		Date:         validator.DateKey(e.Date),
		Item:         e.Item,
		Amount:       e.Amount,
		Note:         e.Note,
		IsSettled:    e.IsSettled,
		SettlementID: e.SettlementID,
		CreatedAt:    e.CreatedAt,
	}
	if e.WorkerName != nil {
		resp.WorkerName = *e.WorkerName
	}
	return resp
}
