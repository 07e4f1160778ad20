package worker

import (
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	Name    string `json:"name"`
	Remarks string `json:"remarks,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID      string
	Name    *string `json:"name,omitempty"`
	Status  *string `json:"status,omitempty"`
	Remarks *string `json:"remarks,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	Remarks       string          `json:"remarks,omitempty"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	CreatedAt     string          `json:"created_at"`
}
