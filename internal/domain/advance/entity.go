package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is a cash payment made to a worker ahead of settlement.
type Advance struct {
	ID           string
	WorkerID     string
	Date         time.Time
	Amount       decimal.Decimal
	Note         string
	IsSettled    bool
	SettlementID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	WorkerName *string
}
