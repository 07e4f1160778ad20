package extra

import (
	"time"

	"github.com/shopspring/decimal"
)

// Extra is a non-wage item given to a worker (groceries, fuel, equipment)
// whose value is deducted at settlement.
type Extra struct {
	ID           string
	WorkerID     string
	Date         time.Time
	Item         string
	Amount       decimal.Decimal
	Note         string
	IsSettled    bool
	SettlementID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	WorkerName *string
}
