package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement closes a period of pending work for one worker. Immutable once
// created. Wallet deposits/withdrawals are recorded as degenerate settlements
// with all activity totals zero and a signed WalletDeposit.
type Settlement struct {
	ID              string
	WorkerID        string
	FarmerID        string
	StartDate       time.Time
	EndDate         time.Time
	AttendanceTotal decimal.Decimal
	AdvancesTotal   decimal.Decimal
	ExtrasTotal     decimal.Decimal
	NetAmount       decimal.Decimal
	PaidAmount      *decimal.Decimal
	WalletDeposit   decimal.Decimal
	Note            string
	CreatedAt       time.Time

	// Joined fields
	WorkerName *string
}

// IsWalletOp reports whether this record is a wallet deposit/withdrawal
// rather than a real period settlement.
func (s Settlement) IsWalletOp() bool {
	return !s.WalletDeposit.IsZero()
}
