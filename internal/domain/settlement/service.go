package settlement

import "context"

// SettlementService defines the settlement engine and the read models built
// on top of it.
type SettlementService interface {
	// GetPending summarizes everything unsettled for the worker.
	GetPending(ctx context.Context, farmerID, workerID string) (PendingSummary, error)

	// Settle performs a full settlement. The request range must exactly
	// match the recomputed pending range.
	Settle(ctx context.Context, farmerID, workerID string, req SettleRequest) (SettlementResponse, error)

	// MonthWiseSummary previews the rows and totals a month-wise settlement
	// over the same window would cover.
	MonthWiseSummary(ctx context.Context, farmerID, workerID string, req MonthWiseSettleRequest) (MonthWiseSummaryResponse, error)

	// MonthWiseSettle settles the window [start, end]; advances and extras
	// extend to today when IncludeTillToday is set.
	MonthWiseSettle(ctx context.Context, farmerID, workerID string, req MonthWiseSettleRequest) (SettlementResponse, error)

	WalletDeposit(ctx context.Context, farmerID, workerID string, req WalletRequest) (WalletResponse, error)

	WalletWithdraw(ctx context.Context, farmerID, workerID string, req WalletRequest) (WalletResponse, error)

	HistoryByWorker(ctx context.Context, farmerID, workerID string) ([]SettlementResponse, error)

	HistoryByFarmer(ctx context.Context, farmerID string) ([]SettlementResponse, error)

	// Ledger builds the unified transaction feed for one worker.
	Ledger(ctx context.Context, farmerID, workerID string) ([]Transaction, error)

	// LastSettlement returns the end of the last period settlement and the
	// suggested start date for the next one.
	LastSettlement(ctx context.Context, farmerID, workerID string) (LastSettlementResponse, error)
}
