package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/agrilabs/wms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SettlementServiceImpl struct {
	db             *database.DB
	settlementRepo settlement.SettlementRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	extraRepo      extra.ExtraRepository
	workerRepo     worker.WorkerRepository
	now            func() time.Time

	// runTx wraps WithTransaction so tests can drive the transactional
	// paths with stub repositories.
	runTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewSettlementService(
	db *database.DB,
	settlementRepo settlement.SettlementRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	extraRepo extra.ExtraRepository,
	workerRepo worker.WorkerRepository,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		db:             db,
		settlementRepo: settlementRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		extraRepo:      extraRepo,
		workerRepo:     workerRepo,
		now:            time.Now,
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *SettlementServiceImpl) GetPending(ctx context.Context, farmerID, workerID string) (settlement.PendingSummary, error) {
	if _, err := s.getOwnedWorker(ctx, farmerID, workerID); err != nil {
		return settlement.PendingSummary{}, err
	}

	attendances, advances, extras, err := s.loadPending(ctx, workerID)
	if err != nil {
		return settlement.PendingSummary{}, err
	}

	return settlement.SummarizePending(attendances, advances, extras), nil
}

// Settle performs a full settlement of everything pending. The caller's
// range has to match the recomputed pending range exactly; nothing more,
// nothing less.
func (s *SettlementServiceImpl) Settle(ctx context.Context, farmerID, workerID string, req settlement.SettleRequest) (settlement.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.SettlementResponse{}, err
	}

	if _, err := s.getOwnedWorker(ctx, farmerID, workerID); err != nil {
		return settlement.SettlementResponse{}, err
	}

	attendances, advances, extras, err := s.loadPending(ctx, workerID)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	summary := settlement.SummarizePending(attendances, advances, extras)
	if summary.SuggestedStartDate == nil {
		return settlement.SettlementResponse{}, settlement.ErrNoPendingEntries
	}
	if req.StartDate != *summary.SuggestedStartDate || req.EndDate != *summary.SuggestedEndDate {
		return settlement.SettlementResponse{}, &settlement.RangeMismatchError{
			ExpectedStartDate: *summary.SuggestedStartDate,
			ExpectedEndDate:   *summary.SuggestedEndDate,
		}
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	record := settlement.Settlement{
		WorkerID:        workerID,
		FarmerID:        farmerID,
		StartDate:       startDate,
		EndDate:         endDate,
		AttendanceTotal: summary.AttendanceTotal,
		AdvancesTotal:   summary.AdvancesTotal,
		ExtrasTotal:     summary.ExtrasTotal,
		NetAmount:       summary.AttendanceTotal.Sub(summary.AdvancesTotal).Sub(summary.ExtrasTotal),
		PaidAmount:      req.PaidAmount,
		WalletDeposit:   decimal.Zero,
		Note:            req.Note,
	}

	created, err := s.persistSettlement(ctx, record, attendances, advances, extras)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	return settlement.ToResponse(created), nil
}

func (s *SettlementServiceImpl) MonthWiseSummary(ctx context.Context, farmerID, workerID string, req settlement.MonthWiseSettleRequest) (settlement.MonthWiseSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.MonthWiseSummaryResponse{}, err
	}

	if _, err := s.getOwnedWorker(ctx, farmerID, workerID); err != nil {
		return settlement.MonthWiseSummaryResponse{}, err
	}

	start, end, moneyEnd := s.windowFor(req)

	attendances, err := s.attendanceRepo.ListByWorkerRange(ctx, workerID, start, end)
	if err != nil {
		return settlement.MonthWiseSummaryResponse{}, err
	}
	advances, err := s.advanceRepo.ListByWorkerRange(ctx, workerID, start, moneyEnd)
	if err != nil {
		return settlement.MonthWiseSummaryResponse{}, err
	}
	extras, err := s.extraRepo.ListByWorkerRange(ctx, workerID, start, moneyEnd)
	if err != nil {
		return settlement.MonthWiseSummaryResponse{}, err
	}

	rows, totals := settlement.BuildStatement(attendances, advances, extras)
	return settlement.MonthWiseSummaryResponse{Rows: rows, Totals: totals}, nil
}

// MonthWiseSettle settles one window without the full-settlement range-match
// constraint. Advances and extras extend to today when the caller opts in,
// so money handed out after the attendance window still clears.
func (s *SettlementServiceImpl) MonthWiseSettle(ctx context.Context, farmerID, workerID string, req settlement.MonthWiseSettleRequest) (settlement.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.SettlementResponse{}, err
	}

	if _, err := s.getOwnedWorker(ctx, farmerID, workerID); err != nil {
		return settlement.SettlementResponse{}, err
	}

	start, end, moneyEnd := s.windowFor(req)

	attendances, err := s.attendanceRepo.ListUnsettledByWorkerRange(ctx, workerID, start, end)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	advances, err := s.advanceRepo.ListUnsettledByWorkerRange(ctx, workerID, start, moneyEnd)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	extras, err := s.extraRepo.ListUnsettledByWorkerRange(ctx, workerID, start, moneyEnd)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	if len(attendances) == 0 && len(advances) == 0 && len(extras) == 0 {
		return settlement.SettlementResponse{}, settlement.ErrNoPendingEntries
	}

	summary := settlement.SummarizePending(attendances, advances, extras)

	record := settlement.Settlement{
		WorkerID:        workerID,
		FarmerID:        farmerID,
		StartDate:       start,
		EndDate:         end,
		AttendanceTotal: summary.AttendanceTotal,
		AdvancesTotal:   summary.AdvancesTotal,
		ExtrasTotal:     summary.ExtrasTotal,
		NetAmount:       summary.AttendanceTotal.Sub(summary.AdvancesTotal).Sub(summary.ExtrasTotal),
		PaidAmount:      req.PaidAmount,
		WalletDeposit:   decimal.Zero,
		Note:            req.Note,
	}

	created, err := s.persistSettlement(ctx, record, attendances, advances, extras)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	return settlement.ToResponse(created), nil
}

func (s *SettlementServiceImpl) WalletDeposit(ctx context.Context, farmerID, workerID string, req settlement.WalletRequest) (settlement.WalletResponse, error) {
	if !req.Amount.IsPositive() {
		return settlement.WalletResponse{}, settlement.ErrInvalidAmount
	}

	if _, err := s.getOwnedWorker(ctx, farmerID, workerID); err != nil {
		return settlement.WalletResponse{}, err
	}

	return s.recordWalletOp(ctx, farmerID, workerID, req.Amount, nil, req.Note)
}

func (s *SettlementServiceImpl) WalletWithdraw(ctx context.Context, farmerID, workerID string, req settlement.WalletRequest) (settlement.WalletResponse, error) {
	if !req.Amount.IsPositive() {
		return settlement.WalletResponse{}, settlement.ErrInvalidAmount
	}

	w, err := s.getOwnedWorker(ctx, farmerID, workerID)
	if err != nil {
		return settlement.WalletResponse{}, err
	}
	if req.Amount.GreaterThan(w.WalletBalance) {
		return settlement.WalletResponse{}, settlement.ErrInsufficientBalance
	}

	paid := req.Amount
	return s.recordWalletOp(ctx, farmerID, workerID, req.Amount.Neg(), &paid, req.Note)
}

// recordWalletOp adjusts the balance and records the degenerate settlement in
// one transaction. delta is signed: positive deposit, negative withdrawal.
func (s *SettlementServiceImpl) recordWalletOp(ctx context.Context, farmerID, workerID string, delta decimal.Decimal, paidAmount *decimal.Decimal, note string) (settlement.WalletResponse, error) {
	today := validator.TruncateToDate(s.now())

	var created settlement.Settlement
	var balance decimal.Decimal

	err := s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		balance, err = s.workerRepo.AdjustWalletBalance(txCtx, workerID, delta)
		if err != nil {
			return err
		}

		created, err = s.settlementRepo.Create(txCtx, settlement.Settlement{
			WorkerID:        workerID,
			FarmerID:        farmerID,
			StartDate:       today,
			EndDate:         today,
			AttendanceTotal: decimal.Zero,
			AdvancesTotal:   decimal.Zero,
			ExtrasTotal:     decimal.Zero,
			NetAmount:       delta,
			PaidAmount:      paidAmount,
			WalletDeposit:   delta,
			Note:            note,
		})
		return err
	})
	if err != nil {
		return settlement.WalletResponse{}, fmt.Errorf("failed to record wallet operation: %w", err)
	}

	return settlement.WalletResponse{
		Settlement:    settlement.ToResponse(created),
		WalletBalance: balance,
	}, nil
}

func (s *SettlementServiceImpl) HistoryByWorker(ctx context.Context, farmerID, workerID string) ([]settlement.SettlementResponse, error) {
	if _, err := s.getOwnedWorker(ctx, farmerID, workerID); err != nil {
		return nil, err
	}

	records, err := s.settlementRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}

	return toResponses(records), nil
}

func (s *SettlementServiceImpl) HistoryByFarmer(ctx context.Context, farmerID string) ([]settlement.SettlementResponse, error) {
	records, err := s.settlementRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}

	return toResponses(records), nil
}

func (s *SettlementServiceImpl) Ledger(ctx context.Context, farmerID, workerID string) ([]settlement.Transaction, error) {
	if _, err := s.getOwnedWorker(ctx, farmerID, workerID); err != nil {
		return nil, err
	}

	attendances, err := s.attendanceRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	advances, err := s.advanceRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	extras, err := s.extraRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	settlements, err := s.settlementRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	return settlement.BuildLedger(attendances, advances, extras, settlements), nil
}

func (s *SettlementServiceImpl) LastSettlement(ctx context.Context, farmerID, workerID string) (settlement.LastSettlementResponse, error) {
	if _, err := s.getOwnedWorker(ctx, farmerID, workerID); err != nil {
		return settlement.LastSettlementResponse{}, err
	}

	last, err := s.settlementRepo.GetLastPeriodSettlement(ctx, workerID)
	if err != nil {
		if errors.Is(err, settlement.ErrSettlementNotFound) {
			return settlement.LastSettlementResponse{}, nil
		}
		return settlement.LastSettlementResponse{}, err
	}

	endKey := validator.DateKey(last.EndDate)
	nextKey := validator.DateKey(last.EndDate.AddDate(0, 0, 1))
	return settlement.LastSettlementResponse{
		EndDate:            &endKey,
		SuggestedStartDate: &nextKey,
	}, nil
}

// windowFor resolves the attendance window and the possibly extended window
// for advances and extras.
func (s *SettlementServiceImpl) windowFor(req settlement.MonthWiseSettleRequest) (start, end, moneyEnd time.Time) {
	start, _ = validator.IsValidDate(req.StartDate)
	end, _ = validator.IsValidDate(req.EndDate)

	moneyEnd = end
	if req.IncludeTillToday {
		today := validator.TruncateToDate(s.now())
		if today.After(end) {
			moneyEnd = today
		}
	}
	return start, end, moneyEnd
}

func (s *SettlementServiceImpl) loadPending(ctx context.Context, workerID string) ([]attendance.Attendance, []advance.Advance, []extra.Extra, error) {
	attendances, err := s.attendanceRepo.ListUnsettledByWorker(ctx, workerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load pending attendance: %w", err)
	}
	advances, err := s.advanceRepo.ListUnsettledByWorker(ctx, workerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load pending advances: %w", err)
	}
	extras, err := s.extraRepo.ListUnsettledByWorker(ctx, workerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load pending extras: %w", err)
	}
	return attendances, advances, extras, nil
}

// persistSettlement creates the settlement and flags the already-fetched
// entries in one transaction, so entries arriving mid-request stay pending.
func (s *SettlementServiceImpl) persistSettlement(ctx context.Context, record settlement.Settlement, attendances []attendance.Attendance, advances []advance.Advance, extras []extra.Extra) (settlement.Settlement, error) {
	attendanceIDs := make([]string, 0, len(attendances))
	for _, a := range attendances {
		attendanceIDs = append(attendanceIDs, a.ID)
	}
	advanceIDs := make([]string, 0, len(advances))
	for _, a := range advances {
		advanceIDs = append(advanceIDs, a.ID)
	}
	extraIDs := make([]string, 0, len(extras))
	for _, e := range extras {
		extraIDs = append(extraIDs, e.ID)
	}

	var created settlement.Settlement
	err := s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.settlementRepo.Create(txCtx, record)
		if err != nil {
			return err
		}

		if err := s.attendanceRepo.MarkSettled(txCtx, attendanceIDs, created.ID); err != nil {
			return err
		}
		if err := s.advanceRepo.MarkSettled(txCtx, advanceIDs, created.ID); err != nil {
			return err
		}
		return s.extraRepo.MarkSettled(txCtx, extraIDs, created.ID)
	})
	if err != nil {
		return settlement.Settlement{}, fmt.Errorf("failed to persist settlement: %w", err)
	}

	return created, nil
}

func (s *SettlementServiceImpl) getOwnedWorker(ctx context.Context, farmerID, workerID string) (worker.Worker, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return worker.Worker{}, err
	}
	if w.FarmerID != farmerID {
		return worker.Worker{}, worker.ErrNotOwner
	}
	return w, nil
}

func toResponses(records []settlement.Settlement) []settlement.SettlementResponse {
	responses := make([]settlement.SettlementResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, settlement.ToResponse(r))
	}
	return responses
}
