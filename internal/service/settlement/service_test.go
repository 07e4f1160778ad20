package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorkerRepo struct {
	worker.WorkerRepository
	workers map[string]worker.Worker

	walletDeltas []decimal.Decimal
}

func (s *stubWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := s.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (s *stubWorkerRepo) AdjustWalletBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	s.walletDeltas = append(s.walletDeltas, delta)
	w := s.workers[id]
	w.WalletBalance = w.WalletBalance.Add(delta)
	s.workers[id] = w
	return w.WalletBalance, nil
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	unsettled []attendance.Attendance

	markedIDs          []string
	markedSettlementID string
}

func (s *stubAttendanceRepo) ListUnsettledByWorker(ctx context.Context, workerID string) ([]attendance.Attendance, error) {
	return s.unsettled, nil
}

func (s *stubAttendanceRepo) ListByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) MarkSettled(ctx context.Context, ids []string, settlementID string) error {
	s.markedIDs = ids
	s.markedSettlementID = settlementID
	return nil
}

type stubAdvanceRepo struct {
	advance.AdvanceRepository
	unsettled []advance.Advance

	rangeStart time.Time
	rangeEnd   time.Time

	markedIDs          []string
	markedSettlementID string
}

func (s *stubAdvanceRepo) ListUnsettledByWorker(ctx context.Context, workerID string) ([]advance.Advance, error) {
	return s.unsettled, nil
}

func (s *stubAdvanceRepo) ListByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]advance.Advance, error) {
	s.rangeStart, s.rangeEnd = start, end
	return nil, nil
}

func (s *stubAdvanceRepo) MarkSettled(ctx context.Context, ids []string, settlementID string) error {
	s.markedIDs = ids
	s.markedSettlementID = settlementID
	return nil
}

type stubExtraRepo struct {
	extra.ExtraRepository
	unsettled []extra.Extra

	markedIDs          []string
	markedSettlementID string
}

func (s *stubExtraRepo) ListUnsettledByWorker(ctx context.Context, workerID string) ([]extra.Extra, error) {
	return s.unsettled, nil
}

func (s *stubExtraRepo) MarkSettled(ctx context.Context, ids []string, settlementID string) error {
	s.markedIDs = ids
	s.markedSettlementID = settlementID
	return nil
}

func (s *stubExtraRepo) ListByWorkerRange(ctx context.Context, workerID string, start, end time.Time) ([]extra.Extra, error) {
	return nil, nil
}

type stubSettlementRepo struct {
	settlement.SettlementRepository
	last    settlement.Settlement
	lastErr error

	created []settlement.Settlement
}

func (s *stubSettlementRepo) GetLastPeriodSettlement(ctx context.Context, workerID string) (settlement.Settlement, error) {
	if s.lastErr != nil {
		return settlement.Settlement{}, s.lastErr
	}
	return s.last, nil
}

func (s *stubSettlementRepo) Create(ctx context.Context, record settlement.Settlement) (settlement.Settlement, error) {
	record.ID = "set1"
	s.created = append(s.created, record)
	return record, nil
}

func day(d int) time.Time {
	return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(workers *stubWorkerRepo, att *stubAttendanceRepo, adv *stubAdvanceRepo, ext *stubExtraRepo, set *stubSettlementRepo) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		settlementRepo: set,
		attendanceRepo: att,
		advanceRepo:    adv,
		extraRepo:      ext,
		workerRepo:     workers,
		now:            func() time.Time { return time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC) },
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
}

func ownedWorker() *stubWorkerRepo {
	return &stubWorkerRepo{workers: map[string]worker.Worker{
		"w1": {ID: "w1", FarmerID: "f1", Name: "Ravi", WalletBalance: decimal.NewFromInt(100)},
	}}
}

func TestGetPending(t *testing.T) {
	rate := decimal.NewFromInt(50)
	svc := newTestService(
		ownedWorker(),
		&stubAttendanceRepo{unsettled: []attendance.Attendance{
			{ID: "a1", Date: day(3), Status: attendance.StatusPresent, Rate: &rate, HoursWorked: decimal.NewFromInt(8), Total: decimal.NewFromInt(400)},
			{ID: "a2", Date: day(4), Status: attendance.StatusAbsent},
		}},
		&stubAdvanceRepo{unsettled: []advance.Advance{
			{ID: "d1", Date: day(5), Amount: decimal.NewFromInt(150)},
		}},
		&stubExtraRepo{},
		&stubSettlementRepo{},
	)

	summary, err := svc.GetPending(context.Background(), "f1", "w1")
	require.NoError(t, err)

	assert.True(t, summary.AttendanceTotal.Equal(decimal.NewFromInt(400)))
	assert.True(t, summary.AdvancesTotal.Equal(decimal.NewFromInt(150)))
	assert.True(t, summary.NetPending.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 2, summary.AttendanceCount)
	require.NotNil(t, summary.SuggestedStartDate)
	assert.Equal(t, "2025-04-03", *summary.SuggestedStartDate)
	assert.Equal(t, "2025-04-05", *summary.SuggestedEndDate)
}

func TestGetPendingRejectsForeignWorker(t *testing.T) {
	svc := newTestService(ownedWorker(), &stubAttendanceRepo{}, &stubAdvanceRepo{}, &stubExtraRepo{}, &stubSettlementRepo{})

	_, err := svc.GetPending(context.Background(), "someone-else", "w1")
	assert.ErrorIs(t, err, worker.ErrNotOwner)
}

func TestSettleRangeMismatch(t *testing.T) {
	rate := decimal.NewFromInt(50)
	svc := newTestService(
		ownedWorker(),
		&stubAttendanceRepo{unsettled: []attendance.Attendance{
			{ID: "a1", Date: day(3), Status: attendance.StatusPresent, Rate: &rate, Total: decimal.NewFromInt(400)},
			{ID: "a2", Date: day(9), Status: attendance.StatusPresent, Rate: &rate, Total: decimal.NewFromInt(400)},
		}},
		&stubAdvanceRepo{},
		&stubExtraRepo{},
		&stubSettlementRepo{},
	)

	_, err := svc.Settle(context.Background(), "f1", "w1", settlement.SettleRequest{
		StartDate: "2025-04-03",
		EndDate:   "2025-04-08",
	})

	var mismatch *settlement.RangeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "2025-04-03", mismatch.ExpectedStartDate)
	assert.Equal(t, "2025-04-09", mismatch.ExpectedEndDate)
}

func TestSettleNothingPending(t *testing.T) {
	svc := newTestService(ownedWorker(), &stubAttendanceRepo{}, &stubAdvanceRepo{}, &stubExtraRepo{}, &stubSettlementRepo{})

	_, err := svc.Settle(context.Background(), "f1", "w1", settlement.SettleRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-30",
	})
	assert.ErrorIs(t, err, settlement.ErrNoPendingEntries)
}

func TestSettleInvalidRange(t *testing.T) {
	svc := newTestService(ownedWorker(), &stubAttendanceRepo{}, &stubAdvanceRepo{}, &stubExtraRepo{}, &stubSettlementRepo{})

	_, err := svc.Settle(context.Background(), "f1", "w1", settlement.SettleRequest{
		StartDate: "2025-04-30",
		EndDate:   "2025-04-01",
	})
	assert.Error(t, err)
}

func TestWalletRejectsNonPositiveAmounts(t *testing.T) {
	svc := newTestService(ownedWorker(), &stubAttendanceRepo{}, &stubAdvanceRepo{}, &stubExtraRepo{}, &stubSettlementRepo{})

	_, err := svc.WalletDeposit(context.Background(), "f1", "w1", settlement.WalletRequest{Amount: decimal.Zero})
	assert.ErrorIs(t, err, settlement.ErrInvalidAmount)

	_, err = svc.WalletWithdraw(context.Background(), "f1", "w1", settlement.WalletRequest{Amount: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, settlement.ErrInvalidAmount)
}

func TestWalletWithdrawInsufficientBalance(t *testing.T) {
	svc := newTestService(ownedWorker(), &stubAttendanceRepo{}, &stubAdvanceRepo{}, &stubExtraRepo{}, &stubSettlementRepo{})

	_, err := svc.WalletWithdraw(context.Background(), "f1", "w1", settlement.WalletRequest{
		Amount: decimal.NewFromInt(500),
	})
	assert.ErrorIs(t, err, settlement.ErrInsufficientBalance)
}

func TestLastSettlement(t *testing.T) {
	t.Run("no settlements yet", func(t *testing.T) {
		svc := newTestService(ownedWorker(), &stubAttendanceRepo{}, &stubAdvanceRepo{}, &stubExtraRepo{}, &stubSettlementRepo{
			lastErr: settlement.ErrSettlementNotFound,
		})

		resp, err := svc.LastSettlement(context.Background(), "f1", "w1")
		require.NoError(t, err)
		assert.Nil(t, resp.EndDate)
		assert.Nil(t, resp.SuggestedStartDate)
	})

	t.Run("suggests the day after the last period", func(t *testing.T) {
		svc := newTestService(ownedWorker(), &stubAttendanceRepo{}, &stubAdvanceRepo{}, &stubExtraRepo{}, &stubSettlementRepo{
			last: settlement.Settlement{EndDate: day(15)},
		})

		resp, err := svc.LastSettlement(context.Background(), "f1", "w1")
		require.NoError(t, err)
		require.NotNil(t, resp.EndDate)
		assert.Equal(t, "2025-04-15", *resp.EndDate)
		assert.Equal(t, "2025-04-16", *resp.SuggestedStartDate)
	})
}

func TestSettleMarksExactlyTheFetchedEntries(t *testing.T) {
	rate := decimal.NewFromInt(50)
	att := &stubAttendanceRepo{unsettled: []attendance.Attendance{
		{ID: "a1", Date: day(3), Status: attendance.StatusPresent, Rate: &rate, HoursWorked: decimal.NewFromInt(8), Total: decimal.NewFromInt(400)},
		{ID: "a2", Date: day(5), Status: attendance.StatusAbsent},
	}}
	adv := &stubAdvanceRepo{unsettled: []advance.Advance{
		{ID: "d1", Date: day(4), Amount: decimal.NewFromInt(150)},
	}}
	ext := &stubExtraRepo{unsettled: []extra.Extra{
		{ID: "e1", Date: day(6), Amount: decimal.NewFromInt(50)},
	}}
	set := &stubSettlementRepo{}
	svc := newTestService(ownedWorker(), att, adv, ext, set)

	resp, err := svc.Settle(context.Background(), "f1", "w1", settlement.SettleRequest{
		StartDate: "2025-04-03",
		EndDate:   "2025-04-06",
	})
	require.NoError(t, err)

	require.Len(t, set.created, 1)
	assert.True(t, set.created[0].NetAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, set.created[0].WalletDeposit.IsZero())

	// every fetched pending entry is stamped, and nothing else
	assert.Equal(t, []string{"a1", "a2"}, att.markedIDs)
	assert.Equal(t, []string{"d1"}, adv.markedIDs)
	assert.Equal(t, []string{"e1"}, ext.markedIDs)
	assert.Equal(t, resp.ID, att.markedSettlementID)
	assert.Equal(t, resp.ID, adv.markedSettlementID)
	assert.Equal(t, resp.ID, ext.markedSettlementID)
}

func TestWalletOpsKeepBalanceInStepWithDeposits(t *testing.T) {
	workers := ownedWorker()
	set := &stubSettlementRepo{}
	svc := newTestService(workers, &stubAttendanceRepo{}, &stubAdvanceRepo{}, &stubExtraRepo{}, set)

	depositResp, err := svc.WalletDeposit(context.Background(), "f1", "w1", settlement.WalletRequest{
		Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.True(t, depositResp.WalletBalance.Equal(decimal.NewFromInt(200)))

	withdrawResp, err := svc.WalletWithdraw(context.Background(), "f1", "w1", settlement.WalletRequest{
		Amount: decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	assert.True(t, withdrawResp.WalletBalance.Equal(decimal.NewFromInt(160)))

	require.Len(t, set.created, 2)

	deposit, withdrawal := set.created[0], set.created[1]
	assert.True(t, deposit.WalletDeposit.Equal(decimal.NewFromInt(100)))
	assert.True(t, deposit.NetAmount.Equal(decimal.NewFromInt(100)))
	assert.Nil(t, deposit.PaidAmount)
	assert.Equal(t, day(20), deposit.StartDate)
	assert.Equal(t, day(20), deposit.EndDate)
	assert.True(t, deposit.AttendanceTotal.IsZero())

	assert.True(t, withdrawal.WalletDeposit.Equal(decimal.NewFromInt(-40)))
	assert.True(t, withdrawal.NetAmount.Equal(decimal.NewFromInt(-40)))
	require.NotNil(t, withdrawal.PaidAmount)
	assert.True(t, withdrawal.PaidAmount.Equal(decimal.NewFromInt(40)))

	// the balance moved by exactly the signed sum of recorded deposits
	sum := decimal.Zero
	for _, rec := range set.created {
		sum = sum.Add(rec.WalletDeposit)
	}
	assert.True(t, workers.workers["w1"].WalletBalance.Equal(decimal.NewFromInt(100).Add(sum)))

	require.Len(t, workers.walletDeltas, 2)
	assert.True(t, workers.walletDeltas[0].Equal(decimal.NewFromInt(100)))
	assert.True(t, workers.walletDeltas[1].Equal(decimal.NewFromInt(-40)))
}

func TestMonthWiseSummaryWindow(t *testing.T) {
	adv := &stubAdvanceRepo{}
	att := &stubAttendanceRepo{}
	svc := newTestService(ownedWorker(), att, adv, &stubExtraRepo{}, &stubSettlementRepo{})

	t.Run("money window extends to today when requested", func(t *testing.T) {
		_, err := svc.MonthWiseSummary(context.Background(), "f1", "w1", settlement.MonthWiseSettleRequest{
			StartDate:        "2025-04-01",
			EndDate:          "2025-04-10",
			IncludeTillToday: true,
		})
		require.NoError(t, err)
		assert.Equal(t, day(1), adv.rangeStart)
		assert.Equal(t, day(20), adv.rangeEnd)
	})

	t.Run("money window stays put otherwise", func(t *testing.T) {
		_, err := svc.MonthWiseSummary(context.Background(), "f1", "w1", settlement.MonthWiseSettleRequest{
			StartDate: "2025-04-01",
			EndDate:   "2025-04-10",
		})
		require.NoError(t, err)
		assert.Equal(t, day(10), adv.rangeEnd)
	})
}
