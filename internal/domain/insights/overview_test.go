package insights

import (
	"testing"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -n)
}

func TestComputeOverview(t *testing.T) {
	snap := Snapshot{
		Workers: []worker.Worker{
			{ID: "w1", Name: "Ravi", Status: worker.StatusActive},
			{ID: "w2", Name: "Suresh", Status: worker.StatusInactive},
		},
		Attendances: []attendance.Attendance{
			{WorkerID: "w1", Date: daysAgo(2), Status: attendance.StatusPresent, HoursWorked: decimal.NewFromInt(8), Total: decimal.NewFromInt(400)},
			{WorkerID: "w1", Date: daysAgo(3), Status: attendance.StatusPresent, HoursWorked: decimal.NewFromInt(6), Total: decimal.NewFromInt(300)},
			{WorkerID: "w1", Date: daysAgo(40), Status: attendance.StatusPresent, HoursWorked: decimal.NewFromInt(8), Total: decimal.NewFromInt(400), IsSettled: true},
			{WorkerID: "w2", Date: daysAgo(1), Status: attendance.StatusAbsent, Note: "sick"},
		},
		Advances: []advance.Advance{
			{WorkerID: "w1", Amount: decimal.NewFromInt(100)},
			{WorkerID: "w1", Amount: decimal.NewFromInt(200), IsSettled: true},
		},
		Settlements: []settlement.Settlement{
			{
				WorkerID:        "w1",
				EndDate:         daysAgo(40),
				AttendanceTotal: decimal.NewFromInt(400),
				AdvancesTotal:   decimal.NewFromInt(200),
				ExtrasTotal:     decimal.Zero,
				NetAmount:       decimal.NewFromInt(200),
			},
			// wallet record, must not count as settlement activity
			{
				WorkerID:        "w1",
				EndDate:         daysAgo(5),
				AttendanceTotal: decimal.Zero,
				AdvancesTotal:   decimal.Zero,
				ExtrasTotal:     decimal.Zero,
				NetAmount:       decimal.NewFromInt(50),
				WalletDeposit:   decimal.NewFromInt(50),
			},
		},
	}

	out := ComputeOverview(snap, now)

	assert.Equal(t, 2, out.TotalWorkers)
	assert.Equal(t, 1, out.ActiveWorkers)

	// w1 pending: 700 attendance - 100 advance
	require.Len(t, out.PendingByWorker, 2)
	assert.Equal(t, "w1", out.PendingByWorker[0].WorkerID)
	assert.True(t, out.PendingByWorker[0].NetPending.Equal(decimal.NewFromInt(600)))
	assert.True(t, out.PendingTotal.Equal(decimal.NewFromInt(600)))

	// lifetime figures skip the wallet record
	assert.True(t, out.LifetimeSettledWages.Equal(decimal.NewFromInt(400)))
	assert.True(t, out.LifetimeAdvances.Equal(decimal.NewFromInt(200)))
	assert.True(t, out.TotalSettledNet.Equal(decimal.NewFromInt(200)))
	require.Len(t, out.MonthlyWageTrend, 1)
	assert.Equal(t, "2025-04", out.MonthlyWageTrend[0].Month)

	// 2 present days in the 30-day window
	require.Len(t, out.Reliability, 2)
	assert.Equal(t, 2, out.Reliability[0].DaysPresent)
	assert.True(t, out.Reliability[0].Percent.Equal(decimal.RequireFromString("6.67")))
	assert.Equal(t, 0, out.Reliability[1].DaysPresent)

	// total advances 300 / (pending attendance 700 + settled wages 400)
	require.Len(t, out.AdvanceHeavy, 2)
	assert.True(t, out.AdvanceHeavy[0].Ratio.Equal(decimal.RequireFromString("0.27")))
	assert.True(t, out.AdvanceHeavy[1].Ratio.IsZero())

	// w1 has positive pending and a 40-day-old settlement
	require.Len(t, out.OverdueWorkers, 1)
	assert.Equal(t, "w1", out.OverdueWorkers[0].WorkerID)
	require.NotNil(t, out.OverdueWorkers[0].LastSettlementDate)

	require.Len(t, out.TopWorkersByWages, 1)
	assert.True(t, out.TopWorkersByWages[0].Value.Equal(decimal.NewFromInt(400)))
	require.Len(t, out.TopWorkersByHours, 1)
	assert.True(t, out.TopWorkersByHours[0].Value.Equal(decimal.NewFromInt(8)))

	require.Len(t, out.DailyHoursTrend, 30)
	assert.Equal(t, "2025-05-02", out.DailyHoursTrend[0].Date)
	assert.Equal(t, "2025-05-31", out.DailyHoursTrend[29].Date)
	assert.True(t, out.DailyHoursTrend[27].Hours.Equal(decimal.NewFromInt(8)))
}

func TestComputeOverviewNoOverdueWithoutPending(t *testing.T) {
	snap := Snapshot{
		Workers: []worker.Worker{{ID: "w1", Name: "Ravi", Status: worker.StatusActive}},
	}

	out := ComputeOverview(snap, now)

	assert.Empty(t, out.OverdueWorkers)
	assert.True(t, out.PendingTotal.IsZero())
}
