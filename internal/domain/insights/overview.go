package insights

import (
	"sort"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	trendWindowDays = 30
	topWorkersLimit = 7
)

// Snapshot is everything the overview needs, loaded in one round of reads.
type Snapshot struct {
	Workers     []worker.Worker
	Attendances []attendance.Attendance
	Advances    []advance.Advance
	Extras      []extra.Extra
	Settlements []settlement.Settlement
}

// ComputeOverview builds the farmer dashboard from a snapshot. Pure so it
// can be tested without a database; now anchors the 30-day windows.
func ComputeOverview(snap Snapshot, now time.Time) OverviewResponse {
	out := OverviewResponse{
		PendingTotal:         decimal.Zero,
		LifetimeSettledWages: decimal.Zero,
		LifetimeAdvances:     decimal.Zero,
		LifetimeExtras:       decimal.Zero,
		TotalSettledNet:      decimal.Zero,
	}

	names := make(map[string]string, len(snap.Workers))
	for _, w := range snap.Workers {
		names[w.ID] = w.Name
		out.TotalWorkers++
		if w.Status == worker.StatusActive {
			out.ActiveWorkers++
		}
	}

	type workerAgg struct {
		pendingAttendance decimal.Decimal
		pendingAdvances   decimal.Decimal
		pendingExtras     decimal.Decimal
		settledWages      decimal.Decimal
		settledHours      decimal.Decimal
		totalAdvances     decimal.Decimal
		presentDays       map[string]bool
	}
	aggs := make(map[string]*workerAgg, len(snap.Workers))
	agg := func(workerID string) *workerAgg {
		a, ok := aggs[workerID]
		if !ok {
			a = &workerAgg{
				pendingAttendance: decimal.Zero,
				pendingAdvances:   decimal.Zero,
				pendingExtras:     decimal.Zero,
				settledWages:      decimal.Zero,
				settledHours:      decimal.Zero,
				totalAdvances:     decimal.Zero,
				presentDays:       map[string]bool{},
			}
			aggs[workerID] = a
		}
		return a
	}

	windowStart := validator.TruncateToDate(now).AddDate(0, 0, -(trendWindowDays - 1))
	windowStartKey := validator.DateKey(windowStart)
	nowKey := validator.DateKey(now)
	dailyHours := make(map[string]decimal.Decimal, trendWindowDays)

	for _, a := range snap.Attendances {
		w := agg(a.WorkerID)
		if a.Status != attendance.StatusPresent {
			continue
		}
		key := validator.DateKey(a.Date)
		if a.IsSettled {
			w.settledWages = w.settledWages.Add(a.Total)
			w.settledHours = w.settledHours.Add(a.HoursWorked)
		} else {
			w.pendingAttendance = w.pendingAttendance.Add(a.Total)
		}
		if key >= windowStartKey && key <= nowKey {
			w.presentDays[key] = true
			if cur, ok := dailyHours[key]; ok {
				dailyHours[key] = cur.Add(a.HoursWorked)
			} else {
				dailyHours[key] = a.HoursWorked
			}
		}
	}

	for _, a := range snap.Advances {
		w := agg(a.WorkerID)
		w.totalAdvances = w.totalAdvances.Add(a.Amount)
		if !a.IsSettled {
			w.pendingAdvances = w.pendingAdvances.Add(a.Amount)
		}
	}
	for _, e := range snap.Extras {
		w := agg(e.WorkerID)
		if !e.IsSettled {
			w.pendingExtras = w.pendingExtras.Add(e.Amount)
		}
	}

	lastSettled := make(map[string]time.Time)
	monthly := make(map[string]decimal.Decimal)
	for _, s := range snap.Settlements {
		if s.IsWalletOp() {
			continue
		}
		out.LifetimeSettledWages = out.LifetimeSettledWages.Add(s.AttendanceTotal)
		out.LifetimeAdvances = out.LifetimeAdvances.Add(s.AdvancesTotal)
		out.LifetimeExtras = out.LifetimeExtras.Add(s.ExtrasTotal)
		out.TotalSettledNet = out.TotalSettledNet.Add(s.NetAmount)

		month := validator.DateKey(s.EndDate)[:7]
		if cur, ok := monthly[month]; ok {
			monthly[month] = cur.Add(s.AttendanceTotal)
		} else {
			monthly[month] = s.AttendanceTotal
		}

		if prev, ok := lastSettled[s.WorkerID]; !ok || s.EndDate.After(prev) {
			lastSettled[s.WorkerID] = s.EndDate
		}
	}

	overdueCutoff := validator.TruncateToDate(now).AddDate(0, 0, -trendWindowDays)
	thirty := decimal.NewFromInt(trendWindowDays)
	hundred := decimal.NewFromInt(100)

	for _, w := range snap.Workers {
		a, ok := aggs[w.ID]
		if !ok {
			a = agg(w.ID)
		}

		netPending := a.pendingAttendance.Sub(a.pendingAdvances).Sub(a.pendingExtras)
		out.PendingTotal = out.PendingTotal.Add(netPending)
		out.PendingByWorker = append(out.PendingByWorker, WorkerPending{
			WorkerID:        w.ID,
			Name:            w.Name,
			AttendanceTotal: a.pendingAttendance,
			AdvancesTotal:   a.pendingAdvances,
			ExtrasTotal:     a.pendingExtras,
			NetPending:      netPending,
		})

		daysPresent := len(a.presentDays)
		out.Reliability = append(out.Reliability, WorkerReliability{
			WorkerID:    w.ID,
			Name:        w.Name,
			DaysPresent: daysPresent,
			Percent:     decimal.NewFromInt(int64(daysPresent)).Div(thirty).Mul(hundred).Round(2),
		})

		denominator := a.pendingAttendance.Add(a.settledWages)
		ratio := decimal.Zero
		if denominator.IsPositive() {
			ratio = a.totalAdvances.Div(denominator).Round(2)
		}
		out.AdvanceHeavy = append(out.AdvanceHeavy, WorkerAdvanceRatio{
			WorkerID: w.ID,
			Name:     w.Name,
			Ratio:    ratio,
		})

		if netPending.IsPositive() {
			last, hasSettlement := lastSettled[w.ID]
			if !hasSettlement || last.Before(overdueCutoff) {
				ow := OverdueWorker{WorkerID: w.ID, Name: w.Name, NetPending: netPending}
				if hasSettlement {
					key := validator.DateKey(last)
					ow.LastSettlementDate = &key
				}
				out.OverdueWorkers = append(out.OverdueWorkers, ow)
			}
		}
	}

	for month, total := range monthly {
		out.MonthlyWageTrend = append(out.MonthlyWageTrend, MonthlyWage{Month: month, Total: total})
	}
	sort.Slice(out.MonthlyWageTrend, func(i, j int) bool {
		return out.MonthlyWageTrend[i].Month < out.MonthlyWageTrend[j].Month
	})

	out.TopWorkersByWages = topWorkers(snap.Workers, func(id string) decimal.Decimal {
		if a, ok := aggs[id]; ok {
			return a.settledWages
		}
		return decimal.Zero
	})
	out.TopWorkersByHours = topWorkers(snap.Workers, func(id string) decimal.Decimal {
		if a, ok := aggs[id]; ok {
			return a.settledHours
		}
		return decimal.Zero
	})

	for d := 0; d < trendWindowDays; d++ {
		key := validator.DateKey(windowStart.AddDate(0, 0, d))
		hours, ok := dailyHours[key]
		if !ok {
			hours = decimal.Zero
		}
		out.DailyHoursTrend = append(out.DailyHoursTrend, DailyHours{Date: key, Hours: hours})
	}

	return out
}

func topWorkers(workers []worker.Worker, value func(id string) decimal.Decimal) []TopWorker {
	ranked := make([]TopWorker, 0, len(workers))
	for _, w := range workers {
		v := value(w.ID)
		if v.IsPositive() {
			ranked = append(ranked, TopWorker{WorkerID: w.ID, Name: w.Name, Value: v})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})
	if len(ranked) > topWorkersLimit {
		ranked = ranked[:topWorkersLimit]
	}
	return ranked
}
