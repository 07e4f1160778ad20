package insights

import "github.com/shopspring/decimal"

type WorkerPending struct {
	WorkerID        string          `json:"worker_id"`
	Name            string          `json:"name"`
	AttendanceTotal decimal.Decimal `json:"attendance_total"`
	AdvancesTotal   decimal.Decimal `json:"advances_total"`
	ExtrasTotal     decimal.Decimal `json:"extras_total"`
	NetPending      decimal.Decimal `json:"net_pending"`
}

type MonthlyWage struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type TopWorker struct {
	WorkerID string          `json:"worker_id"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
}

type DailyHours struct {
	Date  string          `json:"date"`
	Hours decimal.Decimal `json:"hours"`
}

type WorkerReliability struct {
	WorkerID    string          `json:"worker_id"`
	Name        string          `json:"name"`
	DaysPresent int             `json:"days_present"`
	Percent     decimal.Decimal `json:"percent"`
}

type WorkerAdvanceRatio struct {
	WorkerID string          `json:"worker_id"`
	Name     string          `json:"name"`
	Ratio    decimal.Decimal `json:"ratio"`
}

type OverdueWorker struct {
	WorkerID           string          `json:"worker_id"`
	Name               string          `json:"name"`
	NetPending         decimal.Decimal `json:"net_pending"`
	LastSettlementDate *string         `json:"last_settlement_date"`
}

// OverviewResponse is the farmer dashboard aggregate.
type OverviewResponse struct {
	TotalWorkers  int `json:"total_workers"`
	ActiveWorkers int `json:"active_workers"`

	PendingTotal    decimal.Decimal `json:"pending_total"`
	PendingByWorker []WorkerPending `json:"pending_by_worker"`

	LifetimeSettledWages decimal.Decimal `json:"lifetime_settled_wages"`
	LifetimeAdvances     decimal.Decimal `json:"lifetime_advances"`
	LifetimeExtras       decimal.Decimal `json:"lifetime_extras"`
	TotalSettledNet      decimal.Decimal `json:"total_settled_net"`

	MonthlyWageTrend  []MonthlyWage        `json:"monthly_wage_trend"`
	TopWorkersByWages []TopWorker          `json:"top_workers_by_wages"`
	TopWorkersByHours []TopWorker          `json:"top_workers_by_hours"`
	DailyHoursTrend   []DailyHours         `json:"daily_hours_trend"`
	Reliability       []WorkerReliability  `json:"reliability"`
	AdvanceHeavy      []WorkerAdvanceRatio `json:"advance_heavy"`
	OverdueWorkers    []OverdueWorker      `json:"overdue_workers"`
}
