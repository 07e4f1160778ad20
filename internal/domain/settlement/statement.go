package settlement

import (
	"fmt"
	"sort"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// StatementRow is one line of the month-wise statement. Settled rows are
// shown for context but carry no running balance and stay out of the totals.
type StatementRow struct {
	ID             string           `json:"id"`
	Type           TransactionType  `json:"type"`
	Date           string           `json:"date"`
	Label          string           `json:"label"`
	Credit         *decimal.Decimal `json:"credit,omitempty"`
	Debit          *decimal.Decimal `json:"debit,omitempty"`
	HoursWorked    *decimal.Decimal `json:"hours_worked,omitempty"`
	Rate           *decimal.Decimal `json:"rate,omitempty"`
	Settled        bool             `json:"settled"`
	RunningBalance *decimal.Decimal `json:"running_balance,omitempty"`
}

// StatementTotals is the statement footer, computed over unsettled rows only.
type StatementTotals struct {
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	NetPayable   decimal.Decimal `json:"net_payable"`
}

// BuildStatement merges a window of entries into date-ascending statement
// rows with a running balance over the unsettled rows.
func BuildStatement(attendances []attendance.Attendance, advances []advance.Advance, extras []extra.Extra) ([]StatementRow, StatementTotals) {
	rows := make([]StatementRow, 0, len(attendances)+len(advances)+len(extras))

	for _, a := range attendances {
		row := StatementRow{
			ID:      a.ID,
			Type:    TransactionAttendance,
			Date:    validator.DateKey(a.Date),
			Label:   attendanceLabel(a),
			Settled: a.IsSettled,
		}
		if a.Status == attendance.StatusPresent {
			credit := a.Total
			hours := a.HoursWorked
			row.Credit = &credit
			row.HoursWorked = &hours
			row.Rate = a.Rate
		}
		rows = append(rows, row)
	}
	for _, a := range advances {
		debit := a.Amount
		rows = append(rows, StatementRow{
			ID:      a.ID,
			Type:    TransactionAdvance,
			Date:    validator.DateKey(a.Date),
			Label:   "Advance paid",
			Debit:   &debit,
			Settled: a.IsSettled,
		})
	}
	for _, e := range extras {
		debit := e.Amount
		rows = append(rows, StatementRow{
			ID:      e.ID,
			Type:    TransactionExtra,
			Date:    validator.DateKey(e.Date),
			Label:   fmt.Sprintf("%s given", e.Item),
			Debit:   &debit,
			Settled: e.IsSettled,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	totals := StatementTotals{
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
	}
	running := decimal.Zero
	for i := range rows {
		if rows[i].Settled {
			continue
		}
		if rows[i].Credit != nil {
			totals.TotalCredits = totals.TotalCredits.Add(*rows[i].Credit)
			running = running.Add(*rows[i].Credit)
		}
		if rows[i].Debit != nil {
			totals.TotalDebits = totals.TotalDebits.Add(*rows[i].Debit)
			running = running.Sub(*rows[i].Debit)
		}
		balance := running
		rows[i].RunningBalance = &balance
	}
	totals.NetPayable = totals.TotalCredits.Sub(totals.TotalDebits)

	return rows, totals
}
