package settlement

import (
	"fmt"
	"sort"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionAttendance TransactionType = "attendance"
	TransactionAdvance    TransactionType = "advance"
	TransactionExtra      TransactionType = "extra"
	TransactionSettlement TransactionType = "settlement"
)

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Transaction is one display row of a worker's unified ledger feed.
type Transaction struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	Direction Direction       `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	Label     string          `json:"label"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// BuildLedger merges a worker's entries and settlements into one feed,
// newest first. Attendance counts toward the worker (in), advances and
// extras against (out), settlements follow the sign of their net amount.
// Entry rows order by their calendar date, settlement rows by creation time.
func BuildLedger(attendances []attendance.Attendance, advances []advance.Advance, extras []extra.Extra, settlements []Settlement) []Transaction {
	txns := make([]Transaction, 0, len(attendances)+len(advances)+len(extras)+len(settlements))

	for _, a := range attendances {
		txns = append(txns, Transaction{
			ID:        a.ID,
			Type:      TransactionAttendance,
			Direction: DirectionIn,
			Amount:    a.Total,
			Label:     attendanceLabel(a),
			Date:      validator.DateKey(a.Date),
			CreatedAt: a.Date,
		})
	}
	for _, a := range advances {
		txns = append(txns, Transaction{
			ID:        a.ID,
			Type:      TransactionAdvance,
			Direction: DirectionOut,
			Amount:    a.Amount,
			Label:     "Advance paid",
			Date:      validator.DateKey(a.Date),
			CreatedAt: a.Date,
		})
	}
	for _, e := range extras {
		txns = append(txns, Transaction{
			ID:        e.ID,
			Type:      TransactionExtra,
			Direction: DirectionOut,
			Amount:    e.Amount,
			Label:     fmt.Sprintf("%s given", e.Item),
			Date:      validator.DateKey(e.Date),
			CreatedAt: e.Date,
		})
	}
	for _, s := range settlements {
		direction := DirectionOut
		if s.NetAmount.IsNegative() {
			direction = DirectionIn
		}
		txns = append(txns, Transaction{
			ID:        s.ID,
			Type:      TransactionSettlement,
			Direction: direction,
			Amount:    s.NetAmount.Abs(),
			Label:     "Settlement",
			Date:      validator.DateKey(s.EndDate),
			CreatedAt: s.CreatedAt,
		})
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].CreatedAt.After(txns[j].CreatedAt)
	})
	return txns
}

func attendanceLabel(a attendance.Attendance) string {
	if a.Note != "" {
		return a.Note
	}
	if a.HoursWorked.IsPositive() {
		return fmt.Sprintf("%s hr worked", a.HoursWorked.String())
	}
	return "Attendance added"
}
