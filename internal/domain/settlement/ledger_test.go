package settlement

import (
	"testing"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLedger(t *testing.T) {
	attendances := []attendance.Attendance{
		{ID: "a1", Date: day(2), Status: attendance.StatusPresent, HoursWorked: decimal.RequireFromString("7.5"), Total: decimal.NewFromInt(375)},
		{ID: "a2", Date: day(4), Status: attendance.StatusAbsent, Note: "sick"},
	}
	advances := []advance.Advance{
		{ID: "v1", Date: day(3), Amount: decimal.NewFromInt(100)},
	}
	extras := []extra.Extra{
		{ID: "e1", Date: day(5), Item: "Diesel", Amount: decimal.NewFromInt(40)},
	}
	settlements := []Settlement{
		{ID: "s1", EndDate: day(1), NetAmount: decimal.NewFromInt(500), CreatedAt: day(1).Add(18 * time.Hour)},
		{ID: "s2", EndDate: day(6), NetAmount: decimal.NewFromInt(-75), CreatedAt: day(6).Add(9 * time.Hour)},
	}

	txns := BuildLedger(attendances, advances, extras, settlements)

	require.Len(t, txns, 6)

	// newest first
	ids := make([]string, 0, len(txns))
	for _, tx := range txns {
		ids = append(ids, tx.ID)
	}
	assert.Equal(t, []string{"s2", "e1", "a2", "v1", "a1", "s1"}, ids)

	byID := make(map[string]Transaction, len(txns))
	for _, tx := range txns {
		byID[tx.ID] = tx
	}

	assert.Equal(t, DirectionIn, byID["a1"].Direction)
	assert.Equal(t, "7.5 hr worked", byID["a1"].Label)
	assert.Equal(t, "sick", byID["a2"].Label)
	assert.Equal(t, DirectionOut, byID["v1"].Direction)
	assert.Equal(t, "Advance paid", byID["v1"].Label)
	assert.Equal(t, DirectionOut, byID["e1"].Direction)
	assert.Equal(t, "Diesel given", byID["e1"].Label)

	// positive net pays the worker, negative net flows back
	assert.Equal(t, DirectionOut, byID["s1"].Direction)
	assert.True(t, byID["s1"].Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, DirectionIn, byID["s2"].Direction)
	assert.True(t, byID["s2"].Amount.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, "Settlement", byID["s1"].Label)
}

func TestAttendanceLabel(t *testing.T) {
	assert.Equal(t, "harvest help", attendanceLabel(attendance.Attendance{Note: "harvest help", HoursWorked: decimal.NewFromInt(5)}))
	assert.Equal(t, "5 hr worked", attendanceLabel(attendance.Attendance{HoursWorked: decimal.NewFromInt(5)}))
	assert.Equal(t, "Attendance added", attendanceLabel(attendance.Attendance{HoursWorked: decimal.Zero}))
}
