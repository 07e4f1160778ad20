package settlement

import (
	"testing"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStatement(t *testing.T) {
	rate := decimal.NewFromInt(50)
	attendances := []attendance.Attendance{
		{ID: "a1", Date: day(1), Status: attendance.StatusPresent, HoursWorked: decimal.NewFromInt(8), Total: decimal.NewFromInt(400), Rate: &rate, IsSettled: true},
		{ID: "a2", Date: day(3), Status: attendance.StatusPresent, HoursWorked: decimal.NewFromInt(6), Total: decimal.NewFromInt(300), Rate: &rate},
		{ID: "a3", Date: day(5), Status: attendance.StatusAbsent, Note: "festival"},
	}
	advances := []advance.Advance{
		{ID: "v1", Date: day(4), Amount: decimal.NewFromInt(100)},
	}
	extras := []extra.Extra{
		{ID: "e1", Date: day(2), Item: "Seeds", Amount: decimal.NewFromInt(60), IsSettled: true},
	}

	rows, totals := BuildStatement(attendances, advances, extras)

	require.Len(t, rows, 5)

	// ascending by date
	assert.Equal(t, []string{"a1", "e1", "a2", "v1", "a3"}, []string{rows[0].ID, rows[1].ID, rows[2].ID, rows[3].ID, rows[4].ID})

	// settled rows show but never carry a balance
	assert.True(t, rows[0].Settled)
	assert.Nil(t, rows[0].RunningBalance)
	assert.True(t, rows[1].Settled)
	assert.Nil(t, rows[1].RunningBalance)

	// running balance over unsettled rows only
	require.NotNil(t, rows[2].RunningBalance)
	assert.True(t, rows[2].RunningBalance.Equal(decimal.NewFromInt(300)))
	require.NotNil(t, rows[3].RunningBalance)
	assert.True(t, rows[3].RunningBalance.Equal(decimal.NewFromInt(200)))

	// absent day: no credit, no debit, balance unchanged
	assert.Nil(t, rows[4].Credit)
	assert.Nil(t, rows[4].Debit)
	require.NotNil(t, rows[4].RunningBalance)
	assert.True(t, rows[4].RunningBalance.Equal(decimal.NewFromInt(200)))

	require.NotNil(t, rows[2].HoursWorked)
	assert.True(t, rows[2].HoursWorked.Equal(decimal.NewFromInt(6)))
	require.NotNil(t, rows[2].Rate)

	assert.True(t, totals.TotalCredits.Equal(decimal.NewFromInt(300)))
	assert.True(t, totals.TotalDebits.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.NetPayable.Equal(decimal.NewFromInt(200)))
}

func TestBuildStatementEmpty(t *testing.T) {
	rows, totals := BuildStatement(nil, nil, nil)

	assert.Empty(t, rows)
	assert.True(t, totals.TotalCredits.IsZero())
	assert.True(t, totals.TotalDebits.IsZero())
	assert.True(t, totals.NetPayable.IsZero())
}
