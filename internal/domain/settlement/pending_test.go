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

func day(d int) time.Time {
	return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarizePending(t *testing.T) {
	t.Run("totals and suggested range", func(t *testing.T) {
		attendances := []attendance.Attendance{
			{ID: "a1", Date: day(3), Status: attendance.StatusPresent, HoursWorked: decimal.RequireFromString("7.5"), Total: decimal.NewFromInt(375)},
			{ID: "a2", Date: day(5), Status: attendance.StatusAbsent, Note: "sick"},
			{ID: "a3", Date: day(8), Status: attendance.StatusPresent, HoursWorked: decimal.NewFromInt(4), Total: decimal.NewFromInt(200)},
		}
		advances := []advance.Advance{
			{ID: "v1", Date: day(6), Amount: decimal.NewFromInt(100)},
		}
		extras := []extra.Extra{
			{ID: "e1", Date: day(2), Item: "Fertilizer", Amount: decimal.NewFromInt(50)},
		}

		s := SummarizePending(attendances, advances, extras)

		assert.True(t, s.AttendanceTotal.Equal(decimal.NewFromInt(575)))
		assert.True(t, s.AdvancesTotal.Equal(decimal.NewFromInt(100)))
		assert.True(t, s.ExtrasTotal.Equal(decimal.NewFromInt(50)))
		assert.True(t, s.NetPending.Equal(decimal.NewFromInt(425)))
		assert.True(t, s.HoursWorked.Equal(decimal.RequireFromString("11.5")))
		assert.Equal(t, 3, s.AttendanceCount)
		assert.Equal(t, 1, s.AdvancesCount)
		assert.Equal(t, 1, s.ExtrasCount)
		require.NotNil(t, s.SuggestedStartDate)
		require.NotNil(t, s.SuggestedEndDate)
		assert.Equal(t, "2025-04-02", *s.SuggestedStartDate)
		assert.Equal(t, "2025-04-08", *s.SuggestedEndDate)
	})

	t.Run("absent days contribute dates but no money", func(t *testing.T) {
		s := SummarizePending([]attendance.Attendance{
			{ID: "a1", Date: day(1), Status: attendance.StatusAbsent, Note: "rain"},
		}, nil, nil)

		assert.True(t, s.AttendanceTotal.IsZero())
		assert.Equal(t, 1, s.AttendanceCount)
		require.NotNil(t, s.SuggestedStartDate)
		assert.Equal(t, "2025-04-01", *s.SuggestedStartDate)
	})

	t.Run("net pending can be negative", func(t *testing.T) {
		s := SummarizePending(nil, []advance.Advance{
			{ID: "v1", Date: day(4), Amount: decimal.NewFromInt(300)},
		}, nil)

		assert.True(t, s.NetPending.Equal(decimal.NewFromInt(-300)))
	})

	t.Run("empty input yields nil range", func(t *testing.T) {
		s := SummarizePending(nil, nil, nil)

		assert.True(t, s.NetPending.IsZero())
		assert.Nil(t, s.SuggestedStartDate)
		assert.Nil(t, s.SuggestedEndDate)
	})
}
