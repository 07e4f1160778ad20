package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestComputeWage(t *testing.T) {
	t.Run("standard day with rest", func(t *testing.T) {
		hours, total, err := ComputeWage(at(9, 0), at(17, 0), 30, 0, decimal.NewFromInt(50))

		require.NoError(t, err)
		assert.Equal(t, "7.5", hours.String())
		assert.Equal(t, "375", total.String())
	})

	t.Run("missing minutes reduce the total", func(t *testing.T) {
		hours, total, err := ComputeWage(at(8, 0), at(12, 0), 0, 20, decimal.NewFromInt(60))

		require.NoError(t, err)
		assert.True(t, hours.Equal(decimal.RequireFromString("3.67")))
		assert.True(t, total.Equal(decimal.RequireFromString("220.2")))
	})

	t.Run("hours round before the total does", func(t *testing.T) {
		// 100 minutes at 99/hr: 1.67 * 99 = 165.33, not round2(100/60*99) = 165
		hours, total, err := ComputeWage(at(9, 0), at(10, 40), 0, 0, decimal.NewFromInt(99))

		require.NoError(t, err)
		assert.True(t, hours.Equal(decimal.RequireFromString("1.67")))
		assert.True(t, total.Equal(decimal.RequireFromString("165.33")))
	})

	t.Run("end before start", func(t *testing.T) {
		_, _, err := ComputeWage(at(17, 0), at(9, 0), 0, 0, decimal.NewFromInt(50))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, _, err := ComputeWage(at(9, 0), at(9, 0), 0, 0, decimal.NewFromInt(50))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("deductions exceed worked interval", func(t *testing.T) {
		_, _, err := ComputeWage(at(9, 0), at(10, 0), 45, 30, decimal.NewFromInt(50))
		assert.ErrorIs(t, err, ErrInvalidWorkCalculation)
	})

	t.Run("deductions exactly consume the interval", func(t *testing.T) {
		hours, total, err := ComputeWage(at(9, 0), at(10, 0), 60, 0, decimal.NewFromInt(50))

		require.NoError(t, err)
		assert.True(t, hours.IsZero())
		assert.True(t, total.IsZero())
	})
}

func TestComputeSegments(t *testing.T) {
	start := at(6, 0)
	end := at(9, 0)

	t.Run("mixed time and hours segments", func(t *testing.T) {
		hrs := decimal.RequireFromString("2.5")
		segments, hours, total, err := ComputeSegments([]SegmentInput{
			{StartTime: &start, EndTime: &end, Rate: decimal.NewFromInt(40)},
			{HoursWorked: &hrs, Rate: decimal.NewFromInt(60)},
		})

		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, SegmentModeTime, segments[0].Mode)
		assert.True(t, segments[0].HoursWorked.Equal(decimal.NewFromInt(3)))
		assert.True(t, segments[0].Total.Equal(decimal.NewFromInt(120)))
		assert.Equal(t, SegmentModeHours, segments[1].Mode)
		assert.True(t, segments[1].Total.Equal(decimal.NewFromInt(150)))
		assert.True(t, hours.Equal(decimal.RequireFromString("5.5")))
		assert.True(t, total.Equal(decimal.NewFromInt(270)))
	})

	t.Run("segment with both sources", func(t *testing.T) {
		hrs := decimal.NewFromInt(2)
		_, _, _, err := ComputeSegments([]SegmentInput{
			{StartTime: &start, EndTime: &end, HoursWorked: &hrs, Rate: decimal.NewFromInt(40)},
		})
		assert.ErrorIs(t, err, ErrInvalidSegment)
	})

	t.Run("segment with no source", func(t *testing.T) {
		_, _, _, err := ComputeSegments([]SegmentInput{
			{Rate: decimal.NewFromInt(40)},
		})
		assert.ErrorIs(t, err, ErrInvalidSegment)
	})

	t.Run("segment with inverted times", func(t *testing.T) {
		_, _, _, err := ComputeSegments([]SegmentInput{
			{StartTime: &end, EndTime: &start, Rate: decimal.NewFromInt(40)},
		})
		assert.ErrorIs(t, err, ErrInvalidSegment)
	})

	t.Run("segment with non-positive hours", func(t *testing.T) {
		zero := decimal.Zero
		_, _, _, err := ComputeSegments([]SegmentInput{
			{HoursWorked: &zero, Rate: decimal.NewFromInt(40)},
		})
		assert.ErrorIs(t, err, ErrInvalidSegment)
	})
}
