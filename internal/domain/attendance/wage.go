package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// ComputeWage derives hours worked and the amount owed for a single-segment
// day. Rounding happens twice on purpose, first on the hours and again on the
// total, to stay numerically identical to the data already in production.
func ComputeWage(start, end time.Time, restMinutes, missingMinutes int, rate decimal.Decimal) (hoursWorked, total decimal.Decimal, err error) {
	if !end.After(start) {
		return decimal.Zero, decimal.Zero, ErrInvalidTimeRange
	}

	workedMinutes := decimal.NewFromInt(int64(end.Sub(start) / time.Second)).Div(sixty)
	effectiveMinutes := workedMinutes.
		Sub(decimal.NewFromInt(int64(restMinutes))).
		Sub(decimal.NewFromInt(int64(missingMinutes)))
	if effectiveMinutes.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrInvalidWorkCalculation
	}

	hoursWorked = effectiveMinutes.Div(sixty).Round(2)
	total = hoursWorked.Mul(rate).Round(2)
	return hoursWorked, total, nil
}

// SegmentInput is the raw caller-supplied shape of one split-shift segment.
// Exactly one of HoursWorked or the StartTime/EndTime pair must be set.
type SegmentInput struct {
	StartTime   *time.Time
	EndTime     *time.Time
	HoursWorked *decimal.Decimal
	Rate        decimal.Decimal
}

// ComputeSegments derives each segment independently and sums them into the
// parent hours/total. Rest and missing minutes never apply to segments, only
// the single-segment path subtracts them.
func ComputeSegments(inputs []SegmentInput) (segments []Segment, hoursWorked, total decimal.Decimal, err error) {
	hoursWorked = decimal.Zero
	total = decimal.Zero

	for _, in := range inputs {
		hasHours := in.HoursWorked != nil
		hasTimes := in.StartTime != nil && in.EndTime != nil

		if hasHours == hasTimes {
			// neither source, or both: ambiguous derivation
			return nil, decimal.Zero, decimal.Zero, ErrInvalidSegment
		}

		seg := Segment{Rate: in.Rate}

		if hasHours {
			if !in.HoursWorked.IsPositive() {
				return nil, decimal.Zero, decimal.Zero, ErrInvalidSegment
			}
			seg.Mode = SegmentModeHours
			seg.HoursWorked = in.HoursWorked.Round(2)
		} else {
			if !in.EndTime.After(*in.StartTime) {
				return nil, decimal.Zero, decimal.Zero, ErrInvalidSegment
			}
			seg.Mode = SegmentModeTime
			seg.StartTime = in.StartTime
			seg.EndTime = in.EndTime
			minutes := decimal.NewFromInt(int64(in.EndTime.Sub(*in.StartTime) / time.Second)).Div(sixty)
			seg.HoursWorked = minutes.Div(sixty).Round(2)
		}

		seg.Total = seg.HoursWorked.Mul(seg.Rate).Round(2)

		segments = append(segments, seg)
		hoursWorked = hoursWorked.Add(seg.HoursWorked)
		total = total.Add(seg.Total)
	}

	return segments, hoursWorked, total, nil
}
