package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("note"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("farmer@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.domain.in"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-01-03")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 3, d.Day())

	_, ok = IsValidDate("03-01-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestDateKey(t *testing.T) {
	morning := time.Date(2025, 11, 15, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 11, 15, 17, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-11-15", DateKey(morning))
	assert.Equal(t, DateKey(morning), DateKey(evening))
}

func TestDateKeyOrdering(t *testing.T) {
	// Fixed-width keys sort lexicographically in chronological order.
	earlier := DateKey(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC))
	later := DateKey(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.Less(t, earlier, later)
}

func TestTruncateToDate(t *testing.T) {
	ts := time.Date(2024, 5, 20, 18, 45, 12, 999, time.UTC)
	got := TruncateToDate(ts)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), got)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "must be positive"},
		{Field: "date", Message: "is required"},
	}

	assert.Equal(t, "amount: must be positive; date: is required", errs.Error())
	assert.Equal(t, map[string]string{
		"amount": "must be positive",
		"date":   "is required",
	}, errs.ToMap())
}
