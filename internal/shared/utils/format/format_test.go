package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{5000000, "₦50,000"},
		{10000000, "₦100,000"},
		{100, "₦1"},
		{0, "₦0"},
		{5000050, "₦50,001"}, // sub-unit remainders round to nearest
		{99, "₦1"},
		{49, "₦0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.minor))
	}
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(5000000), ToMinorUnits(50000))
	assert.Equal(t, int64(150), ToMinorUnits(1.5))
	assert.Equal(t, int64(1), ToMinorUnits(0.005)) // rounds to nearest
	assert.Equal(t, int64(0), ToMinorUnits(0))
}

func TestMoneyRoundTrip(t *testing.T) {
	// Round-trip holds for amounts divisible by 100 kobo.
	for _, minor := range []int64{0, 100, 5000, 5000000, 123456700} {
		assert.Equal(t, minor, ToMinorUnits(ToMajorUnits(minor)))
	}
}

func TestDateFormatting(t *testing.T) {
	assert.Equal(t, "January 15, 2025", Date("2025-01-15T18:30:00Z"))
	assert.Equal(t, "Jan 15, 2025", CardDate("2025-01-15T18:30:00Z"))
	assert.Equal(t, "January 15, 2025 6:30 PM", DateTime("2025-01-15T18:30:00Z"))
	assert.Equal(t, "March 1, 2026", Date("2026-03-01"))
}

func TestSetLayouts(t *testing.T) {
	defer SetLayouts("January 2, 2006", "January 2, 2006 3:04 PM")

	SetLayouts("2006-01-02", "02 Jan 2006 15:04")
	assert.Equal(t, "2025-01-15", Date("2025-01-15T18:30:00Z"))
	assert.Equal(t, "15 Jan 2025 18:30", DateTime("2025-01-15T18:30:00Z"))

	// Empty arguments keep the current layouts.
	SetLayouts("", "")
	assert.Equal(t, "2025-01-15", Date("2025-01-15T18:30:00Z"))
}

func TestDateFailSoft(t *testing.T) {
	// Unparseable input comes back unchanged, never panics.
	assert.Equal(t, "not-a-date", Date("not-a-date"))
	assert.Equal(t, "", DateTime(""))
	assert.Equal(t, "15/01/2025", CardDate("15/01/2025"))
}
