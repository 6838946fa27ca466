package dateutil

import (
	"testing"
	"time"

	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		month, year int
		want        int
	}{
		{2, 2024, 29},
		{2, 2023, 28},
		{2, 1900, 28},
		{2, 2000, 29},
		{1, 2025, 31},
		{4, 2025, 30},
		{12, 2025, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.month, c.year); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.month, c.year, got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), d)

	invalid := []string{"", "2025-13-01", "2025-02-30", "05-01-2025", "2025/01/05"}
	for _, s := range invalid {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2, 2024)
	assert.Equal(t, "2024-02-01", Format(first))
	assert.Equal(t, "2024-02-29", Format(last))
}

func TestWeekStart(t *testing.T) {
	// 2025-01-01 is a Wednesday.
	d, _ := Parse("2025-01-01")
	assert.Equal(t, "2024-12-29", Format(WeekStart(d, time.Sunday)))
	assert.Equal(t, "2024-12-30", Format(WeekStart(d, time.Monday)))
	assert.Equal(t, "2025-01-01", Format(WeekStart(d, time.Wednesday)))
}

func TestParseWeekday(t *testing.T) {
	assert.Equal(t, time.Monday, ParseWeekday("monday"))
	assert.Equal(t, time.Monday, ParseWeekday("Mon"))
	assert.Equal(t, time.Saturday, ParseWeekday("SATURDAY"))
	assert.Equal(t, time.Sunday, ParseWeekday("bogus"))
}

func TestValidMonth(t *testing.T) {
	assert.True(t, ValidMonth(1, 2025))
	assert.False(t, ValidMonth(0, 2025))
	assert.False(t, ValidMonth(13, 2025))
	assert.False(t, ValidMonth(5, 25))
}

func TestPeriodContains(t *testing.T) {
	p := NewPeriod(1, 2025)
	in, _ := Parse("2025-01-31")
	out, _ := Parse("2025-02-01")
	assert.True(t, p.Contains(in))
	assert.False(t, p.Contains(out))

	var all *Period
	assert.True(t, all.Contains(out))
}

func TestPeriodFormatting(t *testing.T) {
	p := NewPeriod(1, 2025)
	assert.Equal(t, "2025-01", p.String())
	assert.Equal(t, "January 2025", p.Label())
	assert.Equal(t, 31, p.Days())
	assert.Equal(t, p, PeriodOf(time.Date(2025, 1, 17, 10, 0, 0, 0, time.UTC)))
}

func TestPeriodValidate(t *testing.T) {
	assert.NoError(t, NewPeriod(2, 2024).Validate())

	err := NewPeriod(13, 24).Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
