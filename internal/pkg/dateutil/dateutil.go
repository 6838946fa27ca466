package dateutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
)

// Layout is the canonical calendar date format used on the wire and in storage.
const Layout = "2006-01-02"

// Parse parses a YYYY-MM-DD string into a UTC midnight time.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD using its own calendar fields.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Truncate drops the clock part and returns the same calendar day at UTC midnight.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidMonth reports whether month is 1..12 and year is a four digit year.
func ValidMonth(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 1000 && year <= 9999
}

// DaysInMonth returns the number of calendar days in the given month, leap years included.
func DaysInMonth(month, year int) int {
	// Day 0 of the next month normalises to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last calendar day of the month.
func MonthBounds(month, year int) (first, last time.Time) {
	first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last = time.Date(year, time.Month(month), DaysInMonth(month, year), 0, 0, 0, 0, time.UTC)
	return first, last
}

// InMonth reports whether t falls in the given month and year.
func InMonth(t time.Time, month, year int) bool {
	return t.Year() == year && int(t.Month()) == month
}

// WeekStart shifts t back to the most recent occurrence of start (t itself when it matches).
func WeekStart(t time.Time, start time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(start) + 7) % 7
	return t.AddDate(0, 0, -offset)
}

// ParseWeekday accepts a weekday name ("sunday", "Mon", ...) and falls back to Sunday.
func ParseWeekday(s string) time.Weekday {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return d
		}
	}
	return time.Sunday
}

// Period is a calendar month.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func NewPeriod(month, year int) Period {
	return Period{Month: month, Year: year}
}

// PeriodOf returns the month containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

func (p Period) Valid() bool {
	return ValidMonth(p.Month, p.Year)
}

// Validate reports an out-of-range month or year as validation errors.
func (p Period) Validate() error {
	var errs validator.ValidationErrors
	if p.Month < 1 || p.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if p.Year < 1000 || p.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four digit year",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Contains reports whether t falls in p. A nil period contains every date.
func (p *Period) Contains(t time.Time) bool {
	if p == nil {
		return true
	}
	return InMonth(t, p.Month, p.Year)
}

func (p Period) Days() int {
	return DaysInMonth(p.Month, p.Year)
}

func (p Period) Bounds() (first, last time.Time) {
	return MonthBounds(p.Month, p.Year)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Label renders the period the way reports title it, e.g. "January 2025".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", time.Month(p.Month), p.Year)
}
