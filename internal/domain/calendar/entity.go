package calendar

import "github.com/sitebook/sitebook-backend/internal/domain/attendance"

const (
	Weeks       = 6
	DaysPerWeek = 7
)

// Cell is one date in the grid. Status is nil when the date is unmarked.
type Cell struct {
	Date           string             `json:"date"`
	Day            int                `json:"day"`
	IsCurrentMonth bool               `json:"is_current_month"`
	Status         *attendance.Status `json:"status"`
}

// Grid is a fixed 6x7 week-aligned view of one month. Leading and trailing
// cells belong to the neighbouring months.
type Grid struct {
	Month     int                      `json:"month"`
	Year      int                      `json:"year"`
	WeekStart string                   `json:"week_start"`
	Weeks     [Weeks][DaysPerWeek]Cell `json:"weeks"`
}

// Cells returns the grid in row-major order.
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, Weeks*DaysPerWeek)
	for _, week := range g.Weeks {
		out = append(out, week[:]...)
	}
	return out
}
