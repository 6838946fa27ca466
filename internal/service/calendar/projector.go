package calendar

import (
	"time"

	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/calendar"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

// Project lays period out on a fixed 6x7 grid starting at the most recent weekStart
// on or before the first of the month. Marks are looked up by date; the caller
// passes the marks of a single worker.
func Project(period dateutil.Period, marks []attendance.Mark, weekStart time.Weekday) calendar.Grid {
	statuses := make(map[string]attendance.Status, len(marks))
	for _, m := range marks {
		statuses[dateutil.Format(m.Date)] = m.Status
	}

	first, _ := period.Bounds()
	cursor := dateutil.WeekStart(first, weekStart)

	grid := calendar.Grid{
		Month:     period.Month,
		Year:      period.Year,
		WeekStart: weekStart.String(),
	}
	for w := 0; w < calendar.Weeks; w++ {
		for d := 0; d < calendar.DaysPerWeek; d++ {
			key := dateutil.Format(cursor)
			cell := calendar.Cell{
				Date:           key,
				Day:            cursor.Day(),
				IsCurrentMonth: period.Contains(cursor),
			}
			if status, ok := statuses[key]; ok {
				cell.Status = &status
			}
			grid.Weeks[w][d] = cell
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return grid
}
