package calendar

import (
	"context"

	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

type CalendarService interface {
	// WorkerCalendar projects the worker's attendance onto the month grid.
	WorkerCalendar(ctx context.Context, workerID string, period dateutil.Period) (Grid, error)
}
