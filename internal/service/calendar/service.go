package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/calendar"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

type calendarServiceImpl struct {
	store     attendance.AttendanceStore
	workers   worker.WorkerService
	weekStart time.Weekday
}

func NewCalendarService(store attendance.AttendanceStore, workers worker.WorkerService, weekStart time.Weekday) calendar.CalendarService {
	return &calendarServiceImpl{
		store:     store,
		workers:   workers,
		weekStart: weekStart,
	}
}

// WorkerCalendar implements calendar.CalendarService.
func (s *calendarServiceImpl) WorkerCalendar(ctx context.Context, workerID string, period dateutil.Period) (calendar.Grid, error) {
	if err := period.Validate(); err != nil {
		return calendar.Grid{}, err
	}
	if _, err := s.workers.Get(ctx, workerID); err != nil {
		return calendar.Grid{}, err
	}

	// The grid spills into the neighbouring months, so load the whole history
	// rather than the single month.
	marks, err := s.store.QueryAttendance(ctx, workerID, nil)
	if err != nil {
		return calendar.Grid{}, fmt.Errorf("failed to query attendance: %w", err)
	}

	return Project(period, marks, s.weekStart), nil
}
