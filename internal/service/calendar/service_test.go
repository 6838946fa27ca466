package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
	"github.com/sitebook/sitebook-backend/internal/repository/memory"
	attendancesvc "github.com/sitebook/sitebook-backend/internal/service/attendance"
	workersvc "github.com/sitebook/sitebook-backend/internal/service/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerCalendar(t *testing.T) {
	repos := memory.NewRepositories(memory.NewDB())
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "owner-1"})

	w, err := repos.Workers.Create(ctx, worker.Worker{UserID: "owner-1", Name: "Ravi"})
	require.NoError(t, err)

	store := attendancesvc.NewAttendanceStore(repos.Attendance, repos.Payments)
	for date, status := range map[string]attendance.Status{
		"2024-12-30": attendance.StatusPresent,
		"2025-01-02": attendance.StatusAbsent,
	} {
		_, err := store.MarkAttendance(ctx, attendance.MarkAttendanceRequest{WorkerID: w.ID, Date: date, Status: string(status)})
		require.NoError(t, err)
	}

	svc := NewCalendarService(store, workersvc.NewWorkerService(repos.Workers, store, nil), time.Monday)

	grid, err := svc.WorkerCalendar(ctx, w.ID, dateutil.NewPeriod(1, 2025))
	require.NoError(t, err)
	assert.Equal(t, "Monday", grid.WeekStart)

	first := grid.Weeks[0][0]
	assert.Equal(t, "2024-12-30", first.Date)
	assert.False(t, first.IsCurrentMonth)
	require.NotNil(t, first.Status)
	assert.Equal(t, attendance.StatusPresent, *first.Status)

	jan2 := grid.Weeks[0][3]
	assert.Equal(t, "2025-01-02", jan2.Date)
	require.NotNil(t, jan2.Status)
	assert.Equal(t, attendance.StatusAbsent, *jan2.Status)

	_, err = svc.WorkerCalendar(ctx, "missing", dateutil.NewPeriod(1, 2025))
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	_, err = svc.WorkerCalendar(ctx, w.ID, dateutil.NewPeriod(13, 2025))
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
