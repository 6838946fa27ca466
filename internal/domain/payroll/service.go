package payroll

import (
	"context"

	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

type PayrollService interface {
	// WorkerSummary reconciles one worker's attendance and payments for a month.
	WorkerSummary(ctx context.Context, workerID string, period dateutil.Period) (WorkerSummaryResponse, error)

	// MonthlySummaries returns one summary per worker plus totals.
	MonthlySummaries(ctx context.Context, period dateutil.Period) (MonthlyPayrollResponse, error)
}
