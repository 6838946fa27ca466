package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/payroll"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
	"github.com/sitebook/sitebook-backend/internal/repository/memory"
	attendancesvc "github.com/sitebook/sitebook-backend/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payrollFixture struct {
	ctx     context.Context
	repos   memory.Repositories
	store   *attendancesvc.Store
	service payroll.PayrollService
	ravi    worker.Worker
}

func newPayrollFixture(t *testing.T, deductKinds ...payment.Kind) *payrollFixture {
	t.Helper()
	repos := memory.NewRepositories(memory.NewDB())
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "owner-1"})

	ravi, err := repos.Workers.Create(ctx, worker.Worker{UserID: "owner-1", Name: "Ravi", DailyWage: wage("600")})
	require.NoError(t, err)

	store := attendancesvc.NewAttendanceStore(repos.Attendance, repos.Payments)
	return &payrollFixture{
		ctx:     ctx,
		repos:   repos,
		store:   store,
		service: NewPayrollService(repos.Workers, store, deductKinds),
		ravi:    ravi,
	}
}

func (f *payrollFixture) mark(t *testing.T, workerID, date string, status attendance.Status) {
	t.Helper()
	_, err := f.store.MarkAttendance(f.ctx, attendance.MarkAttendanceRequest{WorkerID: workerID, Date: date, Status: string(status)})
	require.NoError(t, err)
}

func (f *payrollFixture) pay(t *testing.T, workerID, date, amount, kind string) {
	t.Helper()
	_, err := f.store.RecordPayment(f.ctx, payment.RecordPaymentRequest{
		WorkerID: workerID, Date: date, Amount: decimal.RequireFromString(amount), Kind: kind,
	})
	require.NoError(t, err)
}

func (f *payrollFixture) seedRaviJanuary(t *testing.T) {
	for _, d := range []string{"01", "02", "03", "06", "07"} {
		f.mark(t, f.ravi.ID, "2025-01-"+d, attendance.StatusPresent)
	}
	f.mark(t, f.ravi.ID, "2025-01-04", attendance.StatusAbsent)
	f.mark(t, f.ravi.ID, "2025-01-05", attendance.StatusAbsent)
	f.pay(t, f.ravi.ID, "2025-01-05", "1000", "advance")
}

func TestPayrollService_WorkerSummary(t *testing.T) {
	f := newPayrollFixture(t)
	f.seedRaviJanuary(t)

	resp, err := f.service.WorkerSummary(f.ctx, f.ravi.ID, dateutil.NewPeriod(1, 2025))
	require.NoError(t, err)

	assert.Equal(t, "Ravi", resp.WorkerName)
	assert.Equal(t, 5, resp.Summary.PresentDays)
	assert.Equal(t, 2, resp.Summary.AbsentDays)
	assert.Equal(t, 24, resp.Summary.NotMarkedDays)
	assertMoney(t, "3000", resp.Summary.GrossIncome)
	assertMoney(t, "1000", resp.Summary.TotalDeductions)
	assertMoney(t, "2000", resp.Summary.NetPayable)
	assert.Equal(t, payroll.SettlementPayable, resp.Summary.Settlement.Status)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "2025-01-05", resp.Payments[0].Date)
}

func TestPayrollService_WageEditReinterpretsHistory(t *testing.T) {
	f := newPayrollFixture(t)
	f.seedRaviJanuary(t)

	_, err := f.repos.Workers.UpdateDailyWage(f.ctx, f.ravi.ID, "owner-1", decimal.NewFromInt(700))
	require.NoError(t, err)

	resp, err := f.service.WorkerSummary(f.ctx, f.ravi.ID, dateutil.NewPeriod(1, 2025))
	require.NoError(t, err)
	assertMoney(t, "3500", resp.Summary.GrossIncome)
	assertMoney(t, "2500", resp.Summary.NetPayable)
}

func TestPayrollService_MonthlySummaries(t *testing.T) {
	f := newPayrollFixture(t)
	f.seedRaviJanuary(t)

	sita, err := f.repos.Workers.Create(f.ctx, worker.Worker{UserID: "owner-1", Name: "Sita"})
	require.NoError(t, err)
	f.mark(t, sita.ID, "2025-01-02", attendance.StatusPresent)
	f.pay(t, sita.ID, "2025-01-02", "150", "advance")

	resp, err := f.service.MonthlySummaries(f.ctx, dateutil.NewPeriod(1, 2025))
	require.NoError(t, err)

	require.Len(t, resp.Workers, 2)
	assert.Equal(t, "Ravi", resp.Workers[0].WorkerName)
	assert.Equal(t, "Sita", resp.Workers[1].WorkerName)
	assert.Equal(t, payroll.SettlementOutstanding, resp.Workers[1].Summary.Settlement.Status)
	assertMoney(t, "3000", resp.TotalGross)
	assertMoney(t, "1150", resp.TotalDeductions)
	assertMoney(t, "1850", resp.TotalNet)
}

func TestPayrollService_DeductKindsFromConfig(t *testing.T) {
	f := newPayrollFixture(t, payment.KindAdvance)
	f.seedRaviJanuary(t)
	f.pay(t, f.ravi.ID, "2025-01-07", "400", "expenditure")

	resp, err := f.service.WorkerSummary(f.ctx, f.ravi.ID, dateutil.NewPeriod(1, 2025))
	require.NoError(t, err)
	assertMoney(t, "400", resp.Summary.TotalExpenditures)
	assertMoney(t, "1000", resp.Summary.TotalDeductions)
	assertMoney(t, "2000", resp.Summary.NetPayable)
}

func TestPayrollService_Errors(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.service.WorkerSummary(f.ctx, "missing", dateutil.NewPeriod(1, 2025))
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	_, err = f.service.WorkerSummary(context.Background(), f.ravi.ID, dateutil.NewPeriod(1, 2025))
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	_, err = f.service.MonthlySummaries(f.ctx, dateutil.NewPeriod(0, 2025))
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	other := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "owner-2"})
	_, err = f.service.WorkerSummary(other, f.ravi.ID, dateutil.NewPeriod(1, 2025))
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}
