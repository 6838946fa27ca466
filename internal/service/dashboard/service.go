package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/domain/dashboard"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/payroll"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	workers worker.WorkerService
	store   attendance.AttendanceStore
	bills   bill.BillService
	payroll payroll.PayrollService
}

func NewDashboardService(
	workers worker.WorkerService,
	store attendance.AttendanceStore,
	bills bill.BillService,
	payrollService payroll.PayrollService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		workers: workers,
		store:   store,
		bills:   bills,
		payroll: payrollService,
	}
}

// Today implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Today(ctx context.Context, date string) (dashboard.TodayResponse, error) {
	day, err := dateutil.Parse(date)
	if err != nil {
		return dashboard.TodayResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	period := dateutil.PeriodOf(day)

	var (
		workers  []worker.WorkerResponse
		marks    []attendance.Mark
		payments []payment.Payment
		bills    bill.ListBillResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workers, err = s.workers.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		marks, err = s.store.MarksOn(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.store.PaymentsIn(gctx, &period)
		return err
	})
	g.Go(func() error {
		var err error
		bills, err = s.bills.List(gctx, bill.BillFilter{StartDate: &date, EndDate: &date})
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.TodayResponse{}, fmt.Errorf("failed to load dashboard: %w", err)
	}

	resp := dashboard.TodayResponse{
		Date:          date,
		TotalWorkers:  len(workers),
		BillsTotal:    bills.Total,
		BillsCount:    bills.TotalCount,
		PaymentsTotal: decimal.Zero,
	}

	active := make(map[string]struct{}, len(workers))
	for _, w := range workers {
		active[w.ID] = struct{}{}
	}
	for _, m := range marks {
		if _, ok := active[m.WorkerID]; !ok {
			continue
		}
		switch m.Status {
		case attendance.StatusPresent:
			resp.Present++
		case attendance.StatusAbsent:
			resp.Absent++
		}
	}
	resp.NotMarked = max(0, resp.TotalWorkers-resp.Present-resp.Absent)

	for _, p := range payments {
		if _, ok := active[p.WorkerID]; !ok || dateutil.Format(p.Date) != date {
			continue
		}
		resp.PaymentsTotal = resp.PaymentsTotal.Add(p.Amount)
		resp.PaymentsCount++
	}

	return resp, nil
}

// Overview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Overview(ctx context.Context, period dateutil.Period) (dashboard.OverviewResponse, error) {
	if err := period.Validate(); err != nil {
		return dashboard.OverviewResponse{}, err
	}

	var (
		payrolls payroll.MonthlyPayrollResponse
		bills    bill.ListBillResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payrolls, err = s.payroll.MonthlySummaries(gctx, period)
		return err
	})
	g.Go(func() error {
		month, year := period.Month, period.Year
		var err error
		bills, err = s.bills.List(gctx, bill.BillFilter{Month: &month, Year: &year})
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to load overview: %w", err)
	}

	resp := dashboard.OverviewResponse{
		Month:           period.String(),
		TotalWorkers:    len(payrolls.Workers),
		BillsTotal:      bills.Total,
		BillsByMaterial: bills.ByMaterial,
		GrossWages:      payrolls.TotalGross,
		TotalAdvances:   decimal.Zero,
		TotalExpenses:   decimal.Zero,
		NetPayable:      payrolls.TotalNet,
		TotalSpend:      bills.Total.Add(payrolls.TotalGross),
	}
	for _, ws := range payrolls.Workers {
		resp.TotalAdvances = resp.TotalAdvances.Add(ws.Summary.TotalAdvances)
		resp.TotalExpenses = resp.TotalExpenses.Add(ws.Summary.TotalExpenditures)
	}
	return resp, nil
}
