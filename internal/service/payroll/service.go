package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/payroll"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

type PayrollServiceImpl struct {
	worker.WorkerRepository
	store       attendance.AttendanceStore
	deductKinds []payment.Kind
}

func NewPayrollService(workerRepository worker.WorkerRepository, store attendance.AttendanceStore, deductKinds []payment.Kind) payroll.PayrollService {
	return &PayrollServiceImpl{
		WorkerRepository: workerRepository,
		store:            store,
		deductKinds:      deductKinds,
	}
}

// WorkerSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) WorkerSummary(ctx context.Context, workerID string, period dateutil.Period) (payroll.WorkerSummaryResponse, error) {
	if err := period.Validate(); err != nil {
		return payroll.WorkerSummaryResponse{}, err
	}
	userID, err := auth.UserID(ctx)
	if err != nil {
		return payroll.WorkerSummaryResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, workerID, userID)
	if err != nil {
		return payroll.WorkerSummaryResponse{}, err
	}

	return s.summarize(ctx, w, period)
}

// MonthlySummaries implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlySummaries(ctx context.Context, period dateutil.Period) (payroll.MonthlyPayrollResponse, error) {
	if err := period.Validate(); err != nil {
		return payroll.MonthlyPayrollResponse{}, err
	}
	userID, err := auth.UserID(ctx)
	if err != nil {
		return payroll.MonthlyPayrollResponse{}, err
	}

	workers, err := s.WorkerRepository.List(ctx, userID)
	if err != nil {
		return payroll.MonthlyPayrollResponse{}, fmt.Errorf("failed to list workers: %w", err)
	}

	resp := payroll.MonthlyPayrollResponse{
		Month:           period.Month,
		Year:            period.Year,
		Workers:         make([]payroll.WorkerSummaryResponse, 0, len(workers)),
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}
	for _, w := range workers {
		ws, err := s.summarize(ctx, w, period)
		if err != nil {
			return payroll.MonthlyPayrollResponse{}, err
		}
		resp.Workers = append(resp.Workers, ws)
		resp.TotalGross = resp.TotalGross.Add(ws.Summary.GrossIncome)
		resp.TotalDeductions = resp.TotalDeductions.Add(ws.Summary.TotalDeductions)
		resp.TotalNet = resp.TotalNet.Add(ws.Summary.NetPayable)
	}
	return resp, nil
}

// monthlySummary runs the calculator over the session's marks and payments for w.
func (s *PayrollServiceImpl) monthlySummary(ctx context.Context, w worker.Worker, period dateutil.Period) (payroll.MonthlySummary, []payment.Payment, error) {
	marks, err := s.store.QueryAttendance(ctx, w.ID, &period)
	if err != nil {
		return payroll.MonthlySummary{}, nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	payments, err := s.store.QueryPayments(ctx, w.ID, &period)
	if err != nil {
		return payroll.MonthlySummary{}, nil, fmt.Errorf("failed to query payments: %w", err)
	}

	summary := Summarize(Input{
		WorkerID:    w.ID,
		DailyWage:   w.DailyWage,
		Period:      period,
		Marks:       marks,
		Payments:    payments,
		DeductKinds: s.deductKinds,
	})
	for _, warning := range summary.Warnings {
		slog.WarnContext(ctx, "Payroll integrity warning",
			"worker_id", w.ID, "period", period.String(), "code", warning.Code, "message", warning.Message)
	}
	return summary, payments, nil
}

func (s *PayrollServiceImpl) summarize(ctx context.Context, w worker.Worker, period dateutil.Period) (payroll.WorkerSummaryResponse, error) {
	summary, payments, err := s.monthlySummary(ctx, w, period)
	if err != nil {
		return payroll.WorkerSummaryResponse{}, err
	}
	return payroll.WorkerSummaryResponse{
		WorkerID:   w.ID,
		WorkerName: w.Name,
		Summary:    payroll.NewSummaryResponse(summary),
		Payments:   payment.NewPaymentResponses(payments),
	}, nil
}
