package report

import (
	"context"
	"fmt"
	"time"

	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/domain/payroll"
	"github.com/sitebook/sitebook-backend/internal/domain/report"
)

type ReportServiceImpl struct {
	payroll payroll.PayrollService
	bills   bill.BillService
	now     func() time.Time
}

func NewReportService(payrollService payroll.PayrollService, billService bill.BillService) report.ReportService {
	return &ReportServiceImpl{
		payroll: payrollService,
		bills:   billService,
		now:     time.Now,
	}
}

// SalarySlipPDF implements report.ReportService.
func (s *ReportServiceImpl) SalarySlipPDF(ctx context.Context, req report.SalarySlipRequest) (report.Document, error) {
	if err := req.Validate(); err != nil {
		return report.Document{}, err
	}

	summary, err := s.payroll.WorkerSummary(ctx, req.WorkerID, req.Period())
	if err != nil {
		return report.Document{}, err
	}

	content, err := renderSalarySlip(summary, req.Period(), s.now())
	if err != nil {
		return report.Document{}, fmt.Errorf("%w: %w", report.ErrRenderFailed, err)
	}

	return report.Document{
		Filename:    fmt.Sprintf("salary-slip-%s-%s.pdf", slug(summary.WorkerName), req.Period().String()),
		ContentType: report.ContentTypePDF,
		Content:     content,
	}, nil
}

// MonthlyWorkbook implements report.ReportService.
func (s *ReportServiceImpl) MonthlyWorkbook(ctx context.Context, req report.MonthlyWorkbookRequest) (report.Document, error) {
	if err := req.Validate(); err != nil {
		return report.Document{}, err
	}
	period := req.Period()

	payrolls, err := s.payroll.MonthlySummaries(ctx, period)
	if err != nil {
		return report.Document{}, err
	}

	month, year := period.Month, period.Year
	bills, err := s.bills.List(ctx, bill.BillFilter{Month: &month, Year: &year})
	if err != nil {
		return report.Document{}, err
	}

	content, err := renderWorkbook(payrolls, bills)
	if err != nil {
		return report.Document{}, fmt.Errorf("%w: %w", report.ErrRenderFailed, err)
	}

	return report.Document{
		Filename:    fmt.Sprintf("site-report-%s.xlsx", period.String()),
		ContentType: report.ContentTypeXLSX,
		Content:     content,
	}, nil
}
