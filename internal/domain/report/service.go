package report

import "context"

// ReportService renders computed summaries into downloadable documents.
type ReportService interface {
	SalarySlipPDF(ctx context.Context, req SalarySlipRequest) (Document, error)
	MonthlyWorkbook(ctx context.Context, req MonthlyWorkbookRequest) (Document, error)
}
