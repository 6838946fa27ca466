package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitebook/sitebook-backend/internal/domain/payroll"
	"github.com/sitebook/sitebook-backend/internal/domain/report"
	"github.com/sitebook/sitebook-backend/internal/handler/http/response"
)

type PayrollHandler interface {
	WorkerSummary(w http.ResponseWriter, r *http.Request)
	MonthlySummaries(w http.ResponseWriter, r *http.Request)
	SalarySlip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	reportService  report.ReportService
}

func NewPayrollHandler(payrollService payroll.PayrollService, reportService report.ReportService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		reportService:  reportService,
	}
}

// WorkerSummary implements PayrollHandler.
func (h *payrollHandlerImpl) WorkerSummary(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.WorkerSummary(r.Context(), chi.URLParam(r, "id"), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummaries implements PayrollHandler.
func (h *payrollHandlerImpl) MonthlySummaries(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.MonthlySummaries(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		TotalItems: len(result.Workers),
		Month:      period.String(),
	})
}

// SalarySlip implements PayrollHandler.
func (h *payrollHandlerImpl) SalarySlip(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.reportService.SalarySlipPDF(r.Context(), report.SalarySlipRequest{
		WorkerID: chi.URLParam(r, "id"),
		Month:    period.Month,
		Year:     period.Year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, doc.Filename, doc.ContentType, doc.Content)
}
