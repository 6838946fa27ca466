package http

import (
	"net/http"

	"github.com/sitebook/sitebook-backend/internal/domain/report"
	"github.com/sitebook/sitebook-backend/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyWorkbook(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// MonthlyWorkbook implements ReportHandler.
func (h *reportHandlerImpl) MonthlyWorkbook(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.reportService.MonthlyWorkbook(r.Context(), report.MonthlyWorkbookRequest{
		Month: period.Month,
		Year:  period.Year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, doc.Filename, doc.ContentType, doc.Content)
}
