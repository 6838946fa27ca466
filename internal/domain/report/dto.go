package report

import (
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
)

// ========================================
// SALARY SLIP
// ========================================

type SalarySlipRequest struct {
	WorkerID string `json:"worker_id"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

func (r *SalarySlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if err := r.Period().Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *SalarySlipRequest) Period() dateutil.Period {
	return dateutil.NewPeriod(r.Month, r.Year)
}

// ========================================
// MONTHLY WORKBOOK
// ========================================

type MonthlyWorkbookRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyWorkbookRequest) Validate() error {
	return r.Period().Validate()
}

func (r *MonthlyWorkbookRequest) Period() dateutil.Period {
	return dateutil.NewPeriod(r.Month, r.Year)
}

// Document is a rendered report ready to be streamed.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
