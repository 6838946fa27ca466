package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
)

// ========== TODAY ==========

// TodayResponse summarises a single site day.
type TodayResponse struct {
	Date          string          `json:"date"` // Format: "YYYY-MM-DD"
	TotalWorkers  int             `json:"total_workers"`
	Present       int             `json:"present"`
	Absent        int             `json:"absent"`
	NotMarked     int             `json:"not_marked"`
	BillsTotal    decimal.Decimal `json:"bills_total"`
	BillsCount    int             `json:"bills_count"`
	PaymentsTotal decimal.Decimal `json:"payments_total"`
	PaymentsCount int             `json:"payments_count"`
}

// ========== OVERVIEW ==========

// OverviewResponse is the month-level spend picture.
type OverviewResponse struct {
	Month           string               `json:"month"` // Format: "YYYY-MM"
	TotalWorkers    int                  `json:"total_workers"`
	BillsTotal      decimal.Decimal      `json:"bills_total"`
	BillsByMaterial []bill.MaterialTotal `json:"bills_by_material"`
	GrossWages      decimal.Decimal      `json:"gross_wages"`
	TotalAdvances   decimal.Decimal      `json:"total_advances"`
	TotalExpenses   decimal.Decimal      `json:"total_expenditures"`
	NetPayable      decimal.Decimal      `json:"net_payable"`
	TotalSpend      decimal.Decimal      `json:"total_spend"` // bills + gross wages
}
