package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
)

type SummaryResponse struct {
	Month             int                `json:"month"`
	Year              int                `json:"year"`
	DailyWageRate     decimal.Decimal    `json:"daily_wage_rate"`
	TotalDaysInMonth  int                `json:"total_days_in_month"`
	PresentDays       int                `json:"present_days"`
	AbsentDays        int                `json:"absent_days"`
	NotMarkedDays     int                `json:"not_marked_days"`
	GrossIncome       decimal.Decimal    `json:"gross_income"`
	TotalAdvances     decimal.Decimal    `json:"total_advances"`
	TotalExpenditures decimal.Decimal    `json:"total_expenditures"`
	TotalDeductions   decimal.Decimal    `json:"total_deductions"`
	NetPayable        decimal.Decimal    `json:"net_payable"`
	Settlement        Settlement         `json:"settlement"`
	Warnings          []IntegrityWarning `json:"warnings,omitempty"`
}

func NewSummaryResponse(s MonthlySummary) SummaryResponse {
	return SummaryResponse{
		Month:             s.Period.Month,
		Year:              s.Period.Year,
		DailyWageRate:     s.DailyWageRate,
		TotalDaysInMonth:  s.TotalDaysInMonth,
		PresentDays:       s.PresentDays,
		AbsentDays:        s.AbsentDays,
		NotMarkedDays:     s.NotMarkedDays,
		GrossIncome:       s.GrossIncome,
		TotalAdvances:     s.TotalAdvances,
		TotalExpenditures: s.TotalExpenditures,
		TotalDeductions:   s.TotalDeductions,
		NetPayable:        s.NetPayable,
		Settlement:        s.Settlement,
		Warnings:          s.Warnings,
	}
}

type WorkerSummaryResponse struct {
	WorkerID   string                    `json:"worker_id"`
	WorkerName string                    `json:"worker_name"`
	Summary    SummaryResponse           `json:"summary"`
	Payments   []payment.PaymentResponse `json:"payments"`
}

type MonthlyPayrollResponse struct {
	Month           int                     `json:"month"`
	Year            int                     `json:"year"`
	Workers         []WorkerSummaryResponse `json:"workers"`
	TotalGross      decimal.Decimal         `json:"total_gross"`
	TotalDeductions decimal.Decimal         `json:"total_deductions"`
	TotalNet        decimal.Decimal         `json:"total_net"`
}
