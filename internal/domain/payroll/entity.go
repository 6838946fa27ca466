package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

// SettlementStatus tags the sign of a net payable so it survives serialization
// without relying on a leading minus.
type SettlementStatus string

const (
	SettlementPayable     SettlementStatus = "payable"     // the worker is owed money
	SettlementOutstanding SettlementStatus = "outstanding" // advances exceed earnings
	SettlementSettled     SettlementStatus = "settled"
)

type Settlement struct {
	Status SettlementStatus `json:"status"`
	Amount decimal.Decimal  `json:"amount"` // always >= 0
}

// NewSettlement tags net by sign.
func NewSettlement(net decimal.Decimal) Settlement {
	switch {
	case net.IsPositive():
		return Settlement{Status: SettlementPayable, Amount: net}
	case net.IsNegative():
		return Settlement{Status: SettlementOutstanding, Amount: net.Abs()}
	default:
		return Settlement{Status: SettlementSettled, Amount: decimal.Zero}
	}
}

// Signed converts the tag back into the signed net amount.
func (s Settlement) Signed() decimal.Decimal {
	if s.Status == SettlementOutstanding {
		return s.Amount.Neg()
	}
	return s.Amount
}

const (
	WarningMarksExceedDays = "marks_exceed_days"
	WarningDuplicateDates  = "duplicate_dates"
)

// IntegrityWarning reports an impossible input state found while summarising.
// It never aborts the computation.
type IntegrityWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (w IntegrityWarning) Error() string {
	return w.Code + ": " + w.Message
}

// MonthlySummary is derived on demand and never stored.
type MonthlySummary struct {
	WorkerID          string
	Period            dateutil.Period
	DailyWageRate     decimal.Decimal
	TotalDaysInMonth  int
	PresentDays       int
	AbsentDays        int
	NotMarkedDays     int
	GrossIncome       decimal.Decimal
	TotalAdvances     decimal.Decimal
	TotalExpenditures decimal.Decimal
	TotalDeductions   decimal.Decimal
	NetPayable        decimal.Decimal
	Settlement        Settlement
	Warnings          []IntegrityWarning
}

func (s MonthlySummary) HasIntegrityWarning() bool {
	return len(s.Warnings) > 0
}
