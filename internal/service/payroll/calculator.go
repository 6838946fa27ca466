package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/payroll"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

// moneyPlaces is the number of fractional digits kept on every amount.
const moneyPlaces = 2

// Input is everything Summarize needs for one worker and one month.
// Marks and Payments may span any range; only entries inside Period count.
type Input struct {
	WorkerID  string
	DailyWage *decimal.Decimal
	Period    dateutil.Period
	Marks     []attendance.Mark
	Payments  []payment.Payment

	// DeductKinds lists the payment kinds subtracted from gross income.
	// Empty means every kind deducts.
	DeductKinds []payment.Kind
}

// Summarize reconciles attendance against payments for one month. It never fails:
// a nil wage counts as zero and impossible inputs are reported as warnings on the result.
func Summarize(in Input) payroll.MonthlySummary {
	wage := decimal.Zero
	if in.DailyWage != nil {
		wage = in.DailyWage.Round(moneyPlaces)
	}

	summary := payroll.MonthlySummary{
		WorkerID:          in.WorkerID,
		Period:            in.Period,
		DailyWageRate:     wage,
		TotalDaysInMonth:  in.Period.Days(),
		TotalAdvances:     decimal.Zero,
		TotalExpenditures: decimal.Zero,
		TotalDeductions:   decimal.Zero,
	}

	seen := make(map[string]int)
	for _, m := range in.Marks {
		if m.WorkerID != in.WorkerID || !in.Period.Contains(m.Date) {
			continue
		}
		seen[dateutil.Format(m.Date)]++
		switch m.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		}
	}

	var duplicates int
	for _, n := range seen {
		if n > 1 {
			duplicates += n - 1
		}
	}
	if duplicates > 0 {
		summary.Warnings = append(summary.Warnings, payroll.IntegrityWarning{
			Code:    payroll.WarningDuplicateDates,
			Message: fmt.Sprintf("%d extra marks share a date with another mark", duplicates),
		})
	}

	notMarked := summary.TotalDaysInMonth - summary.PresentDays - summary.AbsentDays
	if notMarked < 0 {
		summary.Warnings = append(summary.Warnings, payroll.IntegrityWarning{
			Code: payroll.WarningMarksExceedDays,
			Message: fmt.Sprintf("%d marks recorded for a %d day month",
				summary.PresentDays+summary.AbsentDays, summary.TotalDaysInMonth),
		})
		notMarked = 0
	}
	summary.NotMarkedDays = notMarked

	summary.GrossIncome = wage.Mul(decimal.NewFromInt(int64(summary.PresentDays))).Round(moneyPlaces)

	deducts := deductSet(in.DeductKinds)
	for _, p := range in.Payments {
		if p.WorkerID != in.WorkerID || !in.Period.Contains(p.Date) {
			continue
		}
		amount := p.Amount.Round(moneyPlaces)
		switch p.Kind {
		case payment.KindExpenditure:
			summary.TotalExpenditures = summary.TotalExpenditures.Add(amount)
		default:
			summary.TotalAdvances = summary.TotalAdvances.Add(amount)
		}
		if deducts(p.Kind) {
			summary.TotalDeductions = summary.TotalDeductions.Add(amount)
		}
	}

	summary.NetPayable = summary.GrossIncome.Sub(summary.TotalDeductions)
	summary.Settlement = payroll.NewSettlement(summary.NetPayable)

	return summary
}

func deductSet(kinds []payment.Kind) func(payment.Kind) bool {
	if len(kinds) == 0 {
		return func(payment.Kind) bool { return true }
	}
	set := make(map[payment.Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return func(k payment.Kind) bool {
		if k == "" {
			k = payment.KindAdvance
		}
		_, ok := set[k]
		return ok
	}
}
