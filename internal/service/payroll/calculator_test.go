package payroll

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/payroll"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := dateutil.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mark(workerID, date string, status attendance.Status) attendance.Mark {
	return attendance.Mark{WorkerID: workerID, Date: day(date), Status: status}
}

func pay(workerID, date, amount string, kind payment.Kind) payment.Payment {
	return payment.Payment{
		WorkerID: workerID,
		Date:     day(date),
		Amount:   decimal.RequireFromString(amount),
		Kind:     kind,
	}
}

func wage(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestSummarize_RaviJanuary2025(t *testing.T) {
	marks := []attendance.Mark{
		mark("ravi", "2025-01-01", attendance.StatusPresent),
		mark("ravi", "2025-01-02", attendance.StatusPresent),
		mark("ravi", "2025-01-03", attendance.StatusPresent),
		mark("ravi", "2025-01-06", attendance.StatusPresent),
		mark("ravi", "2025-01-07", attendance.StatusPresent),
		mark("ravi", "2025-01-04", attendance.StatusAbsent),
		mark("ravi", "2025-01-05", attendance.StatusAbsent),
		// outside the period
		mark("ravi", "2024-12-31", attendance.StatusPresent),
		mark("ravi", "2025-02-01", attendance.StatusPresent),
	}
	payments := []payment.Payment{
		pay("ravi", "2025-01-05", "1000", payment.KindAdvance),
		pay("ravi", "2025-02-05", "300", payment.KindAdvance),
	}

	s := Summarize(Input{
		WorkerID:  "ravi",
		DailyWage: wage("600"),
		Period:    dateutil.NewPeriod(1, 2025),
		Marks:     marks,
		Payments:  payments,
	})

	assert.Equal(t, 31, s.TotalDaysInMonth)
	assert.Equal(t, 5, s.PresentDays)
	assert.Equal(t, 2, s.AbsentDays)
	assert.Equal(t, 24, s.NotMarkedDays)
	assertMoney(t, "3000", s.GrossIncome)
	assertMoney(t, "1000", s.TotalDeductions)
	assertMoney(t, "2000", s.NetPayable)
	assert.Equal(t, payroll.SettlementPayable, s.Settlement.Status)
	assertMoney(t, "2000", s.Settlement.Amount)
	assert.False(t, s.HasIntegrityWarning())
}

func TestSummarize_LeapYears(t *testing.T) {
	cases := []struct {
		month, year int
		want        int
	}{
		{2, 2024, 29},
		{2, 2023, 28},
		{2, 2000, 29},
		{2, 2100, 28},
		{4, 2025, 30},
		{12, 2025, 31},
	}
	for _, c := range cases {
		s := Summarize(Input{WorkerID: "w", Period: dateutil.NewPeriod(c.month, c.year)})
		assert.Equal(t, c.want, s.TotalDaysInMonth, "%d-%d", c.year, c.month)
		assert.Equal(t, c.want, s.NotMarkedDays)
	}
}

func TestSummarize_ZeroAttendance(t *testing.T) {
	s := Summarize(Input{
		WorkerID:  "w",
		DailyWage: wage("750"),
		Period:    dateutil.NewPeriod(3, 2025),
	})

	assert.Equal(t, 0, s.PresentDays)
	assertMoney(t, "0", s.GrossIncome)
	assertMoney(t, "0", s.TotalDeductions)
	assertMoney(t, "0", s.NetPayable)
	assert.Equal(t, payroll.SettlementSettled, s.Settlement.Status)
}

func TestSummarize_ZeroAttendanceWithAdvance(t *testing.T) {
	s := Summarize(Input{
		WorkerID:  "w",
		DailyWage: wage("750"),
		Period:    dateutil.NewPeriod(3, 2025),
		Payments:  []payment.Payment{pay("w", "2025-03-10", "200", payment.KindAdvance)},
	})

	assertMoney(t, "-200", s.NetPayable)
	assert.Equal(t, payroll.SettlementOutstanding, s.Settlement.Status)
}

func TestSummarize_NilWageCountsAsZero(t *testing.T) {
	s := Summarize(Input{
		WorkerID: "w",
		Period:   dateutil.NewPeriod(1, 2025),
		Marks:    []attendance.Mark{mark("w", "2025-01-02", attendance.StatusPresent)},
	})

	assert.Equal(t, 1, s.PresentDays)
	assertMoney(t, "0", s.DailyWageRate)
	assertMoney(t, "0", s.GrossIncome)
}

func TestSummarize_DeductionExceedsIncome(t *testing.T) {
	s := Summarize(Input{
		WorkerID:  "w",
		DailyWage: wage("500"),
		Period:    dateutil.NewPeriod(6, 2025),
		Marks: []attendance.Mark{
			mark("w", "2025-06-02", attendance.StatusPresent),
			mark("w", "2025-06-03", attendance.StatusPresent),
		},
		Payments: []payment.Payment{
			pay("w", "2025-06-02", "1000", payment.KindAdvance),
			pay("w", "2025-06-02", "500", payment.KindAdvance),
		},
	})

	assertMoney(t, "1000", s.GrossIncome)
	assertMoney(t, "1500", s.TotalDeductions)
	assertMoney(t, "-500", s.NetPayable)
	assert.Equal(t, payroll.SettlementOutstanding, s.Settlement.Status)
	assertMoney(t, "500", s.Settlement.Amount)

	raw, err := json.Marshal(payroll.NewSummaryResponse(s))
	require.NoError(t, err)

	var decoded payroll.SummaryResponse
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assertMoney(t, "-500", decoded.NetPayable)
	assert.Equal(t, payroll.SettlementOutstanding, decoded.Settlement.Status)
	assertMoney(t, "-500", decoded.Settlement.Signed())

	// a positive payable of the same magnitude must not serialize the same way
	positive := payroll.NewSettlement(decimal.NewFromInt(500))
	posRaw, err := json.Marshal(positive)
	require.NoError(t, err)
	negRaw, err := json.Marshal(s.Settlement)
	require.NoError(t, err)
	assert.NotEqual(t, string(posRaw), string(negRaw))
}

func TestSummarize_ClampsWhenMarksExceedDays(t *testing.T) {
	var marks []attendance.Mark
	for d := 1; d <= 28; d++ {
		date := fmt.Sprintf("2023-02-%02d", d)
		marks = append(marks, mark("w", date, attendance.StatusPresent))
		if d <= 3 {
			marks = append(marks, mark("w", date, attendance.StatusAbsent))
		}
	}

	s := Summarize(Input{WorkerID: "w", DailyWage: wage("100"), Period: dateutil.NewPeriod(2, 2023), Marks: marks})

	assert.Equal(t, 28, s.PresentDays)
	assert.Equal(t, 3, s.AbsentDays)
	assert.Equal(t, 0, s.NotMarkedDays)
	require.True(t, s.HasIntegrityWarning())

	var codes []string
	for _, w := range s.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, payroll.WarningMarksExceedDays)
	assert.Contains(t, codes, payroll.WarningDuplicateDates)
}

func TestSummarize_DayCountConservation(t *testing.T) {
	statuses := []attendance.Status{attendance.StatusPresent, attendance.StatusAbsent}
	for year := 2023; year <= 2024; year++ {
		for month := 1; month <= 12; month++ {
			period := dateutil.NewPeriod(month, year)
			var marks []attendance.Mark
			for d := 1; d <= period.Days(); d += 2 {
				date := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
				marks = append(marks, mark("w", date, statuses[d%2]))
			}

			s := Summarize(Input{WorkerID: "w", Period: period, Marks: marks})
			assert.Equal(t, s.TotalDaysInMonth, s.PresentDays+s.AbsentDays+s.NotMarkedDays, period.String())
			assert.GreaterOrEqual(t, s.NotMarkedDays, 0)
		}
	}
}

func TestSummarize_IgnoresOtherWorkers(t *testing.T) {
	s := Summarize(Input{
		WorkerID:  "a",
		DailyWage: wage("100"),
		Period:    dateutil.NewPeriod(1, 2025),
		Marks: []attendance.Mark{
			mark("a", "2025-01-02", attendance.StatusPresent),
			mark("b", "2025-01-02", attendance.StatusPresent),
		},
		Payments: []payment.Payment{pay("b", "2025-01-02", "50", payment.KindAdvance)},
	})

	assert.Equal(t, 1, s.PresentDays)
	assertMoney(t, "0", s.TotalDeductions)
}

func TestSummarize_DeductKinds(t *testing.T) {
	in := Input{
		WorkerID:  "w",
		DailyWage: wage("600"),
		Period:    dateutil.NewPeriod(1, 2025),
		Marks:     []attendance.Mark{mark("w", "2025-01-02", attendance.StatusPresent)},
		Payments: []payment.Payment{
			pay("w", "2025-01-02", "100", payment.KindAdvance),
			pay("w", "2025-01-03", "250", payment.KindExpenditure),
		},
	}

	all := Summarize(in)
	assertMoney(t, "100", all.TotalAdvances)
	assertMoney(t, "250", all.TotalExpenditures)
	assertMoney(t, "350", all.TotalDeductions)
	assertMoney(t, "250", all.NetPayable)

	in.DeductKinds = []payment.Kind{payment.KindAdvance}
	advancesOnly := Summarize(in)
	assertMoney(t, "250", advancesOnly.TotalExpenditures)
	assertMoney(t, "100", advancesOnly.TotalDeductions)
	assertMoney(t, "500", advancesOnly.NetPayable)
}

func TestSummarize_RoundsToMinorUnits(t *testing.T) {
	s := Summarize(Input{
		WorkerID:  "w",
		DailyWage: wage("333.333"),
		Period:    dateutil.NewPeriod(1, 2025),
		Marks: []attendance.Mark{
			mark("w", "2025-01-01", attendance.StatusPresent),
			mark("w", "2025-01-02", attendance.StatusPresent),
			mark("w", "2025-01-03", attendance.StatusPresent),
		},
		Payments: []payment.Payment{
			pay("w", "2025-01-01", "0.1", payment.KindAdvance),
			pay("w", "2025-01-02", "0.2", payment.KindAdvance),
		},
	})

	assertMoney(t, "333.33", s.DailyWageRate)
	assertMoney(t, "999.99", s.GrossIncome)
	assertMoney(t, "0.3", s.TotalDeductions)
	assertMoney(t, "999.69", s.NetPayable)
}

func TestSummarize_Deterministic(t *testing.T) {
	in := Input{
		WorkerID:  "w",
		DailyWage: wage("600"),
		Period:    dateutil.NewPeriod(1, 2025),
		Marks: []attendance.Mark{
			mark("w", "2025-01-01", attendance.StatusPresent),
			mark("w", "2025-01-01", attendance.StatusAbsent),
		},
	}
	assert.Equal(t, Summarize(in), Summarize(in))
}
