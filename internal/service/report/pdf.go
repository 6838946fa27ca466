package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/payroll"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

func renderSalarySlip(ws payroll.WorkerSummaryResponse, period dateutil.Period, generatedAt time.Time) ([]byte, error) {
	s := ws.Summary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary Slip", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Salary Slip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Worker: %s", ws.WorkerName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s", period.Label()))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	section(pdf, "Attendance")
	row(pdf, "Days in month", fmt.Sprintf("%d", s.TotalDaysInMonth))
	row(pdf, "Present", fmt.Sprintf("%d", s.PresentDays))
	row(pdf, "Absent", fmt.Sprintf("%d", s.AbsentDays))
	row(pdf, "Not marked", fmt.Sprintf("%d", s.NotMarkedDays))
	pdf.Ln(4)

	section(pdf, "Earnings")
	row(pdf, "Daily wage", money(s.DailyWageRate))
	row(pdf, "Gross income", money(s.GrossIncome))
	row(pdf, "Advances", money(s.TotalAdvances))
	row(pdf, "Expenditures", money(s.TotalExpenditures))
	row(pdf, "Total deductions", money(s.TotalDeductions))
	pdf.SetFont("Helvetica", "B", 11)
	row(pdf, settlementLabel(s.Settlement.Status), money(s.Settlement.Amount))
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(4)

	if len(ws.Payments) > 0 {
		section(pdf, "Payments")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 7, "Date", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, "Kind", "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, "Amount", "1", 0, "R", false, 0, "")
		pdf.CellFormat(80, 7, "Note", "1", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, p := range ws.Payments {
			note := ""
			if p.Note != nil {
				note = *p.Note
			}
			pdf.CellFormat(35, 7, p.Date, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, string(p.Kind), "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 7, money(p.Amount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(80, 7, truncate(note, 45), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if len(s.Warnings) > 0 {
		section(pdf, "Data warnings")
		for _, w := range s.Warnings {
			pdf.MultiCell(0, 6, w.Message, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(60, 7, label)
	pdf.CellFormat(40, 7, value, "", 1, "R", false, 0, "")
}

func settlementLabel(status payroll.SettlementStatus) string {
	switch status {
	case payroll.SettlementOutstanding:
		return "Outstanding (owed by worker)"
	case payroll.SettlementSettled:
		return "Settled"
	default:
		return "Net payable"
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "worker"
	}
	return b.String()
}
