package report

import (
	"bytes"
	"fmt"

	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

const (
	SheetWorkers  = "Workers"
	SheetBills    = "Bills"
	SheetPayments = "Payments"
)

var (
	workerHeaders = []string{
		"Worker", "Daily Wage", "Days", "Present", "Absent", "Not Marked",
		"Gross", "Advances", "Expenditures", "Deductions", "Net", "Status",
	}
	billHeaders    = []string{"Date", "Shop", "Material", "Amount", "Location"}
	paymentHeaders = []string{"Date", "Worker", "Kind", "Amount", "Note"}
)

func renderWorkbook(payrolls payroll.MonthlyPayrollResponse, bills bill.ListBillResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// Workers
	if err := newSheet(f, SheetWorkers, workerHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, ws := range payrolls.Workers {
		s := ws.Summary
		values := []interface{}{
			ws.WorkerName,
			s.DailyWageRate.InexactFloat64(),
			s.TotalDaysInMonth,
			s.PresentDays,
			s.AbsentDays,
			s.NotMarkedDays,
			s.GrossIncome.InexactFloat64(),
			s.TotalAdvances.InexactFloat64(),
			s.TotalExpenditures.InexactFloat64(),
			s.TotalDeductions.InexactFloat64(),
			s.NetPayable.InexactFloat64(),
			string(s.Settlement.Status),
		}
		if err := setRow(f, SheetWorkers, i+2, values); err != nil {
			return nil, err
		}
	}
	totalRow := len(payrolls.Workers) + 2
	if err := setRow(f, SheetWorkers, totalRow, []interface{}{
		"Total", nil, nil, nil, nil, nil,
		payrolls.TotalGross.InexactFloat64(), nil, nil,
		payrolls.TotalDeductions.InexactFloat64(),
		payrolls.TotalNet.InexactFloat64(),
	}); err != nil {
		return nil, err
	}
	_ = f.SetRowStyle(SheetWorkers, totalRow, totalRow, headerStyle)

	// Bills
	if err := newSheet(f, SheetBills, billHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, b := range bills.Bills {
		location := ""
		if b.Location != nil {
			location = *b.Location
		}
		values := []interface{}{b.Date, b.ShopName, b.Material.Name, b.Amount.InexactFloat64(), location}
		if err := setRow(f, SheetBills, i+2, values); err != nil {
			return nil, err
		}
	}

	// Payments
	if err := newSheet(f, SheetPayments, paymentHeaders, headerStyle); err != nil {
		return nil, err
	}
	r := 2
	for _, ws := range payrolls.Workers {
		for _, p := range ws.Payments {
			note := ""
			if p.Note != nil {
				note = *p.Note
			}
			values := []interface{}{p.Date, ws.WorkerName, string(p.Kind), p.Amount.InexactFloat64(), note}
			if err := setRow(f, SheetPayments, r, values); err != nil {
				return nil, err
			}
			r++
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetWorkers); err == nil {
		f.SetActiveSheet(idx)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func newSheet(f *excelize.File, name string, headers []string, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := setRow(f, name, 1, values); err != nil {
		return err
	}
	_ = f.SetRowStyle(name, 1, 1, headerStyle)

	last, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetColWidth(name, "A", last, 15)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
