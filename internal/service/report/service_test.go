package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/report"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
	"github.com/sitebook/sitebook-backend/internal/repository/memory"
	attendancesvc "github.com/sitebook/sitebook-backend/internal/service/attendance"
	billsvc "github.com/sitebook/sitebook-backend/internal/service/bill"
	payrollsvc "github.com/sitebook/sitebook-backend/internal/service/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type reportFixture struct {
	ctx     context.Context
	service report.ReportService
	ravi    worker.Worker
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	repos := memory.NewRepositories(memory.NewDB())
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: "owner-1"})

	wage := decimal.NewFromInt(600)
	ravi, err := repos.Workers.Create(ctx, worker.Worker{UserID: "owner-1", Name: "Ravi", DailyWage: &wage})
	require.NoError(t, err)

	store := attendancesvc.NewAttendanceStore(repos.Attendance, repos.Payments)
	for _, d := range []string{"2025-01-01", "2025-01-02", "2025-01-03"} {
		_, err := store.MarkAttendance(ctx, attendance.MarkAttendanceRequest{WorkerID: ravi.ID, Date: d, Status: "present"})
		require.NoError(t, err)
	}
	note := "advance for rent"
	_, err = store.RecordPayment(ctx, payment.RecordPaymentRequest{WorkerID: ravi.ID, Date: "2025-01-05", Amount: decimal.NewFromInt(1000), Note: &note})
	require.NoError(t, err)

	bills := billsvc.NewBillService(repos.Bills, nil)
	_, err = bills.Create(ctx, bill.CreateBillRequest{ShopName: "Sharma Traders", Material: "cement", Amount: decimal.NewFromInt(4200), Date: "2025-01-03"})
	require.NoError(t, err)

	payrolls := payrollsvc.NewPayrollService(repos.Workers, store, nil)
	return &reportFixture{
		ctx:     ctx,
		service: NewReportService(payrolls, bills),
		ravi:    ravi,
	}
}

func TestSalarySlipPDF(t *testing.T) {
	f := newReportFixture(t)

	doc, err := f.service.SalarySlipPDF(f.ctx, report.SalarySlipRequest{WorkerID: f.ravi.ID, Month: 1, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, report.ContentTypePDF, doc.ContentType)
	assert.Equal(t, "salary-slip-ravi-2025-01.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF")))
}

func TestSalarySlipPDF_Validation(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.SalarySlipPDF(f.ctx, report.SalarySlipRequest{WorkerID: f.ravi.ID, Month: 0, Year: 2025})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = f.service.SalarySlipPDF(f.ctx, report.SalarySlipRequest{WorkerID: "missing", Month: 1, Year: 2025})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestMonthlyWorkbook(t *testing.T) {
	f := newReportFixture(t)

	doc, err := f.service.MonthlyWorkbook(f.ctx, report.MonthlyWorkbookRequest{Month: 1, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, "site-report-2025-01.xlsx", doc.Filename)

	book, err := excelize.OpenReader(bytes.NewReader(doc.Content))
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{SheetWorkers, SheetBills, SheetPayments}, book.GetSheetList())

	name, err := book.GetCellValue(SheetWorkers, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", name)

	gross, err := book.GetCellValue(SheetWorkers, "G2")
	require.NoError(t, err)
	assert.Equal(t, "1800", gross)

	status, err := book.GetCellValue(SheetWorkers, "L2")
	require.NoError(t, err)
	assert.Equal(t, "payable", status)

	total, err := book.GetCellValue(SheetWorkers, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)

	shop, err := book.GetCellValue(SheetBills, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Sharma Traders", shop)

	material, err := book.GetCellValue(SheetBills, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Cement", material)

	rows, err := book.GetRows(SheetPayments)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2025-01-05", "Ravi", "advance", "1000", "advance for rent"}, rows[1])
}
