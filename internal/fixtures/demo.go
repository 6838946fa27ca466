package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/user"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoEmail    = "demo@sitebook.local"
	DemoPassword = "sitebook-demo"
)

func strPtr(s string) *string { return &s }

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// DemoIDs holds the IDs created by SeedDemo.
type DemoIDs struct {
	UserID    string
	WorkerIDs map[string]string // worker name -> id
}

// Repositories is the write surface SeedDemo needs.
type Repositories struct {
	Users      user.UserRepository
	Workers    worker.WorkerRepository
	Attendance attendance.AttendanceRepository
	Payments   payment.PaymentRepository
	Bills      bill.BillRepository
}

// ==========================================
// DEFAULT WORKERS
// ==========================================

// GetDemoWorkers returns the crew of the demo site.
func GetDemoWorkers(userID string) []worker.Worker {
	ravi, sita, mohan := money("600"), money("550"), money("750")
	return []worker.Worker{
		{UserID: userID, Name: "Ravi", Phone: strPtr("9876543210"), DailyWage: &ravi},
		{UserID: userID, Name: "Sita", DailyWage: &sita},
		{UserID: userID, Name: "Mohan", Address: strPtr("Ward 4, Old Town"), DailyWage: &mohan},
	}
}

// ==========================================
// DEFAULT BILLS
// ==========================================

// GetDemoBills returns material bills dated inside period.
func GetDemoBills(userID string, period dateutil.Period) []bill.Bill {
	day := func(d int) time.Time {
		return time.Date(period.Year, time.Month(period.Month), d, 0, 0, 0, 0, time.UTC)
	}
	return []bill.Bill{
		{UserID: userID, ShopName: "Sharma Traders", Material: bill.MaterialCement, Amount: money("4250.00"), Date: day(1)},
		{UserID: userID, ShopName: "Steel Point", Material: bill.MaterialSteel, Amount: money("12800.50"), Date: day(2)},
		{UserID: userID, ShopName: "City Hardware", Material: bill.MaterialPipes, Amount: money("1890.00"), Date: day(3), Location: strPtr("Main Road")},
	}
}

// demoStatus gives each worker a repeatable attendance pattern.
func demoStatus(workerIndex, day int) attendance.Status {
	if (day+workerIndex)%6 == 0 {
		return attendance.StatusAbsent
	}
	return attendance.StatusPresent
}

// SeedDemo creates a demo owner with workers, attendance up to today, payments and bills
// in today's month. It fails if the demo email is already registered.
func SeedDemo(ctx context.Context, repos Repositories, today time.Time) (*DemoIDs, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	owner, err := repos.Users.Create(ctx, user.User{Email: DemoEmail, PasswordHash: string(hash)})
	if err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	ids := &DemoIDs{UserID: owner.ID, WorkerIDs: make(map[string]string)}
	period := dateutil.PeriodOf(today)

	for i, w := range GetDemoWorkers(owner.ID) {
		created, err := repos.Workers.Create(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("failed to create demo worker %s: %w", w.Name, err)
		}
		ids.WorkerIDs[created.Name] = created.ID

		for day := 1; day <= today.Day(); day++ {
			_, err := repos.Attendance.Upsert(ctx, attendance.Mark{
				UserID:   owner.ID,
				WorkerID: created.ID,
				Date:     time.Date(period.Year, time.Month(period.Month), day, 0, 0, 0, 0, time.UTC),
				Status:   demoStatus(i, day),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to seed attendance: %w", err)
			}
		}

		_, err = repos.Payments.Insert(ctx, payment.Payment{
			UserID:   owner.ID,
			WorkerID: created.ID,
			Kind:     payment.KindAdvance,
			Date:     time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, time.UTC),
			Amount:   money("500"),
			Note:     strPtr("Advance"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed payment: %w", err)
		}
	}

	for _, b := range GetDemoBills(owner.ID, period) {
		if _, err := repos.Bills.Create(ctx, b); err != nil {
			return nil, fmt.Errorf("failed to seed bill: %w", err)
		}
	}

	return ids, nil
}
