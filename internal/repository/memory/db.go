// Package memory backs every repository interface with process-local maps.
// It is used for DB_DRIVER=memory and as the persistence fake in tests.
package memory

import (
	"sync"

	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/user"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
)

// DB holds every table. Rows are stored by value and copied out on read.
type DB struct {
	mu         sync.RWMutex
	users      map[string]user.User
	workers    map[string]worker.Worker
	attendance map[attendanceKey]attendance.Mark
	payments   []payment.Payment
	bills      map[string]bill.Bill
}

type attendanceKey struct {
	userID   string
	workerID string
	date     string
}

func NewDB() *DB {
	return &DB{
		users:      make(map[string]user.User),
		workers:    make(map[string]worker.Worker),
		attendance: make(map[attendanceKey]attendance.Mark),
		bills:      make(map[string]bill.Bill),
	}
}

// Repositories groups the repositories sharing one DB.
type Repositories struct {
	Users      *UserRepository
	Workers    *WorkerRepository
	Attendance *AttendanceRepository
	Payments   *PaymentRepository
	Bills      *BillRepository
}

func NewRepositories(db *DB) Repositories {
	return Repositories{
		Users:      NewUserRepository(db),
		Workers:    NewWorkerRepository(db),
		Attendance: NewAttendanceRepository(db),
		Payments:   NewPaymentRepository(db),
		Bills:      NewBillRepository(db),
	}
}
