package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

// ledger is one user's cached marks and payments.
type ledger struct {
	mu       sync.RWMutex
	loaded   bool
	evicted  bool // set under mu once the ledger is dropped from Store.ledgers
	marks    map[attendance.Key]attendance.Mark
	payments []payment.Payment

	lastUsed time.Time // guarded by Store.mu
}

// Store is an attendance.AttendanceStore holding one ledger per user. A Store is a
// single session: two Stores over the same repositories do not see each other's
// writes until Refresh.
type Store struct {
	attendanceRepo attendance.AttendanceRepository
	paymentRepo    payment.PaymentRepository
	now            func() time.Time

	mu      sync.Mutex
	ledgers map[string]*ledger
}

func NewAttendanceStore(attendanceRepo attendance.AttendanceRepository, paymentRepo payment.PaymentRepository) *Store {
	return &Store{
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		now:            time.Now,
		ledgers:        make(map[string]*ledger),
	}
}

var _ attendance.AttendanceStore = (*Store)(nil)

func (s *Store) ledgerFor(userID string) *ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.ledgers[userID]
	if !ok {
		l = &ledger{}
		s.ledgers[userID] = l
	}
	l.lastUsed = s.now()
	return l
}

// lockLedger returns the user's live ledger, write-locked. The caller must Unlock it.
func (s *Store) lockLedger(userID string) *ledger {
	for {
		l := s.ledgerFor(userID)
		l.mu.Lock()
		if !l.evicted {
			return l
		}
		l.mu.Unlock()
	}
}

// load fills l from persistence. Callers hold l.mu for writing.
func (s *Store) load(ctx context.Context, l *ledger, userID string) error {
	marks, err := s.attendanceRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load attendance: %w", err)
	}
	payments, err := s.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}

	byKey := make(map[attendance.Key]attendance.Mark, len(marks))
	for _, m := range marks {
		byKey[m.Key()] = m
	}
	l.marks = byKey
	l.payments = payments
	l.loaded = true
	return nil
}

// readLedger returns the user's ledger, loaded and read-locked. The caller must RUnlock it.
func (s *Store) readLedger(ctx context.Context, userID string) (*ledger, error) {
	for {
		l := s.ledgerFor(userID)

		l.mu.RLock()
		if l.loaded && !l.evicted {
			return l, nil
		}
		l.mu.RUnlock()

		l.mu.Lock()
		if !l.loaded && !l.evicted {
			if err := s.load(ctx, l, userID); err != nil {
				l.mu.Unlock()
				return nil, err
			}
		}
		l.mu.Unlock()
	}
}

// writeLedger returns the user's ledger, loaded and write-locked. The caller must Unlock it.
func (s *Store) writeLedger(ctx context.Context, userID string) (*ledger, error) {
	l := s.lockLedger(userID)
	if !l.loaded {
		if err := s.load(ctx, l, userID); err != nil {
			l.mu.Unlock()
			return nil, err
		}
	}
	return l, nil
}

// EvictIdle drops ledgers not used for longer than maxIdle and returns how many
// were dropped. Ledgers in use are skipped. The next access reloads from persistence.
func (s *Store) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	evicted := 0
	for userID, l := range s.ledgers {
		if l.lastUsed.After(cutoff) || !l.mu.TryLock() {
			continue
		}
		l.evicted = true
		l.mu.Unlock()
		delete(s.ledgers, userID)
		evicted++
	}
	return evicted
}

// MarkAttendance implements attendance.AttendanceStore.
func (s *Store) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Mark, error) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return attendance.Mark{}, auth.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return attendance.Mark{}, err
	}

	date, _ := dateutil.Parse(req.Date)
	status, _ := attendance.ParseStatus(req.Status)

	l, err := s.writeLedger(ctx, principal.UserID)
	if err != nil {
		return attendance.Mark{}, fmt.Errorf("%w: %w", attendance.ErrWriteFailed, err)
	}
	defer l.mu.Unlock()

	now := s.now().UTC()
	mark := attendance.Mark{
		UserID:    principal.UserID,
		WorkerID:  req.WorkerID,
		Date:      date,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, ok := l.marks[mark.Key()]; ok {
		mark.ID = existing.ID
		mark.CreatedAt = existing.CreatedAt
	} else {
		id, err := uuid.NewV7()
		if err != nil {
			return attendance.Mark{}, fmt.Errorf("failed to generate mark id: %w", err)
		}
		mark.ID = id.String()
	}

	saved, err := s.attendanceRepo.Upsert(ctx, mark)
	if err != nil {
		slog.WarnContext(ctx, "Attendance upsert failed", "worker_id", req.WorkerID, "date", req.Date, "error", err)
		return attendance.Mark{}, fmt.Errorf("%w: %w", attendance.ErrWriteFailed, err)
	}

	l.marks[saved.Key()] = saved
	return saved, nil
}

// RecordPayment implements attendance.AttendanceStore.
func (s *Store) RecordPayment(ctx context.Context, req payment.RecordPaymentRequest) (payment.Payment, error) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return payment.Payment{}, auth.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return payment.Payment{}, err
	}

	date, _ := dateutil.Parse(req.Date)
	kind, _ := payment.ParseKind(req.Kind)

	id, err := uuid.NewV7()
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to generate payment id: %w", err)
	}

	l, err := s.writeLedger(ctx, principal.UserID)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("%w: %w", attendance.ErrWriteFailed, err)
	}
	defer l.mu.Unlock()

	p := payment.Payment{
		ID:        id.String(),
		UserID:    principal.UserID,
		WorkerID:  req.WorkerID,
		Kind:      kind,
		Date:      date,
		Amount:    req.Amount,
		Note:      req.Note,
		CreatedAt: s.now().UTC(),
	}

	saved, err := s.paymentRepo.Insert(ctx, p)
	if err != nil {
		slog.WarnContext(ctx, "Payment insert failed", "worker_id", req.WorkerID, "date", req.Date, "error", err)
		return payment.Payment{}, fmt.Errorf("%w: %w", attendance.ErrWriteFailed, err)
	}

	l.payments = append(l.payments, saved)
	return saved, nil
}

// QueryAttendance implements attendance.AttendanceStore.
func (s *Store) QueryAttendance(ctx context.Context, workerID string, period *dateutil.Period) ([]attendance.Mark, error) {
	return s.selectMarks(ctx, func(m attendance.Mark) bool {
		return m.WorkerID == workerID && period.Contains(m.Date)
	})
}

// MarksOn implements attendance.AttendanceStore.
func (s *Store) MarksOn(ctx context.Context, date string) ([]attendance.Mark, error) {
	return s.selectMarks(ctx, func(m attendance.Mark) bool {
		return dateutil.Format(m.Date) == date
	})
}

// QueryPayments implements attendance.AttendanceStore.
func (s *Store) QueryPayments(ctx context.Context, workerID string, period *dateutil.Period) ([]payment.Payment, error) {
	return s.selectPayments(ctx, func(p payment.Payment) bool {
		return p.WorkerID == workerID && period.Contains(p.Date)
	})
}

// PaymentsIn implements attendance.AttendanceStore.
func (s *Store) PaymentsIn(ctx context.Context, period *dateutil.Period) ([]payment.Payment, error) {
	return s.selectPayments(ctx, func(p payment.Payment) bool {
		return period.Contains(p.Date)
	})
}

// Refresh implements attendance.AttendanceStore. On failure the previous projection is kept.
func (s *Store) Refresh(ctx context.Context) error {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return nil
	}

	l := s.lockLedger(principal.UserID)
	defer l.mu.Unlock()

	fresh := &ledger{}
	if err := s.load(ctx, fresh, principal.UserID); err != nil {
		return err
	}
	l.marks = fresh.marks
	l.payments = fresh.payments
	l.loaded = true
	return nil
}

// ForgetWorker implements attendance.AttendanceStore. An unloaded ledger is left alone;
// its first load reads the rows that remain.
func (s *Store) ForgetWorker(ctx context.Context, workerID string) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return
	}

	l := s.lockLedger(principal.UserID)
	defer l.mu.Unlock()
	if !l.loaded {
		return
	}

	for key, m := range l.marks {
		if m.WorkerID == workerID {
			delete(l.marks, key)
		}
	}
	kept := make([]payment.Payment, 0, len(l.payments))
	for _, p := range l.payments {
		if p.WorkerID != workerID {
			kept = append(kept, p)
		}
	}
	l.payments = kept
}

func (s *Store) selectMarks(ctx context.Context, keep func(attendance.Mark) bool) ([]attendance.Mark, error) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return []attendance.Mark{}, nil
	}

	l, err := s.readLedger(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	defer l.mu.RUnlock()

	out := make([]attendance.Mark, 0)
	for _, m := range l.marks {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].WorkerID < out[j].WorkerID
	})
	return out, nil
}

func (s *Store) selectPayments(ctx context.Context, keep func(payment.Payment) bool) ([]payment.Payment, error) {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return []payment.Payment{}, nil
	}

	l, err := s.readLedger(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	defer l.mu.RUnlock()

	out := make([]payment.Payment, 0)
	for _, p := range l.payments {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
