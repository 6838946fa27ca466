package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
)

type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

var _ payment.PaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]payment.Payment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]payment.Payment, 0)
	for _, p := range r.db.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PaymentRepository) Insert(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if w, ok := r.db.workers[p.WorkerID]; !ok || w.UserID != p.UserID {
		return payment.Payment{}, errForeignKey("payments", "worker_id")
	}
	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV7()).String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.db.payments = append(r.db.payments, p)
	return p, nil
}
