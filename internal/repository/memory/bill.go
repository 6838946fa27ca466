package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
)

type BillRepository struct {
	db *DB
}

func NewBillRepository(db *DB) *BillRepository {
	return &BillRepository{db: db}
}

var _ bill.BillRepository = (*BillRepository)(nil)

func (r *BillRepository) Create(ctx context.Context, newBill bill.Bill) (bill.Bill, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if newBill.ID == "" {
		newBill.ID = uuid.Must(uuid.NewV7()).String()
	}
	now := time.Now().UTC()
	newBill.CreatedAt = now
	newBill.UpdatedAt = now
	r.db.bills[newBill.ID] = newBill
	return newBill, nil
}

func (r *BillRepository) GetByID(ctx context.Context, id string, userID string) (bill.Bill, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	b, ok := r.db.bills[id]
	if !ok || b.UserID != userID {
		return bill.Bill{}, bill.ErrBillNotFound
	}
	return b, nil
}

func (r *BillRepository) List(ctx context.Context, userID string, from, to time.Time) ([]bill.Bill, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]bill.Bill, 0)
	for _, b := range r.db.bills {
		if b.UserID != userID {
			continue
		}
		if !from.IsZero() && b.Date.Before(from) {
			continue
		}
		if !to.IsZero() && b.Date.After(to) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *BillRepository) Update(ctx context.Context, userID string, b bill.Bill) (bill.Bill, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.bills[b.ID]
	if !ok || existing.UserID != userID {
		return bill.Bill{}, bill.ErrBillNotFound
	}
	b.UserID = existing.UserID
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	r.db.bills[b.ID] = b
	return b, nil
}

func (r *BillRepository) Delete(ctx context.Context, id string, userID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	b, ok := r.db.bills[id]
	if !ok || b.UserID != userID {
		return bill.ErrBillNotFound
	}
	delete(r.db.bills, id)
	return nil
}
