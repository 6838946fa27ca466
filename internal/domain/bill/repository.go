package bill

import (
	"context"
	"time"
)

type BillRepository interface {
	Create(ctx context.Context, newBill Bill) (Bill, error)
	GetByID(ctx context.Context, id string, userID string) (Bill, error)

	// List returns bills dated within [from, to], newest first. Zero times leave the bound open.
	List(ctx context.Context, userID string, from, to time.Time) ([]Bill, error)

	Update(ctx context.Context, userID string, b Bill) (Bill, error)
	Delete(ctx context.Context, id string, userID string) error
}
