package payment

import "context"

// PaymentRepository is the remote table behind the payment ledger.
type PaymentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]Payment, error)
	Insert(ctx context.Context, p Payment) (Payment, error)
}
