package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/pkg/database"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

const paymentColumns = `id, user_id, worker_id, kind, date, amount, note, created_at`

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.WorkerID,
		&p.Kind,
		&p.Date,
		&p.Amount,
		&p.Note,
		&p.CreatedAt,
	)
	return p, err
}

// ListByUser implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]payment.Payment, error) {
	payments := make([]payment.Payment, 0)
	if !validIDs(userID) {
		return payments, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 ORDER BY date, created_at`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Insert implements payment.PaymentRepository. Payments are never updated.
func (r *paymentRepositoryImpl) Insert(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = newID()
	}

	query := `
		INSERT INTO payments (id, user_id, worker_id, kind, date, amount, note)
		SELECT $1::uuid, w.user_id, w.id, $4::text, $5::date, $6::numeric, $7::text
		FROM workers w
		WHERE w.id = $3 AND w.user_id = $2
		RETURNING ` + paymentColumns

	return scanPayment(q.QueryRow(ctx, query, p.ID, p.UserID, p.WorkerID, p.Kind, p.Date, p.Amount, p.Note))
}
