package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/pkg/database"
)

type billRepositoryImpl struct {
	db *database.DB
}

func NewBillRepository(db *database.DB) bill.BillRepository {
	return &billRepositoryImpl{db: db}
}

const billColumns = `id, user_id, shop_name, material, amount, date, location, photo_url, created_at, updated_at`

func scanBill(row pgx.Row) (bill.Bill, error) {
	var b bill.Bill
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.ShopName,
		&b.Material,
		&b.Amount,
		&b.Date,
		&b.Location,
		&b.PhotoURL,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return bill.Bill{}, bill.ErrBillNotFound
	}
	return b, err
}

// Create implements bill.BillRepository.
func (r *billRepositoryImpl) Create(ctx context.Context, newBill bill.Bill) (bill.Bill, error) {
	q := GetQuerier(ctx, r.db)

	if newBill.ID == "" {
		newBill.ID = newID()
	}

	query := `
		INSERT INTO bills (id, user_id, shop_name, material, amount, date, location, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + billColumns

	return scanBill(q.QueryRow(ctx, query,
		newBill.ID,
		newBill.UserID,
		newBill.ShopName,
		newBill.Material,
		newBill.Amount,
		newBill.Date,
		newBill.Location,
		newBill.PhotoURL,
	))
}

// GetByID implements bill.BillRepository.
func (r *billRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (bill.Bill, error) {
	if !validIDs(id, userID) {
		return bill.Bill{}, bill.ErrBillNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1 AND user_id = $2`
	return scanBill(q.QueryRow(ctx, query, id, userID))
}

// List implements bill.BillRepository.
func (r *billRepositoryImpl) List(ctx context.Context, userID string, from, to time.Time) ([]bill.Bill, error) {
	bills := make([]bill.Bill, 0)
	if !validIDs(userID) {
		return bills, nil
	}
	q := GetQuerier(ctx, r.db)

	var fromArg, toArg *time.Time
	if !from.IsZero() {
		fromArg = &from
	}
	if !to.IsZero() {
		toArg = &to
	}

	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE user_id = $1
			AND ($2::date IS NULL OR date >= $2)
			AND ($3::date IS NULL OR date <= $3)
		ORDER BY date DESC, created_at DESC`

	rows, err := q.Query(ctx, query, userID, fromArg, toArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// Update implements bill.BillRepository by replacing every editable column.
func (r *billRepositoryImpl) Update(ctx context.Context, userID string, b bill.Bill) (bill.Bill, error) {
	if !validIDs(b.ID, userID) {
		return bill.Bill{}, bill.ErrBillNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bills
		SET shop_name = $1, material = $2, amount = $3, date = $4,
			location = $5, photo_url = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING ` + billColumns

	return scanBill(q.QueryRow(ctx, query,
		b.ShopName,
		b.Material,
		b.Amount,
		b.Date,
		b.Location,
		b.PhotoURL,
		b.ID,
		userID,
	))
}

// Delete implements bill.BillRepository.
func (r *billRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	if !validIDs(id, userID) {
		return bill.ErrBillNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return bill.ErrBillNotFound
	}
	return nil
}
