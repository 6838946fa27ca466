package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `id, user_id, name, phone, address, photo_url, daily_wage, created_at, updated_at`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Name,
		&w.Phone,
		&w.Address,
		&w.PhotoURL,
		&w.DailyWage,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, err
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if newWorker.ID == "" {
		newWorker.ID = newID()
	}

	query := `
		INSERT INTO workers (id, user_id, name, phone, address, photo_url, daily_wage)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + workerColumns

	return scanWorker(q.QueryRow(ctx, query,
		newWorker.ID,
		newWorker.UserID,
		newWorker.Name,
		newWorker.Phone,
		newWorker.Address,
		newWorker.PhotoURL,
		newWorker.DailyWage,
	))
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (worker.Worker, error) {
	if !validIDs(id, userID) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1 AND user_id = $2`
	return scanWorker(q.QueryRow(ctx, query, id, userID))
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context, userID string) ([]worker.Worker, error) {
	workers := make([]worker.Worker, 0)
	if !validIDs(userID) {
		return workers, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE user_id = $1 ORDER BY name, id`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

// Update implements worker.WorkerRepository. Nil fields keep their stored value.
func (r *workerRepositoryImpl) Update(ctx context.Context, userID string, req worker.UpdateWorkerRequest) (worker.Worker, error) {
	if !validIDs(req.ID, userID) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = COALESCE($1, name),
			phone = COALESCE($2, phone),
			address = COALESCE($3, address),
			photo_url = COALESCE($4, photo_url),
			updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING ` + workerColumns

	return scanWorker(q.QueryRow(ctx, query, req.Name, req.Phone, req.Address, req.PhotoURL, req.ID, userID))
}

// UpdateDailyWage implements worker.WorkerRepository.
func (r *workerRepositoryImpl) UpdateDailyWage(ctx context.Context, id string, userID string, wage decimal.Decimal) (worker.Worker, error) {
	if !validIDs(id, userID) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers SET daily_wage = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING ` + workerColumns

	return scanWorker(q.QueryRow(ctx, query, wage, id, userID))
}

// UpdatePhoto implements worker.WorkerRepository.
func (r *workerRepositoryImpl) UpdatePhoto(ctx context.Context, id string, userID string, photoURL string) (worker.Worker, error) {
	if !validIDs(id, userID) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers SET photo_url = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING ` + workerColumns

	return scanWorker(q.QueryRow(ctx, query, photoURL, id, userID))
}

// Delete implements worker.WorkerRepository. The worker's attendance and payments
// are removed in the same transaction.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	if !validIDs(id, userID) {
		return worker.ErrWorkerNotFound
	}

	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		for _, table := range []string{"attendance", "payments"} {
			if _, err := q.Exec(ctx, `DELETE FROM `+table+` WHERE worker_id = $1 AND user_id = $2`, id, userID); err != nil {
				return err
			}
		}

		tag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1 AND user_id = $2`, id, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return worker.ErrWorkerNotFound
		}
		return nil
	})
}
