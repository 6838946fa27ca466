package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const markColumns = `id, user_id, worker_id, date, status, created_at, updated_at`

func scanMark(row pgx.Row) (attendance.Mark, error) {
	var m attendance.Mark
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.WorkerID,
		&m.Date,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Mark, error) {
	marks := make([]attendance.Mark, 0)
	if !validIDs(userID) {
		return marks, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + markColumns + ` FROM attendance WHERE user_id = $1 ORDER BY date, worker_id`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanMark(rows)
		if err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

// Upsert implements attendance.AttendanceRepository. The worker must belong to the
// mark's user; otherwise no row is written and an error is returned.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, mark attendance.Mark) (attendance.Mark, error) {
	q := GetQuerier(ctx, r.db)

	if mark.ID == "" {
		mark.ID = newID()
	}

	query := `
		INSERT INTO attendance (id, user_id, worker_id, date, status)
		SELECT $1::uuid, w.user_id, w.id, $4::date, $5::text
		FROM workers w
		WHERE w.id = $3 AND w.user_id = $2
		ON CONFLICT (worker_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING ` + markColumns

	return scanMark(q.QueryRow(ctx, query, mark.ID, mark.UserID, mark.WorkerID, mark.Date, mark.Status))
}
