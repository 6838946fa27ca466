package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

type AttendanceRepository struct {
	db *DB
}

func NewAttendanceRepository(db *DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

var _ attendance.AttendanceRepository = (*AttendanceRepository)(nil)

func (r *AttendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Mark, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]attendance.Mark, 0)
	for k, m := range r.db.attendance {
		if k.userID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

// Upsert keeps the id and created_at of an existing (worker, date) row and replaces its status.
func (r *AttendanceRepository) Upsert(ctx context.Context, mark attendance.Mark) (attendance.Mark, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if w, ok := r.db.workers[mark.WorkerID]; !ok || w.UserID != mark.UserID {
		return attendance.Mark{}, errForeignKey("attendance", "worker_id")
	}

	key := attendanceKey{userID: mark.UserID, workerID: mark.WorkerID, date: dateutil.Format(mark.Date)}
	now := time.Now().UTC()
	if existing, ok := r.db.attendance[key]; ok {
		existing.Status = mark.Status
		existing.UpdatedAt = now
		r.db.attendance[key] = existing
		return existing, nil
	}

	if mark.ID == "" {
		mark.ID = uuid.Must(uuid.NewV7()).String()
	}
	mark.CreatedAt = now
	mark.UpdatedAt = now
	r.db.attendance[key] = mark
	return mark, nil
}
