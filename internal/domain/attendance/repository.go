package attendance

import "context"

// AttendanceRepository is the remote table behind the attendance store.
type AttendanceRepository interface {
	// ListByUser returns every mark owned by userID.
	ListByUser(ctx context.Context, userID string) ([]Mark, error)

	// Upsert inserts the mark or replaces the status of the existing (worker, date) row.
	Upsert(ctx context.Context, mark Mark) (Mark, error)
}
