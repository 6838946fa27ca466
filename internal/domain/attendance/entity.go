package attendance

import (
	"time"

	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// ParseStatus accepts only the two known statuses.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPresent, StatusAbsent:
		return Status(s), true
	}
	return "", false
}

// Mark is the single attendance status of one worker on one calendar date.
// (WorkerID, Date) is unique per user.
type Mark struct {
	ID        string
	UserID    string
	WorkerID  string
	Date      time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key identifies the (worker, date) slot a mark occupies.
type Key struct {
	WorkerID string
	Date     string
}

func (m Mark) Key() Key {
	return Key{WorkerID: m.WorkerID, Date: dateutil.Format(m.Date)}
}
