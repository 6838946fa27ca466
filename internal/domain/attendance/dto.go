package attendance

import (
	"time"

	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	WorkerID string `json:"-"`
	Date     string `json:"date"` // YYYY-MM-DD
	Status   string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := ParseStatus(r.Status); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateNotAfter rejects marks dated after today. Backdating is allowed.
func (r *MarkAttendanceRequest) ValidateNotAfter(today time.Time) error {
	date, err := dateutil.Parse(r.Date)
	if err != nil {
		return validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	if date.After(dateutil.Truncate(today)) {
		return validator.ValidationErrors{{Field: "date", Message: "date must not be in the future"}}
	}
	return nil
}

type AttendanceResponse struct {
	ID        string `json:"id"`
	WorkerID  string `json:"worker_id"`
	Date      string `json:"date"`
	Status    Status `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewAttendanceResponse(m Mark) AttendanceResponse {
	return AttendanceResponse{
		ID:        m.ID,
		WorkerID:  m.WorkerID,
		Date:      dateutil.Format(m.Date),
		Status:    m.Status,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

func NewAttendanceResponses(marks []Mark) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(marks))
	for _, m := range marks {
		out = append(out, NewAttendanceResponse(m))
	}
	return out
}
